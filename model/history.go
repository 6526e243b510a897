package model

// DefaultHistoryDepth is how many recent boards a History remembers
const DefaultHistoryDepth = 5

// History remembers the hashes of recent boards to detect still lifes and
// short oscillators.
type History struct {
	depth  int
	hashes []string // oldest first
}

// NewHistory creates a History remembering up to depth boards. depth <= 0
// uses DefaultHistoryDepth.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record adds a board and returns the period of the cycle it closes: 1 for a
// board identical to the previous one, 2 for a blinker-style oscillation and
// so on. 0 means the board was not seen within the remembered window.
func (h *History) Record(s Snapshot) (period int) {
	hash := s.Hash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			period = len(h.hashes) - i
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last depth states
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return
}

// Reset forgets every recorded board
func (h *History) Reset() {
	h.hashes = nil
}
