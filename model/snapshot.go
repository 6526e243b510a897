package model

import "slices"

// Snapshot is a read-only copy of a board taken after a given epoch. It never
// shares storage with the grid it came from.
type Snapshot struct {
	size  int
	epoch int
	cells []bool
}

func newSnapshot(size, epoch int, cells []bool) Snapshot {
	return Snapshot{size: size, epoch: epoch, cells: slices.Clone(cells)}
}

// Size returns the side length of the board
func (s Snapshot) Size() int { return s.size }

// Epoch returns the epoch the snapshot was taken at
func (s Snapshot) Epoch() int { return s.epoch }

// Alive reports the state of (x, y). Coordinates off the board are dead.
func (s Snapshot) Alive(x, y int) bool {
	if !inBounds(s.size, x, y) {
		return false
	}
	return s.cells[y*s.size+x]
}

// Population returns the number of living cells
func (s Snapshot) Population() int {
	return population(s.cells)
}

// LiveCells lists the living cells in row-major order
func (s Snapshot) LiveCells() []Coord {
	var live []Coord
	for i, alive := range s.cells {
		if alive {
			live = append(live, Coord{X: i % s.size, Y: i / s.size})
		}
	}
	return live
}

// Rows returns a fresh [row][column] copy of the board
func (s Snapshot) Rows() [][]bool {
	rows := make([][]bool, s.size)
	for y := range rows {
		rows[y] = slices.Clone(s.cells[y*s.size : (y+1)*s.size])
	}
	return rows
}

// Equal reports whether both snapshots hold the same board, ignoring epoch
func (s Snapshot) Equal(other Snapshot) bool {
	return s.size == other.size && slices.Equal(s.cells, other.cells)
}

// Hash returns an MD5 hash of the board
func (s Snapshot) Hash() string {
	return hashCells(s.cells)
}
