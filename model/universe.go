package model

import (
	"fmt"
	"iter"
	"runtime"
	"slices"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// State is the lifecycle stage of a Universe
type State int

const (
	// Ready means no epoch has been computed yet
	Ready State = iota
	// Running means 0 < epoch <= max epoch
	Running
	// Terminated means epoch > max epoch; no further advances happen
	Terminated
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Universe evolves a grid one epoch at a time up to an inclusive max epoch.
type Universe struct {
	grid     *Grid
	next     []bool // scratch buffer swapped with grid.cells every epoch
	epoch    int
	maxEpoch int

	workers int
	bounded bool
	log     log.Interface
}

// Option configures a Universe
type Option func(*Universe)

// WithWorkers sets how many row bands are evaluated concurrently within one
// epoch. n <= 0 uses one per CPU.
func WithWorkers(n int) Option {
	return func(u *Universe) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		u.workers = n
	}
}

// WithBoundedRegion restricts evaluation to the live bounding box plus a
// one-cell margin. Cells outside it cannot change state.
func WithBoundedRegion(enabled bool) Option {
	return func(u *Universe) {
		u.bounded = enabled
	}
}

// WithLogger sets the logger used for per-epoch debug output
func WithLogger(l log.Interface) Option {
	return func(u *Universe) {
		if l != nil {
			u.log = l
		}
	}
}

// NewUniverse wraps a copy of grid in a simulation that runs epochs
// 1..maxEpoch+1. Later changes to grid do not affect the universe.
func NewUniverse(grid *Grid, maxEpoch int, opts ...Option) (*Universe, error) {
	if grid == nil {
		return nil, errors.Wrap(ErrInvalidConfig, "[NewUniverse] grid is nil")
	}
	if maxEpoch < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "[NewUniverse] max epoch must be non-negative, got %d", maxEpoch)
	}

	u := &Universe{
		grid:     &Grid{size: grid.size, cells: slices.Clone(grid.cells)},
		next:     make([]bool, len(grid.cells)),
		maxEpoch: maxEpoch,
		workers:  runtime.NumCPU(),
		log:      log.Log,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Epoch returns the number of completed advances
func (u *Universe) Epoch() int { return u.epoch }

// MaxEpoch returns the configured inclusive upper bound
func (u *Universe) MaxEpoch() int { return u.maxEpoch }

// Size returns the side length of the board
func (u *Universe) Size() int { return u.grid.size }

// State returns the lifecycle stage derived from the epoch counter
func (u *Universe) State() State {
	switch {
	case u.epoch == 0:
		return Ready
	case u.epoch <= u.maxEpoch:
		return Running
	default:
		return Terminated
	}
}

// Snapshot returns a copy of the current board
func (u *Universe) Snapshot() Snapshot {
	return newSnapshot(u.grid.size, u.epoch, u.grid.cells)
}

// Advance computes the next generation, replaces the board with it and
// returns a snapshot. Once terminated it returns ErrIterationExhausted and
// leaves the board untouched.
func (u *Universe) Advance() (Snapshot, error) {
	if u.State() == Terminated {
		return Snapshot{}, errors.Wrapf(ErrIterationExhausted,
			"[Advance] epoch %d is past max epoch %d", u.epoch, u.maxEpoch)
	}

	if err := u.nextGeneration(u.grid.cells, u.next); err != nil {
		return Snapshot{}, errors.Wrapf(err, "[Advance] failed to compute epoch %d", u.epoch+1)
	}
	u.grid.cells, u.next = u.next, u.grid.cells
	u.epoch++

	snap := u.Snapshot()
	u.log.WithFields(log.Fields{
		"epoch":      u.epoch,
		"population": snap.Population(),
		"state":      u.State(),
	}).Debug("advanced")
	return snap, nil
}

// Generations lazily yields one snapshot per Advance until the universe is
// exhausted or the consumer stops.
func (u *Universe) Generations() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for {
			snap, err := u.Advance()
			if err != nil {
				return
			}
			if !yield(snap) {
				return
			}
		}
	}
}

// nextGeneration fills dst from src. src is only read and every cell of dst
// is written, so no cell sees another cell's updated state.
func (u *Universe) nextGeneration(src, dst []bool) error {
	size := u.grid.size
	clear(dst)

	region := bounds{minX: 0, maxX: size - 1, minY: 0, maxY: size - 1}
	if u.bounded {
		live, ok := activeBounds(src, size)
		if !ok {
			return nil
		}
		region = live.grow(size)
	}

	var (
		eg            errgroup.Group
		rows          = region.maxY - region.minY + 1
		numWorkers    = max(1, min(u.workers, rows))
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)
	eg.SetLimit(numWorkers)

	for startRow := region.minY; startRow <= region.maxY; startRow += rowsPerWorker {
		endRow := min(startRow+rowsPerWorker-1, region.maxY)
		eg.Go(func() error {
			for y := startRow; y <= endRow; y++ {
				for x := region.minX; x <= region.maxX; x++ {
					idx := y*size + x
					dst[idx] = rules.Next(src[idx], countLiveNeighbors(src, size, x, y))
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
