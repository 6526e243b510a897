package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid is a square board of cells with hard edges.
type Grid struct {
	size  int
	cells []bool // row-major, index = y*size + x
}

// NewGrid creates a size x size grid with every cell dead
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] size must be positive, got %d", size)
	}
	return &Grid{
		size:  size,
		cells: make([]bool, size*size),
	}, nil
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Contains reports whether (x, y) lies on the board
func (g *Grid) Contains(x, y int) bool {
	return inBounds(g.size, x, y)
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.Contains(x, y) {
		return false, g.outOfBounds("Get", x, y)
	}
	return g.cells[y*g.size+x], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.Contains(x, y) {
		return g.outOfBounds("Set", x, y)
	}
	g.cells[y*g.size+x] = alive
	return nil
}

// Seed marks every coordinate alive. All coordinates are checked before any
// cell changes, so a failed seed leaves the grid as it was.
func (g *Grid) Seed(coords ...Coord) error {
	for _, c := range coords {
		if !g.Contains(c.X, c.Y) {
			return g.outOfBounds("Seed", c.X, c.Y)
		}
	}
	for _, c := range coords {
		g.cells[c.Y*g.size+c.X] = true
	}
	return nil
}

// Snapshot returns an immutable copy of the board at epoch 0
func (g *Grid) Snapshot() Snapshot {
	return newSnapshot(g.size, 0, g.cells)
}

// CountLiveNeighbors counts the living cells around (x, y)
func (g *Grid) CountLiveNeighbors(x, y int) int {
	return countLiveNeighbors(g.cells, g.size, x, y)
}

// Population returns the total number of living cells
func (g *Grid) Population() int {
	return population(g.cells)
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	return hashCells(g.cells)
}

func (g *Grid) outOfBounds(op string, x, y int) error {
	return errors.Wrapf(ErrOutOfBounds, "[%s] %v not within [0, %d)", op, Coord{x, y}, g.size)
}

func inBounds(size, x, y int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

// countLiveNeighbors examines the 8 surrounding coordinates of (x, y) on a
// row-major board. Coordinates off the board are absent and count as 0.
func countLiveNeighbors(cells []bool, size, x, y int) (count int) {
	for _, d := range neighborOffsets {
		nx, ny := x+d.X, y+d.Y
		if !inBounds(size, nx, ny) {
			continue
		}
		if cells[ny*size+nx] {
			count++
		}
	}
	return
}

func population(cells []bool) (count int) {
	for _, alive := range cells {
		if alive {
			count++
		}
	}
	return
}

func hashCells(cells []bool) string {
	h := md5.New()
	buf := make([]byte, len(cells))
	for i, alive := range cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// bounds is the bounding box of living cells
type bounds struct {
	minX, maxX, minY, maxY int
}

// activeBounds calculates the bounding box of living cells. ok is false when
// the board is empty.
func activeBounds(cells []bool, size int) (b bounds, ok bool) {
	for y := range size {
		for x := range size {
			if !cells[y*size+x] {
				continue
			}
			if !ok {
				b = bounds{minX: x, maxX: x, minY: y, maxY: y}
				ok = true
				continue
			}
			b.minX = min(b.minX, x)
			b.maxX = max(b.maxX, x)
			b.minY = min(b.minY, y)
			b.maxY = max(b.maxY, y)
		}
	}
	return
}

// grow expands the box by one cell on every side, clipped to the board
func (b bounds) grow(size int) bounds {
	return bounds{
		minX: max(0, b.minX-1),
		maxX: min(size-1, b.maxX+1),
		minY: max(0, b.minY-1),
		maxY: min(size-1, b.maxY+1),
	}
}
