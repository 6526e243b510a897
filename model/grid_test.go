package model

import (
	"testing"

	"github.com/pkg/errors"
)

func mustGrid(t *testing.T, size int, seed ...Coord) *Grid {
	t.Helper()
	g, err := NewGrid(size)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", size, err)
	}
	if err = g.Seed(seed...); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return g
}

func TestNewGridInvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -60} {
		if _, err := NewGrid(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewGrid(%d) err = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestNewGridAllDead(t *testing.T) {
	g := mustGrid(t, 4)
	if g.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", g.Size())
	}
	for y := range 4 {
		for x := range 4 {
			alive, err := g.Get(x, y)
			if err != nil || alive {
				t.Fatalf("Get(%d,%d) = %v, %v, want dead", x, y, alive, err)
			}
		}
	}
}

func TestGridBounds(t *testing.T) {
	const size = 5
	g := mustGrid(t, size)
	for _, c := range []Coord{{-1, 0}, {0, -1}, {size, 0}, {0, size}, {-1, size}} {
		if _, err := g.Get(c.X, c.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get%v err = %v, want ErrOutOfBounds", c, err)
		}
		if err := g.Set(c.X, c.Y, true); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set%v err = %v, want ErrOutOfBounds", c, err)
		}
		if err := g.Seed(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Seed%v err = %v, want ErrOutOfBounds", c, err)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("failed accesses changed the grid, population %d", g.Population())
	}
}

func TestGridSetGet(t *testing.T) {
	g := mustGrid(t, 3)
	if err := g.Set(2, 1, true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if alive, _ := g.Get(2, 1); !alive {
		t.Fatal("Get(2,1) = dead after Set alive")
	}
	if alive, _ := g.Get(1, 2); alive {
		t.Fatal("Get(1,2) = alive, x and y swapped")
	}
	if err := g.Set(2, 1, false); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if alive, _ := g.Get(2, 1); alive {
		t.Fatal("Get(2,1) = alive after Set dead")
	}
}

func TestSeedIsAllOrNothing(t *testing.T) {
	g := mustGrid(t, 3)
	err := g.Seed(Coord{0, 0}, Coord{1, 1}, Coord{3, 1})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Seed err = %v, want ErrOutOfBounds", err)
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d after failed seed, want 0", g.Population())
	}
}

func TestCountLiveNeighbors(t *testing.T) {
	full := mustGrid(t, 3,
		Coord{0, 0}, Coord{1, 0}, Coord{2, 0},
		Coord{0, 1}, Coord{1, 1}, Coord{2, 1},
		Coord{0, 2}, Coord{1, 2}, Coord{2, 2},
	)
	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"corner", 0, 0, 3},
		{"far corner", 2, 2, 3},
		{"edge", 1, 0, 5},
		{"left edge", 0, 1, 5},
		{"center", 1, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := full.CountLiveNeighbors(tt.x, tt.y); got != tt.want {
				t.Errorf("CountLiveNeighbors(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCountLiveNeighborsExcludesSelf(t *testing.T) {
	g := mustGrid(t, 3, Coord{1, 1})
	if got := g.CountLiveNeighbors(1, 1); got != 0 {
		t.Fatalf("lone cell counts %d neighbors, want 0", got)
	}
	if got := g.CountLiveNeighbors(0, 0); got != 1 {
		t.Fatalf("corner next to lone cell counts %d, want 1", got)
	}
}

func TestCountLiveNeighborsNoWrap(t *testing.T) {
	// cells on the opposite edge must not be seen through the boundary
	g := mustGrid(t, 4, Coord{3, 0}, Coord{3, 3}, Coord{0, 3})
	if got := g.CountLiveNeighbors(0, 0); got != 0 {
		t.Fatalf("CountLiveNeighbors(0,0) = %d, want 0", got)
	}
}

func TestGridSnapshotIsCopy(t *testing.T) {
	g := mustGrid(t, 3, Coord{1, 1})
	snap := g.Snapshot()
	if err := g.Set(1, 1, false); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !snap.Alive(1, 1) {
		t.Fatal("snapshot changed after the grid was mutated")
	}
	rows := snap.Rows()
	rows[0][0] = true
	if snap.Alive(0, 0) {
		t.Fatal("snapshot changed through Rows()")
	}
}

func TestGridHash(t *testing.T) {
	a := mustGrid(t, 4, Coord{1, 2})
	b := mustGrid(t, 4, Coord{1, 2})
	c := mustGrid(t, 4, Coord{2, 1})
	if a.Hash() != b.Hash() {
		t.Fatal("equal boards hash differently")
	}
	if a.Hash() == c.Hash() {
		t.Fatal("different boards share a hash")
	}
}
