// Package patterns holds named seed coordinate lists. Every pattern is stored
// with its bounding box anchored at (0, 0).
package patterns

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrUnknownPattern is returned by Lookup for names not in the catalog
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named list of live cells
type Pattern struct {
	Name  string
	Cells []model.Coord
}

var (
	Blinker = Pattern{Name: "blinker", Cells: []model.Coord{
		{0, 0}, {1, 0}, {2, 0},
	}}

	Block = Pattern{Name: "block", Cells: []model.Coord{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
	}}

	Glider = Pattern{Name: "glider", Cells: []model.Coord{
		{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2},
	}}

	Tumbler = Pattern{Name: "tumbler", Cells: []model.Coord{
		{1, 0}, {2, 0}, {1, 1}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
		{4, 0}, {5, 0}, {4, 1}, {5, 1}, {4, 2}, {4, 3}, {4, 4},
		{0, 3}, {0, 4}, {0, 5}, {1, 5},
		{6, 3}, {6, 4}, {6, 5}, {5, 5},
	}}

	MiniExploder = Pattern{Name: "mini-exploder", Cells: []model.Coord{
		{1, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {2, 2}, {1, 3},
	}}

	GosperGliderGun = Pattern{Name: "gosper-glider-gun", Cells: []model.Coord{
		{24, 0},
		{22, 1}, {24, 1},
		{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
		{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
		{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
		{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
		{10, 6}, {16, 6}, {24, 6},
		{11, 7}, {15, 7},
		{12, 8}, {13, 8},
	}}
)

var catalog = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{Blinker, Block, Glider, Tumbler, MiniExploder, GosperGliderGun} {
		catalog[p.Name] = p
	}
}

// Lookup finds a pattern by case-insensitive name
func Lookup(name string) (Pattern, error) {
	p, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q, known patterns: %s",
			name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the catalog in alphabetical order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extent returns the width and height of the pattern's bounding box
func (p Pattern) Extent() (width, height int) {
	for _, c := range p.Cells {
		width = max(width, c.X+1)
		height = max(height, c.Y+1)
	}
	return
}

// Translate returns a copy of the pattern moved by (dx, dy)
func (p Pattern) Translate(dx, dy int) Pattern {
	cells := make([]model.Coord, len(p.Cells))
	for i, c := range p.Cells {
		cells[i] = model.Coord{X: c.X + dx, Y: c.Y + dy}
	}
	return Pattern{Name: p.Name, Cells: cells}
}

// Center returns a copy of the pattern placed in the middle of a size x size
// board. Patterns larger than the board keep their origin at (0, 0).
func (p Pattern) Center(size int) Pattern {
	width, height := p.Extent()
	return p.Translate(max(0, (size-width)/2), max(0, (size-height)/2))
}
