package model

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	gridPosAlive = "|O"
	gridPosDead  = "|_"

	clearScreenSeq = "\x1b[H\x1b[2J"
	resetSeq       = "\x1b[0m"
)

var (
	aliveColor  = tcell.ColorLime
	deadColor   = tcell.ColorDimGray
	headerColor = tcell.ColorWhite
)

// Renderer draws snapshots for a driver loop
type Renderer interface {
	Clear() error
	Display(s Snapshot) error
}

// TextRenderer writes one line per board row, optionally colored with ANSI
// escape sequences.
type TextRenderer struct {
	Out     io.Writer
	Alive   string // defaults to "|O"
	Dead    string // defaults to "|_"
	Color   bool
	MaxRows int // rows shown per frame, 0 shows all
}

// Display renders the epoch header and the board
func (r *TextRenderer) Display(s Snapshot) error {
	alive, dead := r.Alive, r.Dead
	if alive == "" {
		alive = gridPosAlive
	}
	if dead == "" {
		dead = gridPosDead
	}
	if r.Color {
		alive = colorize(alive, aliveColor)
		dead = colorize(dead, deadColor)
	}

	rows := s.Size()
	if r.MaxRows > 0 {
		rows = min(rows, r.MaxRows)
	}

	w := bufio.NewWriter(r.Out)
	header := fmt.Sprintf("EPOCH # -- %d", s.Epoch())
	if r.Color {
		header = colorize(header, headerColor)
	}
	fmt.Fprintln(w, header)

	var line strings.Builder
	for y := range rows {
		line.Reset()
		for x := range s.Size() {
			if s.Alive(x, y) {
				line.WriteString(alive)
			} else {
				line.WriteString(dead)
			}
		}
		line.WriteByte('\n')
		w.WriteString(line.String())
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "[Display] failed to write epoch %d", s.Epoch())
	}
	return nil
}

// Clear clears the terminal screen
func (r *TextRenderer) Clear() error {
	if _, err := io.WriteString(r.Out, clearScreenSeq); err != nil {
		return errors.Wrap(err, "[Clear] failed to clear terminal")
	}
	return nil
}

func colorize(text string, c tcell.Color) string {
	red, green, blue := c.RGB()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", red, green, blue, text, resetSeq)
}
