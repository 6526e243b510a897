package model

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const (
	screenPosAlive = "██"
	screenPosDead  = "  "
)

// ScreenRenderer draws snapshots onto a tcell screen: the epoch header on the
// first row, the board below it with two columns per cell.
type ScreenRenderer struct {
	Screen tcell.Screen
}

// NewScreenRenderer wraps an initialized screen
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{Screen: screen}
}

// Display draws the board and shows it
func (r *ScreenRenderer) Display(s Snapshot) error {
	var (
		aliveStyle  = tcell.StyleDefault.Foreground(aliveColor)
		deadStyle   = tcell.StyleDefault.Foreground(deadColor)
		headerStyle = tcell.StyleDefault.Foreground(headerColor).Bold(true)
	)

	r.Screen.Clear()
	r.drawText(0, 0, fmt.Sprintf("EPOCH # -- %d", s.Epoch()), headerStyle)

	_, height := r.Screen.Size()
	for y := range min(s.Size(), height-1) {
		for x := range s.Size() {
			if s.Alive(x, y) {
				r.drawText(x*2, y+1, screenPosAlive, aliveStyle)
			} else {
				r.drawText(x*2, y+1, screenPosDead, deadStyle)
			}
		}
	}
	r.Screen.Show()
	return nil
}

// Clear blanks the screen
func (r *ScreenRenderer) Clear() error {
	r.Screen.Clear()
	return nil
}

func (r *ScreenRenderer) drawText(col, row int, text string, style tcell.Style) {
	for _, ch := range text {
		r.Screen.SetContent(col, row, ch, nil, style)
		col++
	}
}
