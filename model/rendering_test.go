package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextRendererDisplay(t *testing.T) {
	snap := mustGrid(t, 3, Coord{1, 0}, Coord{2, 2}).Snapshot()

	tests := []struct {
		name     string
		renderer TextRenderer
		want     string
	}{
		{
			name: "default glyphs",
			want: "EPOCH # -- 0\n|_|O|_\n|_|_|_\n|_|_|O\n",
		},
		{
			name:     "custom glyphs",
			renderer: TextRenderer{Alive: "#", Dead: "."},
			want:     "EPOCH # -- 0\n.#.\n...\n..#\n",
		},
		{
			name:     "row limit",
			renderer: TextRenderer{MaxRows: 1},
			want:     "EPOCH # -- 0\n|_|O|_\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := tt.renderer
			r.Out = &out
			if err := r.Display(snap); err != nil {
				t.Fatalf("Display: %v", err)
			}
			if out.String() != tt.want {
				t.Fatalf("Display wrote\n%q\nwant\n%q", out.String(), tt.want)
			}
		})
	}
}

func TestTextRendererColor(t *testing.T) {
	var out bytes.Buffer
	r := TextRenderer{Out: &out, Color: true}
	if err := r.Display(mustGrid(t, 2, Coord{0, 0}).Snapshot()); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !strings.Contains(out.String(), "\x1b[38;2;0;255;0m|O\x1b[0m") {
		t.Fatalf("alive cell not colored green: %q", out.String())
	}
	if strings.Count(out.String(), "\n") != 3 {
		t.Fatalf("expected header plus 2 rows, got %q", out.String())
	}
}

func TestTextRendererClear(t *testing.T) {
	var out bytes.Buffer
	r := TextRenderer{Out: &out}
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if out.String() != clearScreenSeq {
		t.Fatalf("Clear wrote %q", out.String())
	}
}
