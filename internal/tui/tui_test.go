package tui

import (
	"testing"

	"tileland/internal/voxel"
)

func TestBackendsAgree(t *testing.T) {
	s := NewSurface(8, 3)
	s.FillRect(0, 0, 8, 1, Cell{Glyph: "x", Fg: voxel.RGB{1, 2, 3}, Bg: voxel.RGB{4, 5, 6}, HasBg: true})
	s.DrawText(0, 1, "hi", voxel.RGB{255, 0, 0}, voxel.RGB{}, false)
	s.DrawFrame(0, 2, 3, 1, voxel.RGB{9, 9, 9}, voxel.RGB{})

	a := Paint(s)
	b := PaintFmt(s)
	if a != b {
		t.Fatalf("backends disagree:\nPaint:    %q\nPaintFmt: %q", a, b)
	}
}

func TestWideGlyphAdvancesTwoColumns(t *testing.T) {
	s := NewSurface(4, 1)
	s.DrawText(0, 0, "あ", voxel.RGB{}, voxel.RGB{}, false)
	cell, _ := s.At(1, 0)
	if !cell.IsContinuation {
		t.Fatal("expected column 1 to be marked as a wide-glyph continuation")
	}
}

func TestSetOutOfRangeIgnored(t *testing.T) {
	s := NewSurface(2, 2)
	s.Set(-1, 0, Cell{Glyph: "z"})
	s.Set(5, 5, Cell{Glyph: "z"})
	cell, ok := s.At(0, 0)
	if !ok || cell.Glyph != " " {
		t.Fatalf("out-of-range writes should not affect in-range cells")
	}
}
