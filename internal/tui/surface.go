// Package tui implements the terminal surface/cell grid and ANSI painter
// shared by the render loop and any future TUI screen: a plain []Cell
// grid composited and then emitted as ANSI escape sequences.
package tui

import (
	"golang.org/x/text/width"

	"tileland/internal/voxel"
)

// Cell is one addressable terminal cell.
type Cell struct {
	Glyph           string
	Fg, Bg          voxel.RGB
	HasBg           bool
	IsContinuation bool // second column of a wide glyph; not painted directly
}

// Surface is a W x H grid of cells, row-major.
type Surface struct {
	W, H  int
	cells []Cell
}

// NewSurface allocates a cleared w x h surface.
func NewSurface(w, h int) *Surface {
	s := &Surface{W: w, H: h, cells: make([]Cell, w*h)}
	s.Clear()
	return s
}

func (s *Surface) index(x, y int) (int, bool) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return 0, false
	}
	return y*s.W + x, true
}

// Clear resets every cell to a blank, backgroundless space.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Glyph: " "}
	}
}

// Set writes a single cell. Out-of-range coordinates are silently ignored
// so callers can draw without bounds-checking every call.
func (s *Surface) Set(x, y int, c Cell) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = c
	}
}

// At returns the cell at (x, y) and whether it was in range.
func (s *Surface) At(x, y int) (Cell, bool) {
	if i, ok := s.index(x, y); ok {
		return s.cells[i], true
	}
	return Cell{}, false
}

// FillRect fills the rectangle [x, x+w) x [y, y+h) with c.
func (s *Surface) FillRect(x, y, w, h int, c Cell) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.Set(col, row, c)
		}
	}
}

// DrawText draws text starting at (x, y), advancing one or two columns per
// rune depending on its East Asian width classification — wide/fullwidth
// runes occupy two columns, with the second marked IsContinuation so the
// painter never emits a glyph for it.
func (s *Surface) DrawText(x, y int, text string, fg, bg voxel.RGB, hasBg bool) {
	col := x
	for _, r := range text {
		w := runeWidth(r)
		s.Set(col, y, Cell{Glyph: string(r), Fg: fg, Bg: bg, HasBg: hasBg})
		if w == 2 {
			s.Set(col+1, y, Cell{Glyph: "", IsContinuation: true, Fg: fg, Bg: bg, HasBg: hasBg})
		}
		col += w
	}
}

// DrawCenteredText draws text horizontally centered within width w starting
// at column x.
func (s *Surface) DrawCenteredText(x, y, w int, text string, fg, bg voxel.RGB, hasBg bool) {
	tw := textWidth(text)
	start := x + (w-tw)/2
	if start < x {
		start = x
	}
	s.DrawText(start, y, text, fg, bg, hasBg)
}

// DrawFrame draws a single-line box border around the rectangle
// [x, x+w) x [y, y+h).
func (s *Surface) DrawFrame(x, y, w, h int, fg, bg voxel.RGB) {
	if w < 2 || h < 2 {
		return
	}
	corner := func(cx, cy int, glyph string) {
		s.Set(cx, cy, Cell{Glyph: glyph, Fg: fg, Bg: bg, HasBg: true})
	}
	corner(x, y, "┌")
	corner(x+w-1, y, "┐")
	corner(x, y+h-1, "└")
	corner(x+w-1, y+h-1, "┘")
	for col := x + 1; col < x+w-1; col++ {
		corner(col, y, "─")
		corner(col, y+h-1, "─")
	}
	for row := y + 1; row < y+h-1; row++ {
		corner(x, row, "│")
		corner(x+w-1, row, "│")
	}
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

func textWidth(s string) int {
	total := 0
	for _, r := range s {
		total += runeWidth(r)
	}
	return total
}
