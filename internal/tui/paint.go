package tui

import (
	"strconv"
	"strings"

	"tileland/internal/voxel"
)

// ANSI control sequence fragments. Ground:
// original_source/Controllers/TuiRenderer.cpp's escape-sequence emission
// (CSI row;colH cursor positioning, 38;2;r;g;b / 48;2;r;g;b truecolor SGR,
// 2J/H clear).
const (
	csi        = "\x1b["
	resetSGR   = csi + "0m"
	clearAll   = csi + "2J" + csi + "H"
	hideCursor = csi + "?25l"
	showCursor = csi + "?25h"
)

// Paint renders a surface to a single ANSI string, one cursor-position
// command per row followed by each row's cells. Foreground/background SGR
// codes are only emitted when they change from the previous cell in the
// row, keeping output compact — this diffing is what lets the frame-hash
// comparison in internal/render detect a truly unchanged frame cheaply.
func Paint(s *Surface) string {
	var b strings.Builder
	paintInto(&b, s)
	return b.String()
}

func paintInto(b *strings.Builder, s *Surface) {
	var lastFg, lastBg voxel.RGB
	var haveFg, haveBg bool

	for y := 0; y < s.H; y++ {
		b.WriteString(csi)
		b.WriteString(strconv.Itoa(y + 1))
		b.WriteString(";1H")
		haveFg, haveBg = false, false

		for x := 0; x < s.W; x++ {
			cell, _ := s.At(x, y)
			if cell.IsContinuation {
				continue
			}
			if !haveFg || cell.Fg != lastFg {
				writeFgSGR(b, cell.Fg)
				lastFg = cell.Fg
				haveFg = true
			}
			if cell.HasBg {
				if !haveBg || cell.Bg != lastBg {
					writeBgSGR(b, cell.Bg)
					lastBg = cell.Bg
					haveBg = true
				}
			} else if haveBg {
				b.WriteString(resetSGR)
				writeFgSGR(b, cell.Fg)
				haveBg = false
			}
			glyph := cell.Glyph
			if glyph == "" {
				glyph = " "
			}
			b.WriteString(glyph)
		}
		b.WriteString(resetSGR)
	}
}

func writeFgSGR(b *strings.Builder, c voxel.RGB) {
	b.WriteString(csi)
	b.WriteString("38;2;")
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteByte('m')
}

func writeBgSGR(b *strings.Builder, c voxel.RGB) {
	b.WriteString(csi)
	b.WriteString("48;2;")
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteByte('m')
}

// ClearScreen returns the escape sequence that clears the terminal and
// homes the cursor.
func ClearScreen() string { return clearAll }

// HideCursor / ShowCursor return the escape sequences that toggle cursor
// visibility, used by the render loop around its render thread's
// lifetime.
func HideCursor() string { return hideCursor }
func ShowCursor() string { return showCursor }
