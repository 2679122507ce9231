package tui

import (
	"fmt"
	"strings"

	"tileland/internal/voxel"
)

// PaintFmt is a secondary ANSI backend built from fmt.Sprintf composition
// instead of strings.Builder byte concatenation. It must yield output
// identical to Paint for the same surface — see tui_test.go's
// TestBackendsAgree — satisfying the spec's requirement that a secondary
// renderer backend be swappable without changing observed output.
func PaintFmt(s *Surface) string {
	var rows []string
	for y := 0; y < s.H; y++ {
		rows = append(rows, fmt.Sprintf("%s%d;1H%s", csi, y+1, paintRowFmt(s, y)))
	}
	return strings.Join(rows, "")
}

func paintRowFmt(s *Surface, y int) string {
	var sb strings.Builder
	var lastFg, lastBg voxel.RGB
	var haveFg, haveBg bool

	for x := 0; x < s.W; x++ {
		cell, _ := s.At(x, y)
		if cell.IsContinuation {
			continue
		}
		if !haveFg || cell.Fg != lastFg {
			sb.WriteString(fmt.Sprintf("%s38;2;%d;%d;%dm", csi, cell.Fg.R, cell.Fg.G, cell.Fg.B))
			lastFg = cell.Fg
			haveFg = true
		}
		if cell.HasBg {
			if !haveBg || cell.Bg != lastBg {
				sb.WriteString(fmt.Sprintf("%s48;2;%d;%d;%dm", csi, cell.Bg.R, cell.Bg.G, cell.Bg.B))
				lastBg = cell.Bg
				haveBg = true
			}
		} else if haveBg {
			sb.WriteString(resetSGR)
			sb.WriteString(fmt.Sprintf("%s38;2;%d;%d;%dm", csi, cell.Fg.R, cell.Fg.G, cell.Fg.B))
			haveBg = false
		}
		glyph := cell.Glyph
		if glyph == "" {
			glyph = " "
		}
		sb.WriteString(glyph)
	}
	sb.WriteString(resetSGR)
	return sb.String()
}
