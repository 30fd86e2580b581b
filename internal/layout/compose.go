package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// fit truncates or pads s to exactly w cells
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// place paints block over lines with its top-left corner at col,row.
// Anything outside width columns or the first rows lines is clipped.
func place(lines []string, block []string, col, row, width, rows int) {
	for i, bl := range block {
		y := row + i
		if y < 0 || y >= rows || y >= len(lines) {
			continue
		}
		x := col
		if x < 0 {
			bl = ansi.TruncateLeft(bl, -x, "")
			x = 0
		}
		bw := ansi.StringWidth(bl)
		if x+bw > width {
			bl = ansi.Truncate(bl, width-x, "")
			bw = width - x
		}
		if bw <= 0 {
			continue
		}
		line := lines[y]
		lines[y] = ansi.Cut(line, 0, x) + bl + ansi.Cut(line, x+bw, width)
	}
}
