package window

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/demonos/internal/ui"
)

// span is a half-open column range of a clickable control
type span struct {
	from, to int
}

// buttonRow renders prefix followed by one button per label. The button at
// active is highlighted. It returns the rendered row and the column span of
// each button.
func buttonRow(st ui.Styles, prefix string, labels []string, active int) (string, []span) {
	var sb strings.Builder
	sb.WriteString(st.Label.Render(prefix))
	col := ansi.StringWidth(prefix)
	spans := make([]span, len(labels))
	for i, label := range labels {
		if i > 0 {
			sb.WriteString(" ")
			col++
		}
		style := st.Button
		if i == active {
			style = st.ButtonActive
		}
		sb.WriteString(style.Render(label))
		w := ansi.StringWidth(label) + 2
		spans[i] = span{from: col, to: col + w}
		col += w
	}
	return sb.String(), spans
}

// hitSpan returns the index of the span containing col, or -1
func hitSpan(spans []span, col int) int {
	for i, s := range spans {
		if col >= s.from && col < s.to {
			return i
		}
	}
	return -1
}

// fill pads or cuts lines so the block is exactly height rows
func fill(lines []string, height int) string {
	if height <= 0 {
		return ""
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func rule(st ui.Styles, width int) string {
	return st.Muted.Render(strings.Repeat("─", max(width, 0)))
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
