// Package layout turns the window stack into terminal output. Windows are
// kept in pixels by the session; this package maps them onto cells, paints
// them back to front over the desktop and resolves mouse cells to zones.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/demonos/internal/backdrop"
	"github.com/kmacinski/demonos/internal/geom"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
)

// clockWidth is the taskbar space reserved for the clock, padding included
const clockWidth = 22

// MenuItem is one start menu entry
type MenuItem struct {
	Kind  wm.Kind
	Label string
}

// Scene is everything one frame shows
type Scene struct {
	Windows   []wm.Record // back to front
	Bodies    map[wm.ID]string
	Taskbar   wm.Taskbar
	Dots      []backdrop.Dot
	Scanlines bool
	Menu      []MenuItem // nil when the menu is closed
	MenuIndex int
	Clock     string
	Toast     string
	Modal     string
}

// Manager handles layout rendering
type Manager struct {
	metrics Metrics
	styles  ui.Styles
	width   int
	height  int
}

// NewManager creates a new layout manager
func NewManager(metrics Metrics, styles ui.Styles) *Manager {
	return &Manager{metrics: metrics, styles: styles}
}

// Resize updates the terminal dimensions
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles swaps the palette used for the next render
func (m *Manager) SetStyles(styles ui.Styles) {
	m.styles = styles
}

// SetMetrics changes the cell size
func (m *Manager) SetMetrics(metrics Metrics) {
	m.metrics = metrics
}

// Metrics returns the cell/pixel mapping
func (m *Manager) Metrics() Metrics {
	return m.metrics
}

// Width returns the terminal width in cells
func (m *Manager) Width() int { return m.width }

// Height returns the terminal height in cells
func (m *Manager) Height() int { return m.height }

// DesktopRows is the number of rows above the taskbar
func (m *Manager) DesktopRows() int {
	return max(m.height-m.metrics.TaskbarRows(), 0)
}

// Viewport returns the desktop size in pixels, taskbar included
func (m *Manager) Viewport() geom.Size {
	return m.metrics.Viewport(m.width, m.height)
}

// Pixel maps a mouse cell to a desktop pixel
func (m *Manager) Pixel(col, row int) geom.Point {
	return m.metrics.Pixel(col, row)
}

// BodySize returns the content area of a window in cells
func (m *Manager) BodySize(rec wm.Record) (cols, rows int) {
	b := m.metrics.Cells(rec.Geometry)
	return max(b.Cols-2, 0), max(b.Rows-3, 0)
}

// Render composes the desktop, windows, overlays and taskbar
func (m *Manager) Render(s Scene) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	rows := m.DesktopRows()
	lines := m.renderDesktop(rows, s.Dots, s.Scanlines)

	for _, rec := range s.Windows {
		if rec.Minimized {
			continue
		}
		b := m.metrics.Cells(rec.Geometry)
		place(lines, m.renderFrame(rec, b, s.Bodies[rec.ID]), b.Col, b.Row, m.width, rows)
	}

	if len(s.Menu) > 0 {
		b := m.menuBox(len(s.Menu))
		place(lines, m.renderMenu(s.Menu, s.MenuIndex), b.Col, b.Row, m.width, rows)
	}

	if s.Toast != "" {
		toast := strings.Split(m.styles.Toast.Render(ansi.Truncate(s.Toast, max(m.width-6, 1), "…")), "\n")
		w := lipgloss.Width(toast[0])
		place(lines, toast, m.width-w-2, rows-len(toast)-1, m.width, rows)
	}

	if s.Modal != "" {
		modal := strings.Split(s.Modal, "\n")
		w := lipgloss.Width(s.Modal)
		place(lines, modal, (m.width-w)/2, (rows-len(modal))/2, m.width, rows)
	}

	lines = append(lines, m.renderTaskbar(s.Taskbar, len(s.Menu) > 0, s.Clock)...)
	return strings.Join(lines, "\n")
}

func (m *Manager) renderDesktop(rows int, dots []backdrop.Dot, scanlines bool) []string {
	const (
		blank = iota
		scan
		dot
		bright
	)
	grid := make([][]rune, rows)
	class := make([][]uint8, rows)
	for r := range grid {
		grid[r] = make([]rune, m.width)
		class[r] = make([]uint8, m.width)
		for c := range grid[r] {
			grid[r][c] = ' '
			if scanlines && r%3 == 2 {
				grid[r][c] = '┈'
				class[r][c] = scan
			}
		}
	}
	for _, d := range dots {
		if d.Row < 0 || d.Row >= rows || d.Col < 0 || d.Col >= m.width {
			continue
		}
		grid[d.Row][d.Col] = d.Rune
		class[d.Row][d.Col] = dot
		if d.Bright {
			class[d.Row][d.Col] = bright
		}
	}

	styles := [...]lipgloss.Style{
		blank:  m.styles.Desktop,
		scan:   m.styles.Scanline,
		dot:    m.styles.Particle.Faint(true),
		bright: m.styles.Particle.Bold(true),
	}
	lines := make([]string, rows)
	for r := range grid {
		var sb strings.Builder
		start := 0
		for c := 1; c <= m.width; c++ {
			if c < m.width && class[r][c] == class[r][start] {
				continue
			}
			sb.WriteString(styles[class[r][start]].Render(string(grid[r][start:c])))
			start = c
		}
		lines[r] = sb.String()
	}
	return lines
}

func (m *Manager) renderFrame(rec wm.Record, b Box, body string) []string {
	c := m.styles.Colors
	border := lipgloss.NewStyle().Foreground(c.BorderUnfocused).Background(c.Window)
	title := m.styles.TitleUnfocused
	if rec.Focused {
		border = border.Foreground(c.BorderFocused)
		title = m.styles.TitleFocused
	}

	inner := max(b.Cols-2, 0)
	out := make([]string, 0, b.Rows)
	out = append(out, border.Render("┌"+strings.Repeat("─", inner)+"┐"))

	bar := title.Render(fit(" "+rec.Title, inner))
	if hasButtons(b) {
		bar = title.Render(fit(" "+rec.Title, inner-len(buttons))) + m.styles.TitleButton.Render(buttons)
	}
	out = append(out, border.Render("│")+bar+border.Render("│"))

	bodyLines := strings.Split(body, "\n")
	for i := 0; i < b.Rows-3; i++ {
		line := ""
		if i < len(bodyLines) {
			line = bodyLines[i]
		}
		out = append(out, border.Render("│")+m.styles.Body.Render(fit(line, inner))+border.Render("│"))
	}

	if b.Rows > 2 {
		handle := border.Foreground(c.Accent).Render("◢")
		out = append(out, border.Render("└"+strings.Repeat("─", inner))+handle)
	}
	return out
}

func (m *Manager) renderMenu(items []MenuItem, selected int) []string {
	rows := make([]string, len(items))
	for i, it := range items {
		style := m.styles.MenuItem
		if i == selected {
			style = m.styles.MenuItemSelected
		}
		rows[i] = style.Width(menuInner).Render(fit(it.Label, menuInner-2))
	}
	return strings.Split(m.styles.Menu.Render(strings.Join(rows, "\n")), "\n")
}

func (m *Manager) renderTaskbar(tb wm.Taskbar, menuOpen bool, clock string) []string {
	bar := m.styles.Taskbar
	edge := lipgloss.NewStyle().Foreground(m.styles.Colors.Accent).Background(m.styles.Colors.Taskbar)

	rows := make([]string, 0, m.metrics.TaskbarRows())
	for i := 1; i < m.metrics.TaskbarRows(); i++ {
		rows = append(rows, edge.Render(strings.Repeat("▔", m.width)))
	}

	start, items := taskSpans(m.width, tb, clockWidth)
	byID := make(map[wm.ID]wm.Entry, len(tb.Entries))
	for _, e := range tb.Entries {
		byID[e.ID] = e
	}

	var sb strings.Builder
	startStyle := m.styles.StartButton
	if menuOpen {
		startStyle = m.styles.StartButtonActive
	}
	sb.WriteString(startStyle.Render(startLabel))
	col := start.to
	for _, s := range items {
		sb.WriteString(bar.Render(strings.Repeat(" ", s.from-col)))
		e := byID[s.id]
		style := m.styles.TaskbarItem
		switch {
		case e.Focused:
			style = m.styles.TaskbarItemFocused
		case e.Minimized:
			style = m.styles.TaskbarItemMinimized
		}
		sb.WriteString(style.Render(s.label))
		col = s.to
	}
	if gap := m.width - clockWidth - col; gap > 0 {
		sb.WriteString(bar.Render(strings.Repeat(" ", gap)))
	}
	sb.WriteString(m.styles.Clock.Render(fit(clock, clockWidth-2)))

	rows = append(rows, fit(sb.String(), m.width))
	return rows
}
