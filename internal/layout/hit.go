package layout

import (
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/demonos/internal/wm"
)

// Zone is the part of the screen a cell belongs to
type Zone int

const (
	ZoneNone Zone = iota
	ZoneDesktop
	ZoneTitle
	ZoneMinimize
	ZoneMaximize
	ZoneClose
	ZoneResize
	ZoneFrame
	ZoneBody
	ZoneTaskbar
	ZoneStart
	ZoneTask
	ZoneMenu
	ZoneMenuItem
)

func (z Zone) String() string {
	switch z {
	case ZoneDesktop:
		return "desktop"
	case ZoneTitle:
		return "title"
	case ZoneMinimize:
		return "minimize"
	case ZoneMaximize:
		return "maximize"
	case ZoneClose:
		return "close"
	case ZoneResize:
		return "resize"
	case ZoneFrame:
		return "frame"
	case ZoneBody:
		return "body"
	case ZoneTaskbar:
		return "taskbar"
	case ZoneStart:
		return "start"
	case ZoneTask:
		return "task"
	case ZoneMenu:
		return "menu"
	case ZoneMenuItem:
		return "menu-item"
	default:
		return "none"
	}
}

// Window reports whether the zone belongs to a window frame
func (z Zone) Window() bool {
	return z >= ZoneTitle && z <= ZoneBody
}

// Hit is the result of hit-testing one cell
type Hit struct {
	Zone   Zone
	Window wm.ID // window zones and taskbar entries
	Item   int   // start menu index
	Col    int   // body-local column for ZoneBody
	Row    int   // body-local row for ZoneBody
}

const (
	buttons     = "[-][+][x]"
	buttonWidth = 3
	startLabel  = "☰ START"
	taskMax     = 16
	taskMin     = 4
	menuInner   = 24
)

// span is a half-open column range on the taskbar row
type span struct {
	from, to int
	id       wm.ID
	label    string
}

func (s span) has(col int) bool {
	return col >= s.from && col < s.to
}

// taskSpans lays out the start button and taskbar entries left to right.
// Labels are shortened down to taskMin cells so every entry fits before the
// clock; entries that still do not fit are dropped.
func taskSpans(width int, tb wm.Taskbar, clockWidth int) (start span, items []span) {
	start = span{from: 0, to: ansi.StringWidth(startLabel) + 2}
	limit := width - clockWidth

	labelMax := taskMax
	for labelMax > taskMin && taskRowWidth(tb, labelMax) > limit-start.to {
		labelMax--
	}

	col := start.to + 1
	for _, e := range tb.Entries {
		label := taskLabel(e.Label, labelMax)
		w := ansi.StringWidth(label) + 2
		if col+w > limit {
			break
		}
		items = append(items, span{from: col, to: col + w, id: e.ID, label: label})
		col += w + 1
	}
	return start, items
}

// taskRowWidth is the room all entries need, gaps included, at labelMax
func taskRowWidth(tb wm.Taskbar, labelMax int) int {
	n := 0
	for _, e := range tb.Entries {
		n += ansi.StringWidth(taskLabel(e.Label, labelMax)) + 3
	}
	return n
}

func taskLabel(label string, labelMax int) string {
	return ansi.Truncate(label, labelMax, "…")
}

// menuBox is where the start menu sits for n items
func (m *Manager) menuBox(n int) Box {
	rows := n + 2
	return Box{Col: 0, Row: m.DesktopRows() - rows, Cols: menuInner + 2, Rows: rows}
}

// HitTest resolves a cell against the start menu (when menuItems > 0), the
// taskbar and the window stack, topmost first.
func (m *Manager) HitTest(col, row int, stack []wm.Record, tb wm.Taskbar, menuItems int) Hit {
	if col < 0 || row < 0 || col >= m.width || row >= m.height {
		return Hit{}
	}

	if menuItems > 0 {
		box := m.menuBox(menuItems)
		if box.Contains(col, row) {
			i := row - box.Row - 1
			if i >= 0 && i < menuItems && col > box.Col && col < box.Col+box.Cols-1 {
				return Hit{Zone: ZoneMenuItem, Item: i}
			}
			return Hit{Zone: ZoneMenu}
		}
	}

	if row >= m.DesktopRows() {
		start, items := taskSpans(m.width, tb, clockWidth)
		if start.has(col) {
			return Hit{Zone: ZoneStart}
		}
		for _, s := range items {
			if s.has(col) {
				return Hit{Zone: ZoneTask, Window: s.id}
			}
		}
		return Hit{Zone: ZoneTaskbar}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		rec := stack[i]
		if rec.Minimized {
			continue
		}
		b := m.metrics.Cells(rec.Geometry)
		if !b.Contains(col, row) {
			continue
		}
		return frameHit(rec.ID, b, col, row)
	}
	return Hit{Zone: ZoneDesktop}
}

func frameHit(id wm.ID, b Box, col, row int) Hit {
	right := b.Col + b.Cols - 1
	bottom := b.Row + b.Rows - 1
	h := Hit{Window: id}

	switch {
	case row == bottom && col >= right-1:
		h.Zone = ZoneResize
	case row == b.Row:
		h.Zone = ZoneTitle
	case row == b.Row+1:
		h.Zone = ZoneTitle
		if hasButtons(b) && col >= right-len(buttons) && col < right {
			switch (col - (right - len(buttons))) / buttonWidth {
			case 0:
				h.Zone = ZoneMinimize
			case 1:
				h.Zone = ZoneMaximize
			default:
				h.Zone = ZoneClose
			}
		}
	case row == bottom || col == b.Col || col == right:
		h.Zone = ZoneFrame
	default:
		h.Zone = ZoneBody
		h.Col = col - b.Col - 1
		h.Row = row - b.Row - 2
	}
	return h
}

func hasButtons(b Box) bool {
	return b.Cols-2 > len(buttons)
}
