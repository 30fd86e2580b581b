package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/demonos/internal/backdrop"
	"github.com/kmacinski/demonos/internal/geom"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	m := NewManager(NewMetrics(10, 22, 44), ui.DefaultStyles)
	m.Resize(80, 24)
	return m
}

func terminal() wm.Record {
	return wm.Record{
		ID:       1,
		Kind:     wm.KindTerminal,
		Title:    "Terminal",
		Geometry: geom.Rect{X: 100, Y: 44, Width: 320, Height: 220},
		Focused:  true,
		Z:        1,
	}
}

func TestMetrics(t *testing.T) {
	m := NewMetrics(10, 22, 44)
	assert.Equal(t, 2, m.TaskbarRows())
	assert.Equal(t, geom.Point{X: 30, Y: 44}, m.Pixel(3, 2))
	assert.Equal(t, geom.Size{Width: 800, Height: 528}, m.Viewport(80, 24))
	assert.Equal(t, Box{Col: 10, Row: 2, Cols: 32, Rows: 10}, m.Cells(geom.Rect{X: 100, Y: 44, Width: 320, Height: 220}))
	assert.Equal(t, Box{Col: 1, Row: 0, Cols: 1, Rows: 1}, m.Cells(geom.Rect{X: 15, Y: 3, Width: 2, Height: 2}))

	assert.Equal(t, 1, NewMetrics(10, 22, 0).TaskbarRows())
	assert.Equal(t, 3, NewMetrics(10, 20, 44).TaskbarRows())
}

func TestDesktopGeometry(t *testing.T) {
	m := newTestManager()
	assert.Equal(t, 22, m.DesktopRows())
	assert.Equal(t, geom.Size{Width: 800, Height: 528}, m.Viewport())

	cols, rows := m.BodySize(terminal())
	assert.Equal(t, 30, cols)
	assert.Equal(t, 7, rows)
}

func TestHitTestWindowZones(t *testing.T) {
	m := newTestManager()
	stack := []wm.Record{terminal()}

	tests := []struct {
		name     string
		col, row int
		zone     Zone
	}{
		{"top border", 15, 2, ZoneTitle},
		{"title bar", 15, 3, ZoneTitle},
		{"minimize", 32, 3, ZoneMinimize},
		{"maximize", 35, 3, ZoneMaximize},
		{"close", 38, 3, ZoneClose},
		{"close right edge", 40, 3, ZoneClose},
		{"resize corner", 41, 11, ZoneResize},
		{"resize inner", 40, 11, ZoneResize},
		{"bottom border", 20, 11, ZoneFrame},
		{"left border", 10, 5, ZoneFrame},
		{"desktop", 5, 5, ZoneDesktop},
		{"off screen", 90, 5, ZoneNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := m.HitTest(tt.col, tt.row, stack, wm.Taskbar{}, 0)
			assert.Equal(t, tt.zone, hit.Zone, hit.Zone.String())
		})
	}
}

func TestHitTestBodyIsLocal(t *testing.T) {
	m := newTestManager()
	hit := m.HitTest(15, 6, []wm.Record{terminal()}, wm.Taskbar{}, 0)
	assert.Equal(t, Hit{Zone: ZoneBody, Window: 1, Col: 4, Row: 2}, hit)
	assert.True(t, hit.Zone.Window())
}

func TestHitTestTopmostWins(t *testing.T) {
	m := newTestManager()
	back := terminal()
	back.Focused = false
	front := terminal()
	front.ID, front.Z = 2, 2
	front.Geometry.X += 50

	hit := m.HitTest(20, 6, []wm.Record{back, front}, wm.Taskbar{}, 0)
	assert.Equal(t, wm.ID(2), hit.Window)

	hit = m.HitTest(12, 6, []wm.Record{back, front}, wm.Taskbar{}, 0)
	assert.Equal(t, wm.ID(1), hit.Window)

	front.Minimized = true
	hit = m.HitTest(20, 6, []wm.Record{back, front}, wm.Taskbar{}, 0)
	assert.Equal(t, wm.ID(1), hit.Window)
}

func TestHitTestTaskbar(t *testing.T) {
	m := newTestManager()
	tb := wm.Taskbar{Entries: []wm.Entry{
		{ID: 4, Label: "Terminal"},
		{ID: 7, Label: "Settings"},
	}}

	assert.Equal(t, ZoneStart, m.HitTest(0, 23, nil, tb, 0).Zone)
	assert.Equal(t, Hit{Zone: ZoneTask, Window: 4}, m.HitTest(12, 22, nil, tb, 0))
	assert.Equal(t, Hit{Zone: ZoneTask, Window: 7}, m.HitTest(21, 23, nil, tb, 0))
	assert.Equal(t, ZoneTaskbar, m.HitTest(20, 23, nil, tb, 0).Zone)
	assert.Equal(t, ZoneTaskbar, m.HitTest(70, 23, nil, tb, 0).Zone)
}

func TestTaskSpansShortenLabelsToFit(t *testing.T) {
	tb := wm.Taskbar{}
	for i := 1; i <= 4; i++ {
		tb.Entries = append(tb.Entries, wm.Entry{ID: wm.ID(i), Label: strings.Repeat("x", 30)})
	}
	start, items := taskSpans(80, tb, clockWidth)
	assert.Equal(t, 9, start.to)
	require.Len(t, items, 4)
	assert.Equal(t, span{from: 10, to: 21, id: 1, label: "xxxxxxxx…"}, items[0])
	assert.Equal(t, span{from: 46, to: 57, id: 4, label: "xxxxxxxx…"}, items[3])
}

func TestTaskSpansKeepShortLabels(t *testing.T) {
	tb := wm.Taskbar{Entries: []wm.Entry{
		{ID: 1, Label: "Terminal"},
		{ID: 2, Label: strings.Repeat("y", 30)},
	}}
	_, items := taskSpans(80, tb, clockWidth)
	require.Len(t, items, 2)
	assert.Equal(t, "Terminal", items[0].label)
	assert.Equal(t, strings.Repeat("y", 15)+"…", items[1].label)
}

func TestTaskSpansDropOverflow(t *testing.T) {
	tb := wm.Taskbar{}
	for i := 1; i <= 10; i++ {
		tb.Entries = append(tb.Entries, wm.Entry{ID: wm.ID(i), Label: strings.Repeat("x", 30)})
	}
	_, items := taskSpans(80, tb, clockWidth)
	require.Len(t, items, 7)
	assert.Equal(t, span{from: 10, to: 16, id: 1, label: "xxx…"}, items[0])
	assert.LessOrEqual(t, items[6].to, 80-clockWidth)
}

func TestHitTestReachesShortenedMinimizedEntry(t *testing.T) {
	m := newTestManager()
	tb := wm.Taskbar{}
	for i := 1; i <= 4; i++ {
		tb.Entries = append(tb.Entries, wm.Entry{ID: wm.ID(i), Label: strings.Repeat("z", 20), Minimized: i == 4})
	}
	assert.Equal(t, Hit{Zone: ZoneTask, Window: 4}, m.HitTest(50, 23, nil, tb, 0))

	out := ansi.Strip(m.Render(Scene{Taskbar: tb}))
	lines := strings.Split(out, "\n")
	assert.Equal(t, 4, strings.Count(lines[23], "zzzzzzzz…"))
}

func TestHitTestMenu(t *testing.T) {
	m := newTestManager()
	stack := []wm.Record{terminal()}

	assert.Equal(t, Hit{Zone: ZoneMenuItem, Item: 0}, m.HitTest(3, 15, stack, wm.Taskbar{}, 6))
	assert.Equal(t, Hit{Zone: ZoneMenuItem, Item: 5}, m.HitTest(3, 20, stack, wm.Taskbar{}, 6))
	assert.Equal(t, ZoneMenu, m.HitTest(0, 15, stack, wm.Taskbar{}, 6).Zone)
	assert.Equal(t, ZoneMenu, m.HitTest(3, 14, stack, wm.Taskbar{}, 6).Zone)
	assert.Equal(t, ZoneDesktop, m.HitTest(3, 13, stack, wm.Taskbar{}, 6).Zone)
}

func TestRenderComposesWindows(t *testing.T) {
	m := newTestManager()
	rec := terminal()

	out := m.Render(Scene{
		Windows: []wm.Record{rec},
		Bodies:  map[wm.ID]string{1: "demon@os:~$ ls"},
		Taskbar: wm.Taskbar{Entries: []wm.Entry{{ID: 1, Label: "Terminal", Focused: true}}},
		Clock:   "13:37:00 │ FRI 06/06",
	})
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 24)

	assert.True(t, strings.HasPrefix(lines[2][10:], "┌"))
	assert.Contains(t, lines[3], " Terminal")
	assert.Contains(t, lines[3], "[-][+][x]")
	assert.Contains(t, lines[4], "demon@os:~$ ls")
	assert.Contains(t, lines[11], "◢")
	assert.Contains(t, lines[23], "START")
	assert.Contains(t, lines[23], "Terminal")
	assert.Contains(t, lines[23], "13:37:00")
}

func TestRenderClipsAtTaskbar(t *testing.T) {
	m := newTestManager()
	rec := terminal()
	rec.Geometry = geom.Rect{X: 700, Y: 400, Width: 320, Height: 220}

	out := m.Render(Scene{Windows: []wm.Record{rec}})
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 24)
	assert.Contains(t, lines[18], "┌")
	assert.NotContains(t, lines[22], "│")
	assert.NotContains(t, lines[23], "│")
}

func TestRenderSkipsMinimized(t *testing.T) {
	m := newTestManager()
	rec := terminal()
	rec.Minimized = true

	out := ansi.Strip(m.Render(Scene{Windows: []wm.Record{rec}}))
	assert.NotContains(t, out, "┌")
}

func TestRenderOverlays(t *testing.T) {
	m := newTestManager()
	menu := []MenuItem{{Kind: wm.KindProxy, Label: "Proxy"}, {Kind: wm.KindAbout, Label: "About"}}

	out := ansi.Strip(m.Render(Scene{
		Menu:  menu,
		Toast: "Theme: abyss",
		Dots:  []backdrop.Dot{{Col: 70, Row: 1, Rune: '•'}},
		Modal: "HELP",
	}))
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[19], "Proxy")
	assert.Contains(t, lines[20], "About")
	assert.Contains(t, out, "Theme: abyss")
	assert.Contains(t, lines[1], "•")
	assert.Contains(t, lines[10], "HELP")
}

func TestRenderEmptyBeforeResize(t *testing.T) {
	m := NewManager(NewMetrics(10, 22, 44), ui.DefaultStyles)
	assert.Empty(t, m.Render(Scene{}))
}

func TestPlaceClipsRight(t *testing.T) {
	lines := []string{"..........", ".........."}
	place(lines, []string{"abcd", "efgh"}, 8, 1, 10, 2)
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "........ab", lines[1])
}

func TestFit(t *testing.T) {
	assert.Equal(t, "ab  ", fit("ab", 4))
	assert.Equal(t, "abc", fit("abcdef", 3))
	assert.Empty(t, fit("abc", 0))
}
