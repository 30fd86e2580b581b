package wm

import (
	"math/rand/v2"
	"testing"

	"github.com/kmacinski/demonos/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op   string
	id   ID
	kind Kind
}

type recordingLifecycle struct {
	calls []call
	loops map[ID]*fakeLoop
}

func (r *recordingLifecycle) Initialize(id ID, kind Kind, surface *Surface) {
	r.calls = append(r.calls, call{"init", id, kind})
	surface.Attach(kind.String())
	if kind.OwnsRunningState() {
		if r.loops == nil {
			r.loops = make(map[ID]*fakeLoop)
		}
		l := &fakeLoop{}
		r.loops[id] = l
		surface.Bind(l)
	}
}

func (r *recordingLifecycle) Teardown(id ID, kind Kind, surface *Surface) {
	r.calls = append(r.calls, call{"teardown", id, kind})
}

type fakeLoop struct {
	stops int
}

func (l *fakeLoop) Stop() { l.stops++ }

func newTestSession(t *testing.T) (*Session, *recordingLifecycle) {
	t.Helper()
	life := &recordingLifecycle{}
	return NewSession(DefaultOptions(), life, nil), life
}

func TestOpenCascadesAndDeduplicates(t *testing.T) {
	s, _ := newTestSession(t)

	proxy := s.Open(KindProxy)
	require.Equal(t, ID(1), proxy)
	rec, ok := s.Get(proxy)
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 80, Y: 40}, rec.Geometry.Origin())

	browser := s.Open(KindBrowser)
	require.Equal(t, ID(2), browser)
	rec, _ = s.Get(browser)
	assert.Equal(t, geom.Point{X: 108, Y: 68}, rec.Geometry.Origin())

	again := s.Open(KindProxy)
	assert.Equal(t, proxy, again)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, proxy, s.Focused())
}

func TestOpenRunsInitializeOncePerWindow(t *testing.T) {
	s, life := newTestSession(t)

	id := s.Open(KindTerminal)
	s.Open(KindTerminal)

	assert.Equal(t, []call{{"init", id, KindTerminal}}, life.calls)
	rec, _ := s.Get(id)
	assert.Equal(t, "terminal", rec.Surface.Content())
	assert.Equal(t, "💀 TERMINAL", rec.Title)
}

func TestOpenInvalidKind(t *testing.T) {
	s, life := newTestSession(t)

	assert.Equal(t, ID(0), s.Open(Kind(0)))
	assert.Equal(t, ID(0), s.Open(Kind(99)))
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, life.calls)
}

func TestCloseReassignsFocus(t *testing.T) {
	s, _ := newTestSession(t)
	s.Open(KindProxy)
	browser := s.Open(KindBrowser)
	require.Equal(t, browser, s.Focused())

	s.Close(browser)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, ID(1), s.Focused())
	_, ok := s.Get(browser)
	assert.False(t, ok)
}

func TestCloseSkipsMinimizedWhenReassigning(t *testing.T) {
	s, _ := newTestSession(t)
	a := s.Open(KindProxy)
	b := s.Open(KindBrowser)
	c := s.Open(KindSettings)
	s.Minimize(b)
	s.Focus(c)

	s.Close(c)
	assert.Equal(t, a, s.Focused())

	s.Close(a)
	assert.Equal(t, ID(0), s.Focused())
	assert.Equal(t, 1, s.Len())
}

func TestCloseMissingIsNoop(t *testing.T) {
	s, life := newTestSession(t)
	s.Open(KindAbout)

	s.Close(42)
	s.Minimize(42)
	s.Maximize(42)
	s.Focus(42)
	s.TaskbarClick(42)

	assert.Equal(t, 1, s.Len())
	assert.Len(t, life.calls, 1)
}

func TestIDsAreNeverReused(t *testing.T) {
	s, _ := newTestSession(t)
	first := s.Open(KindProxy)
	s.Close(first)
	second := s.Open(KindProxy)

	assert.Equal(t, ID(2), second)
}

func TestCloseGamesRunsTeardownAndStopsLoop(t *testing.T) {
	s, life := newTestSession(t)
	games := s.Open(KindGames)
	term := s.Open(KindTerminal)
	rec, _ := s.Get(games)
	surface := rec.Surface

	s.Close(term)
	s.Close(games)

	assert.Equal(t, []call{
		{"init", games, KindGames},
		{"init", term, KindTerminal},
		{"teardown", games, KindGames},
	}, life.calls)
	assert.Equal(t, 1, life.loops[games].stops)
	assert.True(t, surface.Released())
	assert.Nil(t, surface.Content())
}

func TestCloseDuringTeardownIsNotReentered(t *testing.T) {
	var s *Session
	life := &reentrantLifecycle{}
	s = NewSession(DefaultOptions(), life, nil)
	life.session = s

	id := s.Open(KindGames)
	s.Close(id)

	assert.Equal(t, 1, life.teardowns)
	assert.Equal(t, 0, s.Len())
}

type reentrantLifecycle struct {
	NopLifecycle
	session   *Session
	teardowns int
}

func (r *reentrantLifecycle) Teardown(id ID, _ Kind, _ *Surface) {
	r.teardowns++
	r.session.Close(id)
}

func TestMinimizeSoleWindow(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.Open(KindTerminal)

	s.Minimize(id)
	assert.Equal(t, ID(0), s.Focused())
	rec, _ := s.Get(id)
	assert.True(t, rec.Minimized)
	assert.False(t, rec.Focused)

	s.Open(KindTerminal)
	assert.Equal(t, id, s.Focused())
	rec, _ = s.Get(id)
	assert.False(t, rec.Minimized)
}

func TestToggleMinimize(t *testing.T) {
	s, _ := newTestSession(t)
	a := s.Open(KindProxy)
	b := s.Open(KindBrowser)

	s.ToggleMinimize(b)
	assert.Equal(t, a, s.Focused())

	s.ToggleMinimize(b)
	assert.Equal(t, b, s.Focused())
	rec, _ := s.Get(b)
	assert.False(t, rec.Minimized)
}

func TestMinimizeUnfocusedKeepsFocus(t *testing.T) {
	s, _ := newTestSession(t)
	a := s.Open(KindProxy)
	b := s.Open(KindBrowser)

	s.Minimize(a)
	assert.Equal(t, b, s.Focused())
}

func TestMaximizeRestoreRoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.Open(KindBrowser)
	require.True(t, s.BeginDrag(id, geom.Point{X: 120, Y: 50}))
	s.PointerMove(geom.Point{X: 333, Y: 277})
	s.EndCapture()
	before, _ := s.Get(id)

	s.Maximize(id)
	rec, _ := s.Get(id)
	assert.True(t, rec.Maximized)
	assert.Equal(t, geom.Rect{X: 0, Y: 0, Width: 1920, Height: 1080 - 44}, rec.Geometry)
	require.NotNil(t, rec.Saved)
	assert.Equal(t, before.Geometry, *rec.Saved)

	s.Maximize(id)
	rec, _ = s.Get(id)
	assert.Equal(t, before.Geometry, *rec.Saved)

	s.Restore(id)
	rec, _ = s.Get(id)
	assert.False(t, rec.Maximized)
	assert.Nil(t, rec.Saved)
	assert.Equal(t, before.Geometry, rec.Geometry)

	s.Restore(id)
	rec, _ = s.Get(id)
	assert.Equal(t, before.Geometry, rec.Geometry)
}

func TestGetReturnsCopy(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.Open(KindAbout)
	s.Maximize(id)

	rec, _ := s.Get(id)
	rec.Saved.X = 999
	rec.Geometry.Width = 1

	fresh, _ := s.Get(id)
	assert.NotEqual(t, 999, fresh.Saved.X)
	assert.Equal(t, 1920, fresh.Geometry.Width)
}

func TestSetViewportRefitsMaximized(t *testing.T) {
	s, _ := newTestSession(t)
	maxed := s.Open(KindProxy)
	plain := s.Open(KindAbout)
	s.Maximize(maxed)
	plainBefore, _ := s.Get(plain)

	s.SetViewport(geom.Size{Width: 1280, Height: 720})

	rec, _ := s.Get(maxed)
	assert.Equal(t, geom.Rect{Width: 1280, Height: 720 - 44}, rec.Geometry)
	assert.Equal(t, geom.Size{Width: 1280, Height: 720}, s.Viewport())
	after, _ := s.Get(plain)
	assert.Equal(t, plainBefore.Geometry, after.Geometry)
}

func TestSetPresetsAppliesToLaterOpens(t *testing.T) {
	s, _ := newTestSession(t)
	open := s.Open(KindProxy)
	before, _ := s.Get(open)

	s.SetPresets(map[Kind]Preset{
		KindProxy:    {Title: "RELAY", Size: geom.Size{Width: 400, Height: 300}},
		KindTerminal: {Title: "TTY", Size: geom.Size{Width: 420, Height: 320}},
	})

	rec, _ := s.Get(open)
	assert.Equal(t, before, rec)

	term, _ := s.Get(s.Open(KindTerminal))
	assert.Equal(t, "TTY", term.Title)
	assert.Equal(t, 420, term.Geometry.Width)
	assert.Equal(t, 320, term.Geometry.Height)

	about, _ := s.Get(s.Open(KindAbout))
	assert.Equal(t, DefaultPresets()[KindAbout].Title, about.Title)
}

func TestShutdownClosesEverything(t *testing.T) {
	s, life := newTestSession(t)
	s.Open(KindProxy)
	games := s.Open(KindGames)
	s.Open(KindTerminal)

	s.Shutdown()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, ID(0), s.Focused())
	assert.Empty(t, s.Taskbar().Entries)
	assert.Equal(t, 1, life.loops[games].stops)
}

func TestStackAndTopmost(t *testing.T) {
	s, _ := newTestSession(t)
	a := s.Open(KindProxy)
	b := s.Open(KindBrowser)
	c := s.Open(KindSettings)
	s.Focus(a)
	s.Minimize(c)

	stack := s.Stack()
	require.Len(t, stack, 2)
	assert.Equal(t, b, stack[0].ID)
	assert.Equal(t, a, stack[1].ID)

	// (300, 300) lies inside both a and b; a is in front.
	id, ok := s.Topmost(geom.Point{X: 300, Y: 300})
	require.True(t, ok)
	assert.Equal(t, a, id)

	_, ok = s.Topmost(geom.Point{X: 5, Y: 5})
	assert.False(t, ok)
}

func TestFocusNextCyclesVisibleWindows(t *testing.T) {
	s, _ := newTestSession(t)
	a := s.Open(KindProxy)
	b := s.Open(KindBrowser)
	c := s.Open(KindSettings)
	s.Minimize(b)
	require.Equal(t, c, s.Focused())

	s.FocusNext(false)
	assert.Equal(t, a, s.Focused())
	s.FocusNext(false)
	assert.Equal(t, c, s.Focused())
	s.FocusNext(true)
	assert.Equal(t, a, s.Focused())
}

func TestFocusIsNoopWhenAlreadyFront(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.Open(KindProxy)
	before, _ := s.Get(id)

	s.Focus(id)

	after, _ := s.Get(id)
	assert.Equal(t, before.Z, after.Z)
}

func TestFocusRaisesAboveAll(t *testing.T) {
	s, _ := newTestSession(t)
	ids := []ID{s.Open(KindProxy), s.Open(KindBrowser), s.Open(KindTerminal)}

	for _, id := range []ID{ids[0], ids[2], ids[1], ids[0]} {
		s.Focus(id)
		focused, _ := s.Get(id)
		for _, rec := range s.Records() {
			if rec.ID != id {
				assert.Greater(t, focused.Z, rec.Z)
			}
		}
	}
}

func TestOnChangeReceivesProjection(t *testing.T) {
	var got []Taskbar
	opts := DefaultOptions()
	opts.OnChange = func(tb Taskbar) { got = append(got, tb) }
	s := NewSession(opts, nil, nil)

	id := s.Open(KindAbout)

	require.NotEmpty(t, got)
	last := got[len(got)-1]
	require.Len(t, last.Entries, 1)
	assert.Equal(t, Entry{ID: id, Kind: KindAbout, Label: "👁️ ABOUT", Focused: true}, last.Entries[0])
}

// Random operation sequences must never break the registry invariants.
func TestRandomOperationsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	s, _ := newTestSession(t)
	kinds := Kinds()

	pick := func() ID {
		return ID(r.IntN(int(s.nextID) + 2))
	}
	point := func() geom.Point {
		return geom.Point{X: r.IntN(2400) - 200, Y: r.IntN(1400) - 200}
	}

	for step := 0; step < 3000; step++ {
		switch r.IntN(13) {
		case 0, 1:
			s.Open(kinds[r.IntN(len(kinds))])
		case 2:
			s.Close(pick())
		case 3:
			s.ToggleMinimize(pick())
		case 4:
			s.ToggleMaximize(pick())
		case 5:
			s.Focus(pick())
		case 6:
			s.TaskbarClick(pick())
		case 7:
			s.BeginDrag(pick(), point())
		case 8:
			s.BeginResize(pick(), point())
		case 9, 10:
			s.PointerMove(point())
		case 11:
			s.EndCapture()
		case 12:
			s.FocusNext(r.IntN(2) == 0)
		}
		assertInvariants(t, s)
		if t.Failed() {
			t.Fatalf("invariant broken at step %d", step)
		}
	}
}

func assertInvariants(t *testing.T, s *Session) {
	t.Helper()

	seenKind := map[Kind]bool{}
	seenZ := map[int]bool{}
	visible := 0
	for _, rec := range s.Records() {
		assert.False(t, seenKind[rec.Kind], "duplicate kind %s", rec.Kind)
		seenKind[rec.Kind] = true
		assert.False(t, seenZ[rec.Z], "duplicate z %d", rec.Z)
		seenZ[rec.Z] = true
		assert.LessOrEqual(t, rec.Z, s.nextZ)
		assert.Equal(t, rec.Maximized, rec.Saved != nil)
		if !rec.Minimized {
			visible++
		}
	}

	if visible == 0 {
		assert.Equal(t, ID(0), s.Focused())
	} else {
		rec, ok := s.Get(s.Focused())
		if assert.True(t, ok, "focused id %d missing", s.Focused()) {
			assert.False(t, rec.Minimized)
		}
	}

	if c := s.Capture(); c.Active() {
		rec, ok := s.Get(c.Window)
		if assert.True(t, ok, "capture targets missing window %d", c.Window) {
			assert.False(t, rec.Minimized)
		}
	}

	tb := s.Taskbar()
	records := s.Records()
	if assert.Len(t, tb.Entries, len(records)) {
		for i, e := range tb.Entries {
			assert.Equal(t, records[i].ID, e.ID)
			assert.Equal(t, records[i].Minimized, e.Minimized)
			assert.Equal(t, records[i].ID == s.Focused(), e.Focused)
		}
	}
}
