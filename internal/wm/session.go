package wm

import (
	"maps"
	"slices"
	"sort"

	"github.com/kmacinski/demonos/internal/geom"
	"go.uber.org/zap"
)

// Options configures a Session
type Options struct {
	Viewport    geom.Size
	Placement   geom.Placement
	MinVisible  geom.Size // part of a dragged window that must stay on screen
	MinSize     geom.Size // smallest size a resize may produce
	TaskbarBand int       // pixels reserved below maximized windows
	Presets     map[Kind]Preset

	// OnChange receives the taskbar projection after every mutation
	OnChange func(Taskbar)
}

// DefaultOptions returns the stock desktop metrics
func DefaultOptions() Options {
	return Options{
		Viewport: geom.Size{Width: 1920, Height: 1080},
		Placement: geom.Placement{
			Origin: geom.Point{X: 80, Y: 40},
			Step:   28,
			Margin: geom.Size{Width: 40, Height: 80},
		},
		MinVisible:  geom.Size{Width: 200, Height: 80},
		MinSize:     geom.Size{Width: 320, Height: 240},
		TaskbarBand: 44,
		Presets:     DefaultPresets(),
	}
}

// Session is the desktop session state: the window registry, stacking
// counters, focus and pointer capture.
type Session struct {
	opts     Options
	life     Lifecycle
	log      *zap.Logger
	viewport geom.Size

	records map[ID]*Record
	order   []ID // insertion order
	nextID  ID
	nextZ   int
	focused ID
	capture Capture
	taskbar Taskbar
}

// NewSession starts an empty desktop session
func NewSession(opts Options, life Lifecycle, log *zap.Logger) *Session {
	if life == nil {
		life = NopLifecycle{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Presets == nil {
		opts.Presets = DefaultPresets()
	}
	return &Session{
		opts:     opts,
		life:     life,
		log:      log,
		viewport: opts.Viewport,
		records:  make(map[ID]*Record),
	}
}

// Open creates a window of the given kind, or focuses the existing one
func (s *Session) Open(kind Kind) ID {
	if !kind.Valid() {
		return 0
	}
	if rec := s.byKind(kind); rec != nil {
		s.log.Debug("window already open", zap.Int("id", int(rec.ID)), zap.Stringer("kind", kind))
		s.Focus(rec.ID)
		return rec.ID
	}

	preset := s.preset(kind)
	s.nextID++
	id := s.nextID
	s.nextZ++

	rec := &Record{
		ID:       id,
		Kind:     kind,
		Title:    preset.Title,
		Surface:  newSurface(),
		Geometry: geom.Cascade(s.opts.Placement, preset.Size, len(s.order), s.viewport),
		Z:        s.nextZ,
	}
	s.records[id] = rec
	s.order = append(s.order, id)

	s.log.Debug("window opened",
		zap.Int("id", int(id)),
		zap.Stringer("kind", kind),
		zap.Int("x", rec.Geometry.X),
		zap.Int("y", rec.Geometry.Y),
	)

	s.life.Initialize(id, kind, rec.Surface)

	// Content may close its own window while initializing.
	if _, ok := s.records[id]; !ok {
		s.changed()
		return id
	}
	s.Focus(id)
	return id
}

// Close destroys a window. Missing ids are ignored.
func (s *Session) Close(id ID) {
	rec, ok := s.records[id]
	if !ok || rec.closing {
		return
	}
	rec.closing = true

	if s.capture.Window == id {
		s.capture = Capture{}
	}
	if rec.Kind.OwnsRunningState() {
		s.life.Teardown(id, rec.Kind, rec.Surface)
	}
	rec.Surface.release()

	delete(s.records, id)
	s.order = slices.DeleteFunc(s.order, func(v ID) bool { return v == id })

	if s.focused == id {
		s.reassignFocus()
	}

	s.log.Debug("window closed", zap.Int("id", int(id)), zap.Stringer("kind", rec.Kind))
	s.changed()
}

// ToggleMinimize flips the minimized flag of a window
func (s *Session) ToggleMinimize(id ID) {
	rec, ok := s.records[id]
	if !ok {
		return
	}
	if rec.Minimized {
		s.Unminimize(id)
	} else {
		s.Minimize(id)
	}
}

// Minimize hides a window, moving focus away from it if needed
func (s *Session) Minimize(id ID) {
	rec, ok := s.records[id]
	if !ok || rec.Minimized {
		return
	}
	rec.Minimized = true
	if s.capture.Window == id {
		s.capture = Capture{}
	}
	if s.focused == id {
		s.reassignFocus()
	}
	s.changed()
}

// Unminimize shows a minimized window and focuses it
func (s *Session) Unminimize(id ID) {
	rec, ok := s.records[id]
	if !ok || !rec.Minimized {
		return
	}
	s.Focus(id)
}

// Maximize fills the viewport above the taskbar, remembering the current
// geometry for Restore.
func (s *Session) Maximize(id ID) {
	rec, ok := s.records[id]
	if !ok || rec.Maximized {
		return
	}
	saved := rec.Geometry
	rec.Saved = &saved
	rec.Geometry = geom.Maximized(s.viewport, s.opts.TaskbarBand)
	rec.Maximized = true
	s.changed()
}

// Restore returns a maximized window to its saved geometry
func (s *Session) Restore(id ID) {
	rec, ok := s.records[id]
	if !ok || !rec.Maximized {
		return
	}
	if rec.Saved != nil {
		rec.Geometry = *rec.Saved
	}
	rec.Saved = nil
	rec.Maximized = false
	s.changed()
}

// ToggleMaximize switches between Maximize and Restore
func (s *Session) ToggleMaximize(id ID) {
	rec, ok := s.records[id]
	if !ok {
		return
	}
	if rec.Maximized {
		s.Restore(id)
	} else {
		s.Maximize(id)
	}
}

// SetViewport records new viewport dimensions. Maximized windows are refit.
func (s *Session) SetViewport(size geom.Size) {
	if size == s.viewport {
		return
	}
	s.viewport = size
	for _, id := range s.order {
		if rec := s.records[id]; rec.Maximized {
			rec.Geometry = geom.Maximized(size, s.opts.TaskbarBand)
		}
	}
	s.changed()
}

// SetPresets replaces the per-kind title and size used by later opens.
// Windows already open keep their title and geometry.
func (s *Session) SetPresets(presets map[Kind]Preset) {
	s.opts.Presets = maps.Clone(presets)
}

// Shutdown closes every window, ending the session
func (s *Session) Shutdown() {
	for _, id := range slices.Clone(s.order) {
		s.Close(id)
	}
	s.capture = Capture{}
	s.log.Debug("session shut down", zap.Int("next_id", int(s.nextID)), zap.Int("next_z", s.nextZ))
}

// Viewport returns the current viewport size
func (s *Session) Viewport() geom.Size {
	return s.viewport
}

// Len returns the number of open windows
func (s *Session) Len() int {
	return len(s.order)
}

// Get returns a copy of the record for id
func (s *Session) Get(id ID) (Record, bool) {
	rec, ok := s.records[id]
	if !ok {
		return Record{}, false
	}
	return s.snapshot(rec), true
}

// FindKind returns the id of the open window of the given kind
func (s *Session) FindKind(kind Kind) (ID, bool) {
	if rec := s.byKind(kind); rec != nil {
		return rec.ID, true
	}
	return 0, false
}

// Records returns copies of all records in open order
func (s *Session) Records() []Record {
	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.snapshot(s.records[id]))
	}
	return out
}

// Stack returns the visible windows back to front
func (s *Session) Stack() []Record {
	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		if rec := s.records[id]; !rec.Minimized {
			out = append(out, s.snapshot(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// Topmost returns the frontmost visible window containing p
func (s *Session) Topmost(p geom.Point) (ID, bool) {
	var best *Record
	for _, id := range s.order {
		rec := s.records[id]
		if rec.Minimized || !rec.Geometry.Contains(p) {
			continue
		}
		if best == nil || rec.Z > best.Z {
			best = rec
		}
	}
	if best == nil {
		return 0, false
	}
	return best.ID, true
}

func (s *Session) byKind(kind Kind) *Record {
	for _, id := range s.order {
		if rec := s.records[id]; rec.Kind == kind {
			return rec
		}
	}
	return nil
}

func (s *Session) preset(kind Kind) Preset {
	p, ok := s.opts.Presets[kind]
	if !ok {
		p = DefaultPresets()[kind]
	}
	if p.Title == "" {
		p.Title = kind.String()
	}
	return p
}

func (s *Session) snapshot(rec *Record) Record {
	c := *rec
	c.Focused = rec.ID == s.focused
	if rec.Saved != nil {
		saved := *rec.Saved
		c.Saved = &saved
	}
	return c
}

// changed reprojects the taskbar; every mutating operation ends here
func (s *Session) changed() {
	s.taskbar = s.project()
	if s.opts.OnChange != nil {
		s.opts.OnChange(s.taskbar)
	}
}
