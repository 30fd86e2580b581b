package wm

import (
	"github.com/kmacinski/demonos/internal/geom"
	"go.uber.org/zap"
)

// CaptureMode is the phase of the pointer capture state machine
type CaptureMode int

const (
	CaptureIdle CaptureMode = iota
	CaptureDragging
	CaptureResizing
)

func (m CaptureMode) String() string {
	switch m {
	case CaptureDragging:
		return "dragging"
	case CaptureResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Capture is the active drag or resize gesture. The zero value is idle.
type Capture struct {
	Mode   CaptureMode
	Window ID

	// Dragging
	GrabOffset geom.Point

	// Resizing
	AnchorPointer geom.Point
	AnchorSize    geom.Size
}

// Active reports whether a gesture is in progress
func (c Capture) Active() bool {
	return c.Mode != CaptureIdle
}

// Capture returns the current capture state
func (s *Session) Capture() Capture {
	return s.capture
}

// BeginDrag starts moving a window from a title bar grab at p. It is
// ignored while another capture is active.
func (s *Session) BeginDrag(id ID, p geom.Point) bool {
	rec, ok := s.capturable(id)
	if !ok {
		return false
	}
	s.capture = Capture{
		Mode:       CaptureDragging,
		Window:     id,
		GrabOffset: p.Sub(rec.Geometry.Origin()),
	}
	s.log.Debug("drag started", zap.Int("id", int(id)), zap.Int("x", p.X), zap.Int("y", p.Y))
	return true
}

// BeginResize starts resizing a window from its resize handle at p. It is
// ignored while another capture is active.
func (s *Session) BeginResize(id ID, p geom.Point) bool {
	rec, ok := s.capturable(id)
	if !ok {
		return false
	}
	s.capture = Capture{
		Mode:          CaptureResizing,
		Window:        id,
		AnchorPointer: p,
		AnchorSize:    rec.Geometry.Size(),
	}
	s.log.Debug("resize started", zap.Int("id", int(id)), zap.Int("x", p.X), zap.Int("y", p.Y))
	return true
}

// PointerMove applies pointer motion to the captured window. It reports
// whether any geometry changed.
func (s *Session) PointerMove(p geom.Point) bool {
	if !s.capture.Active() {
		return false
	}
	rec, ok := s.records[s.capture.Window]
	if !ok {
		s.capture = Capture{}
		return false
	}

	before := rec.Geometry
	switch s.capture.Mode {
	case CaptureDragging:
		origin := geom.ClampOrigin(p.Sub(s.capture.GrabOffset), s.viewport, s.opts.MinVisible)
		rec.Geometry.X, rec.Geometry.Y = origin.X, origin.Y
	case CaptureResizing:
		d := p.Sub(s.capture.AnchorPointer)
		size := geom.FloorSize(geom.Size{
			Width:  s.capture.AnchorSize.Width + d.X,
			Height: s.capture.AnchorSize.Height + d.Y,
		}, s.opts.MinSize)
		rec.Geometry.Width, rec.Geometry.Height = size.Width, size.Height
	}
	if rec.Geometry == before {
		return false
	}
	s.changed()
	return true
}

// EndCapture returns to idle. Pointer release ends a capture wherever it
// happens.
func (s *Session) EndCapture() {
	if !s.capture.Active() {
		return
	}
	s.log.Debug("capture ended", zap.Stringer("mode", s.capture.Mode), zap.Int("id", int(s.capture.Window)))
	s.capture = Capture{}
}

func (s *Session) capturable(id ID) (*Record, bool) {
	if s.capture.Active() {
		return nil, false
	}
	rec, ok := s.records[id]
	if !ok || rec.Minimized {
		return nil, false
	}
	return rec, true
}
