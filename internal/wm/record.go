package wm

import "github.com/kmacinski/demonos/internal/geom"

// ID identifies an open window. IDs start at 1 and are never reused within
// a session; the zero value means "no window".
type ID int

// Record is the state of one open window
type Record struct {
	ID        ID
	Kind      Kind
	Title     string
	Surface   *Surface
	Geometry  geom.Rect
	Z         int
	Focused   bool
	Minimized bool
	Maximized bool
	// Saved holds the pre-maximize geometry while Maximized is true
	Saved *geom.Rect

	closing bool
}

// Loop is a cancellation handle for a recurring frame callback
type Loop interface {
	Stop()
}

// Surface is the opaque visual handle owned by a window record. The content
// collaborator attaches whatever it renders, and binds its frame loop so the
// loop stops when the window goes away.
type Surface struct {
	content  any
	loop     Loop
	released bool
}

func newSurface() *Surface {
	return &Surface{}
}

// Attach sets the surface content
func (s *Surface) Attach(content any) {
	if s.released {
		return
	}
	s.content = content
}

// Content returns the attached content, or nil once released
func (s *Surface) Content() any {
	return s.content
}

// Bind retains l as the surface's running loop. A previously bound loop is
// stopped; binding to a released surface stops l immediately.
func (s *Surface) Bind(l Loop) {
	if l == nil {
		return
	}
	if s.released {
		l.Stop()
		return
	}
	if s.loop != nil && s.loop != l {
		s.loop.Stop()
	}
	s.loop = l
}

// Released reports whether the owning window has been destroyed
func (s *Surface) Released() bool {
	return s.released
}

func (s *Surface) release() {
	if s.released {
		return
	}
	if s.loop != nil {
		s.loop.Stop()
		s.loop = nil
	}
	s.content = nil
	s.released = true
}
