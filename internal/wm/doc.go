/*
Package wm is the window manager core of the desktop session.

A Session owns every open window record and keeps four things consistent
after each operation: at most one window per Kind, strictly increasing
stacking ranks, a single focused window that is never minimized, and at most
one pointer capture (drag or resize) that always targets a live window.

The package has no knowledge of terminals, key codes or mouse events. An
adapter translates input into the explicit operations:

	s := wm.NewSession(wm.DefaultOptions(), dispatcher, logger)
	id := s.Open(wm.KindTerminal)
	s.BeginDrag(id, geom.Point{X: 200, Y: 200})
	s.PointerMove(geom.Point{X: 300, Y: 250})
	s.EndCapture()
	s.Close(id)

Operations that name a missing window are silent no-ops, and proposed
geometry is clamped rather than rejected. A Session is driven from a single
event loop and is not safe for concurrent use.
*/
package wm
