package wm

// Focus raises a window to the front and makes it the focused window,
// un-minimizing it if needed. Focusing the focused frontmost window is a
// no-op.
func (s *Session) Focus(id ID) {
	rec, ok := s.records[id]
	if !ok {
		return
	}
	if s.focused == id && !rec.Minimized && rec.Z == s.nextZ {
		return
	}
	rec.Minimized = false
	s.nextZ++
	rec.Z = s.nextZ
	s.focused = id
	s.changed()
}

// Focused returns the focused window id, or 0 when nothing is focused
func (s *Session) Focused() ID {
	return s.focused
}

// FocusNext moves focus to the next visible window in open order
func (s *Session) FocusNext(reverse bool) {
	visible := make([]ID, 0, len(s.order))
	for _, id := range s.order {
		if !s.records[id].Minimized {
			visible = append(visible, id)
		}
	}
	if len(visible) == 0 {
		return
	}

	current := -1
	for i, id := range visible {
		if id == s.focused {
			current = i
			break
		}
	}
	var next int
	switch {
	case current < 0:
		next = 0
	case reverse:
		next = (current - 1 + len(visible)) % len(visible)
	default:
		next = (current + 1) % len(visible)
	}
	s.Focus(visible[next])
}

// reassignFocus picks the highest ranked visible window, or none
func (s *Session) reassignFocus() {
	var best *Record
	for _, id := range s.order {
		rec := s.records[id]
		if rec.Minimized {
			continue
		}
		if best == nil || rec.Z > best.Z {
			best = rec
		}
	}
	if best == nil {
		s.focused = 0
		return
	}
	s.focused = best.ID
}
