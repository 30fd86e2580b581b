package wm

// Entry is one taskbar button
type Entry struct {
	ID        ID
	Kind      Kind
	Label     string
	Focused   bool
	Minimized bool
}

// Taskbar is the display list derived from the registry, in open order
type Taskbar struct {
	Entries []Entry
}

// Taskbar returns the current projection
func (s *Session) Taskbar() Taskbar {
	entries := make([]Entry, len(s.taskbar.Entries))
	copy(entries, s.taskbar.Entries)
	return Taskbar{Entries: entries}
}

// TaskbarClick minimizes the focused window, or focuses any other
func (s *Session) TaskbarClick(id ID) {
	rec, ok := s.records[id]
	if !ok {
		return
	}
	if s.focused == id && !rec.Minimized {
		s.Minimize(id)
		return
	}
	s.Focus(id)
}

func (s *Session) project() Taskbar {
	entries := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		rec := s.records[id]
		entries = append(entries, Entry{
			ID:        id,
			Kind:      rec.Kind,
			Label:     rec.Title,
			Focused:   id == s.focused,
			Minimized: rec.Minimized,
		})
	}
	return Taskbar{Entries: entries}
}
