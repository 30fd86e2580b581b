package app

import "time"

// Phase is what the screen is showing
type Phase int

const (
	PhaseBoot Phase = iota
	PhaseDesktop
)

// toastFor is how long a toast stays up
const toastFor = 2 * time.Second

// State holds the desktop chrome state the window manager does not own
type State struct {
	Phase Phase

	// Boot
	BootShown int // boot log lines revealed so far

	// UI
	ActiveModal string // empty if no modal
	MenuOpen    bool
	MenuIndex   int
	Clock       string

	// Toast
	Toast    string
	ToastSeq int
}

// NewState creates a new state with defaults
func NewState(skipBoot bool) *State {
	s := &State{}
	if skipBoot {
		s.Phase = PhaseDesktop
	}
	return s
}

// Booting reports whether the boot log is still on screen
func (s *State) Booting() bool {
	return s.Phase == PhaseBoot
}

// ToggleModal toggles a modal on/off
func (s *State) ToggleModal(name string) {
	if s.ActiveModal == name {
		s.ActiveModal = ""
	} else {
		s.ActiveModal = name
	}
}

// CloseModal closes any open modal
func (s *State) CloseModal() {
	s.ActiveModal = ""
}

// ToggleMenu opens or closes the start menu. Opening resets the selection.
func (s *State) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
	s.MenuIndex = 0
}

// CloseMenu closes the start menu
func (s *State) CloseMenu() {
	s.MenuOpen = false
	s.MenuIndex = 0
}

// MoveMenu moves the menu selection, wrapping around n items
func (s *State) MoveMenu(delta, n int) {
	if n == 0 {
		return
	}
	s.MenuIndex = ((s.MenuIndex+delta)%n + n) % n
}

// ShowToast replaces the current toast and returns its sequence number
func (s *State) ShowToast(msg string) int {
	s.ToastSeq++
	s.Toast = msg
	return s.ToastSeq
}

// ExpireToast clears the toast if seq is still the latest one
func (s *State) ExpireToast(seq int) {
	if seq == s.ToastSeq {
		s.Toast = ""
	}
}
