// Package window holds the content panels shown inside desktop windows and
// the dispatcher that creates and tears them down as the session opens and
// closes windows.
package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/demonos/internal/geom"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
)

// Window defines the interface for all panel types
type Window interface {
	// Update handles input when focused, and addressed messages
	Update(msg tea.Msg) (Window, tea.Cmd)

	// View renders the panel body
	View(width, height int) string

	// Focus state
	Focused() bool
	SetFocus(bool)

	// Identity
	Name() string
	ID() wm.ID

	// Styles are swapped when the theme changes
	SetStyles(ui.Styles)
}

// Clicker is implemented by panels with clickable controls. Coordinates are
// relative to the panel body.
type Clicker interface {
	Click(col, row int) tea.Cmd
}

// Yanker is implemented by panels that have something worth copying
type Yanker interface {
	Yank() string
}

// Host is what panels may ask of the desktop
type Host interface {
	Open(kind wm.Kind) wm.ID
	Close(id wm.ID)
	Toast(msg string)
	Windows() []wm.Entry
	Viewport() geom.Size
}
