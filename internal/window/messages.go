package window

import (
	"github.com/kmacinski/demonos/internal/config"
	"github.com/kmacinski/demonos/internal/fetch"
	"github.com/kmacinski/demonos/internal/wm"
)

// Addressed messages belong to one window and are dropped once it closes
type Addressed interface {
	Target() wm.ID
}

// PageLoadedMsg carries the result of a page fetch
type PageLoadedMsg struct {
	Window wm.ID
	Seq    int
	Page   *fetch.Page
	Err    error
}

// Target implements Addressed
func (m PageLoadedMsg) Target() wm.ID { return m.Window }

// AppearanceMsg is sent when the settings panel changes the desktop look
type AppearanceMsg struct {
	Appearance config.AppearanceConfig
}
