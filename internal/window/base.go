package window

import (
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
)

// Base provides common functionality for panels
type Base struct {
	id      wm.ID
	name    string
	focused bool
	styles  ui.Styles
	host    Host
}

// NewBase creates a new base panel
func NewBase(id wm.ID, name string, host Host, styles ui.Styles) Base {
	return Base{
		id:     id,
		name:   name,
		host:   host,
		styles: styles,
	}
}

// ID returns the owning window id
func (b *Base) ID() wm.ID {
	return b.id
}

// Name returns the panel name
func (b *Base) Name() string {
	return b.name
}

// Focused returns whether the panel is focused
func (b *Base) Focused() bool {
	return b.focused
}

// SetFocus sets the focus state
func (b *Base) SetFocus(focused bool) {
	b.focused = focused
}

// Styles returns the panel styles
func (b *Base) Styles() ui.Styles {
	return b.styles
}

// SetStyles replaces the panel styles
func (b *Base) SetStyles(styles ui.Styles) {
	b.styles = styles
}
