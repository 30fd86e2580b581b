package app

import (
	"github.com/kmacinski/demonos/internal/backdrop"
	"github.com/kmacinski/demonos/internal/layout"
	"github.com/kmacinski/demonos/internal/wm"
)

// View renders the application
func (a *App) View() string {
	if a.layout.Width() == 0 || a.layout.Height() == 0 {
		return "Loading..."
	}
	if a.state.Booting() {
		return a.renderBoot()
	}
	return a.layout.Render(a.scene())
}

// scene collects everything the layout draws this frame
func (a *App) scene() layout.Scene {
	stack := a.session.Stack()
	bodies := make(map[wm.ID]string, len(stack))
	for _, rec := range stack {
		panel, ok := a.panel(rec.ID)
		if !ok {
			continue
		}
		cols, rows := a.layout.BodySize(rec)
		bodies[rec.ID] = panel.View(cols, rows)
	}

	s := layout.Scene{
		Windows:   stack,
		Bodies:    bodies,
		Taskbar:   a.session.Taskbar(),
		Dots:      a.dots(),
		Scanlines: a.cfg.Appearance.Scanlines,
		Clock:     a.state.Clock,
		Toast:     a.state.Toast,
	}
	if a.state.MenuOpen {
		s.Menu = a.menuItems()
		s.MenuIndex = a.state.MenuIndex
	}
	if a.state.ActiveModal == "help" {
		s.Modal = a.help.View(min(56, a.layout.Width()-4), min(30, a.layout.DesktopRows()-2))
	}
	return s
}

func (a *App) dots() []backdrop.Dot {
	return a.field.Dots(a.layout.Metrics().Cell)
}
