package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/demonos/internal/layout"
	"github.com/kmacinski/demonos/internal/window"
)

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.state.Booting() {
		if msg.Action == tea.MouseActionPress {
			a.finishBoot()
		}
		return nil
	}
	if a.state.ActiveModal != "" {
		if msg.Action == tea.MouseActionPress {
			a.state.CloseModal()
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionRelease:
		a.session.EndCapture()
		return nil
	case tea.MouseActionMotion:
		if a.session.Capture().Active() {
			a.session.PointerMove(a.layout.Pixel(msg.X, msg.Y))
		}
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return a.delegate(a.session.Focused(), tea.KeyMsg{Type: tea.KeyPgUp})
	case tea.MouseButtonWheelDown:
		return a.delegate(a.session.Focused(), tea.KeyMsg{Type: tea.KeyPgDown})
	case tea.MouseButtonLeft:
		return a.press(msg.X, msg.Y)
	}
	return nil
}

// press handles a left button press at a cell
func (a *App) press(col, row int) tea.Cmd {
	menu := 0
	if a.state.MenuOpen {
		menu = len(a.menuItems())
	}
	hit := a.layout.HitTest(col, row, a.session.Stack(), a.session.Taskbar(), menu)

	switch hit.Zone {
	case layout.ZoneMenu, layout.ZoneMenuItem, layout.ZoneStart:
	default:
		a.state.CloseMenu()
	}

	if hit.Zone.Window() {
		a.session.Focus(hit.Window)
	}
	p := a.layout.Pixel(col, row)

	switch hit.Zone {
	case layout.ZoneStart:
		a.state.ToggleMenu()
	case layout.ZoneMenuItem:
		kind := a.menuItems()[hit.Item].Kind
		a.state.CloseMenu()
		a.session.Open(kind)
	case layout.ZoneTask:
		a.session.TaskbarClick(hit.Window)
	case layout.ZoneTitle:
		a.session.BeginDrag(hit.Window, p)
	case layout.ZoneResize:
		a.session.BeginResize(hit.Window, p)
	case layout.ZoneMinimize:
		a.session.Minimize(hit.Window)
	case layout.ZoneMaximize:
		a.session.ToggleMaximize(hit.Window)
	case layout.ZoneClose:
		a.session.Close(hit.Window)
	case layout.ZoneBody:
		panel, ok := a.panel(hit.Window)
		if !ok {
			return nil
		}
		if c, ok := panel.(window.Clicker); ok {
			a.syncFocus()
			return c.Click(hit.Col, hit.Row)
		}
	}
	return nil
}
