package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
)

var aboutText = []string{
	"DemonOS v6.6.6",
	"Infernal Kernel. Built for the damned.",
	"",
	"A desktop in your terminal: drag windows by their",
	"title bar, resize from the ◢ corner, and use the",
	"taskbar to switch or minimize.",
	"",
	"Apps",
	"  DEMONPROXY   route pages through UV or Scramjet",
	"  INFERNONET   plain text browsing with history",
	"  SETTINGS     themes, scanlines and accents",
	"  TERMINAL     demon-sh with a dozen commands",
	"  HELLARCADE   snake, breakout and pong",
	"",
	"F1 lists every key binding.",
}

// AboutPanel shows static information about the desktop
type AboutPanel struct {
	Base
}

// NewAbout creates an about panel
func NewAbout(id wm.ID, host Host, styles ui.Styles) *AboutPanel {
	return &AboutPanel{Base: NewBase(id, "about", host, styles)}
}

// Update ignores input
func (a *AboutPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	return a, nil
}

// View renders the panel
func (a *AboutPanel) View(width, height int) string {
	st := a.styles
	lines := make([]string, 0, len(aboutText))
	for i, l := range aboutText {
		switch {
		case i == 0:
			lines = append(lines, centered(width, st.Heading.Render(l)))
		case i == 1:
			lines = append(lines, centered(width, st.Muted.Render(l)))
		case l == "Apps":
			lines = append(lines, st.Accent.Render(l))
		default:
			lines = append(lines, st.Text.Render(l))
		}
	}
	return fill(lines, height)
}
