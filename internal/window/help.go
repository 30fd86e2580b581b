package window

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/demonos/internal/keys"
	"github.com/kmacinski/demonos/internal/ui"
)

// Help displays keybinding help. It is shown as a modal over the desktop
// rather than inside a window.
type Help struct {
	Base
}

// NewHelp creates a new help overlay
func NewHelp(styles ui.Styles) *Help {
	return &Help{
		Base: NewBase(0, "help", nil, styles),
	}
}

// Update handles input (modal keys handled by app)
func (h *Help) Update(msg tea.Msg) (Window, tea.Cmd) {
	return h, nil
}

// View renders the help content
func (h *Help) View(width, height int) string {
	contentWidth := width - 6   // padding and border
	contentHeight := height - 4 // padding and border

	if contentWidth < 1 || contentHeight < 1 {
		return ""
	}

	var lines []string
	lines = append(lines, h.styles.ModalTitle.Render("Keybindings"))

	for _, b := range keys.HelpBindings() {
		keyStyle := h.styles.Bold.Width(10)
		line := fmt.Sprintf("%s %s", keyStyle.Render(b.Help().Key), h.styles.Text.Render(b.Help().Desc))
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, h.styles.Muted.Render("Mouse: drag title bars, ◢ resizes"))
	lines = append(lines, h.styles.Muted.Render("Press F1 or Esc to close"))

	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	return h.styles.Modal.
		Width(contentWidth).
		Render(strings.Join(lines, "\n"))
}
