package window

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/demonos/internal/keys"
	"github.com/kmacinski/demonos/internal/shell"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
)

// TerminalPanel is a scrollback plus a prompt in front of the shell
type TerminalPanel struct {
	Base
	shell *shell.Shell
	input textinput.Model
	page  pageView
}

// NewTerminal creates a terminal panel. theme reports the current desktop
// theme for neofetch.
func NewTerminal(id wm.ID, host Host, styles ui.Styles, theme func() string) *TerminalPanel {
	in := textinput.New()
	in.Prompt = shell.Prompt
	in.CharLimit = 512
	in.Placeholder = "type help"

	t := &TerminalPanel{
		Base:  NewBase(id, "terminal", host, styles),
		input: in,
	}
	t.shell = shell.New(&desktopEnv{host: host, theme: theme})
	return t
}

// Shell exposes the interpreter
func (t *TerminalPanel) Shell() *shell.Shell { return t.shell }

// SetFocus focuses the prompt with the panel
func (t *TerminalPanel) SetFocus(focused bool) {
	t.focused = focused
	if focused {
		t.input.Focus()
	} else {
		t.input.Blur()
	}
}

// SetStyles restyles the scrollback too
func (t *TerminalPanel) SetStyles(styles ui.Styles) {
	t.styles = styles
	t.sync()
}

// Yank returns the last output line
func (t *TerminalPanel) Yank() string {
	lines := t.shell.Lines()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1].Text
}

// Update handles input
func (t *TerminalPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused {
		return t, nil
	}
	switch {
	case key.Matches(km, keys.DefaultKeyMap.Enter):
		line := t.input.Value()
		t.input.SetValue("")
		t.shell.Exec(line)
		t.sync()
		return t, nil
	case key.Matches(km, keys.DefaultKeyMap.Up):
		t.input.SetValue(t.shell.HistoryUp())
		t.input.CursorEnd()
		return t, nil
	case key.Matches(km, keys.DefaultKeyMap.Down):
		t.input.SetValue(t.shell.HistoryDown())
		t.input.CursorEnd()
		return t, nil
	case key.Matches(km, keys.DefaultKeyMap.PageUp, keys.DefaultKeyMap.PageDown):
		return t, t.page.Update(km)
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(km)
	return t, cmd
}

// sync renders the scrollback into the page and scrolls to its end
func (t *TerminalPanel) sync() {
	lines := t.shell.Lines()
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = t.lineStyle(l.Class).Render(l.Text)
	}
	t.page.SetContent(strings.Join(out, "\n"))
	if t.page.ready {
		t.page.viewport.GotoBottom()
	}
}

func (t *TerminalPanel) lineStyle(c shell.Class) lipgloss.Style {
	switch c {
	case shell.Info:
		return t.styles.Accent
	case shell.Success:
		return t.styles.Success
	case shell.Error:
		return t.styles.Error
	default:
		return t.styles.Text
	}
}

// View renders the panel
func (t *TerminalPanel) View(width, height int) string {
	t.input.Width = max(width-lipgloss.Width(shell.Prompt)-1, 1)
	wasReady := t.page.ready
	body := t.page.View(width, max(height-1, 1))
	if !wasReady {
		t.page.viewport.GotoBottom()
		body = t.page.viewport.View()
	}
	return fill(append(strings.Split(body, "\n"), t.input.View()), height)
}

// desktopEnv adapts the host to what shell commands need
type desktopEnv struct {
	host  Host
	theme func() string
}

func (e *desktopEnv) OpenApp(name string) bool {
	kind, ok := wm.ParseKind(name)
	if !ok {
		return false
	}
	e.host.Open(kind)
	return true
}

func (e *desktopEnv) CloseWindow(id int) bool {
	for _, w := range e.host.Windows() {
		if int(w.ID) == id {
			e.host.Close(w.ID)
			return true
		}
	}
	return false
}

func (e *desktopEnv) Windows() []shell.Window {
	entries := e.host.Windows()
	out := make([]shell.Window, len(entries))
	for i, w := range entries {
		out[i] = shell.Window{ID: int(w.ID), Kind: w.Kind.String(), Title: w.Label, Minimized: w.Minimized}
	}
	return out
}

func (e *desktopEnv) Toast(msg string) { e.host.Toast(msg) }

func (e *desktopEnv) Theme() string {
	if e.theme == nil {
		return "infernal"
	}
	return e.theme()
}

func (e *desktopEnv) Resolution() string {
	v := e.host.Viewport()
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}
