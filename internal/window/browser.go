package window

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/demonos/internal/fetch"
	"github.com/kmacinski/demonos/internal/keys"
	"github.com/kmacinski/demonos/internal/proxy"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
)

var navLabels = []string{"◀", "▶", "⟳"}

// BrowserPanel fetches pages directly and keeps its own back/forward history
type BrowserPanel struct {
	Base
	client  *fetch.Client
	timeout time.Duration
	input   textinput.Model
	page    pageView
	history []string
	pos     int // index into history, -1 when empty
	seq     int
	loading bool
	title   string
	err     error

	navSpans []span
	goSpan   span
}

// NewBrowser creates a browser panel
func NewBrowser(id wm.ID, host Host, styles ui.Styles, client *fetch.Client, timeout time.Duration) *BrowserPanel {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "https://"
	in.CharLimit = 2048

	b := &BrowserPanel{
		Base:    NewBase(id, "browser", host, styles),
		client:  client,
		timeout: timeout,
		input:   in,
		pos:     -1,
	}
	b.page.SetContent("Enter an address to begin.")
	return b
}

// SetFocus focuses the address bar with the panel
func (b *BrowserPanel) SetFocus(focused bool) {
	b.focused = focused
	if focused {
		b.input.Focus()
	} else {
		b.input.Blur()
	}
}

// URL returns the current history entry
func (b *BrowserPanel) URL() string {
	if b.pos < 0 {
		return ""
	}
	return b.history[b.pos]
}

// Yank returns the current address
func (b *BrowserPanel) Yank() string { return b.URL() }

// CanGoBack reports whether there is an older entry
func (b *BrowserPanel) CanGoBack() bool { return b.pos > 0 }

// CanGoForward reports whether there is a newer entry
func (b *BrowserPanel) CanGoForward() bool { return b.pos >= 0 && b.pos < len(b.history)-1 }

// Go navigates to the address bar value, dropping any forward history
func (b *BrowserPanel) Go() tea.Cmd {
	u, ok := proxy.Normalize(b.input.Value())
	if !ok {
		return nil
	}
	b.history = append(b.history[:b.pos+1], u)
	b.pos = len(b.history) - 1
	return b.load()
}

// Back moves one entry back in history
func (b *BrowserPanel) Back() tea.Cmd {
	if !b.CanGoBack() {
		return nil
	}
	b.pos--
	return b.load()
}

// Forward moves one entry forward in history
func (b *BrowserPanel) Forward() tea.Cmd {
	if !b.CanGoForward() {
		return nil
	}
	b.pos++
	return b.load()
}

// Refresh reloads the current entry
func (b *BrowserPanel) Refresh() tea.Cmd {
	if b.pos < 0 {
		return nil
	}
	return b.load()
}

func (b *BrowserPanel) load() tea.Cmd {
	u := b.URL()
	b.input.SetValue(u)
	b.seq++
	b.loading = true
	b.err = nil
	b.page.SetContent("Loading " + u + " ...")
	if b.client == nil {
		return nil
	}
	return loadPage(b.client, b.timeout, b.id, b.seq, u)
}

// Update handles input
func (b *BrowserPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		if msg.Seq != b.seq {
			return b, nil
		}
		b.loading = false
		if msg.Err != nil {
			b.err = msg.Err
			b.title = ""
			b.page.SetContent(fmt.Sprintf("Could not load %s\n\n%v", b.URL(), msg.Err))
			b.host.Toast("Page failed to load")
			return b, nil
		}
		b.title = msg.Page.Title
		b.page.SetContent(msg.Page.Render())
		return b, nil

	case tea.KeyMsg:
		if !b.focused {
			return b, nil
		}
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			return b, b.Go()
		case key.Matches(msg, keys.DefaultKeyMap.Back):
			return b, b.Back()
		case key.Matches(msg, keys.DefaultKeyMap.Forward):
			return b, b.Forward()
		case key.Matches(msg, keys.DefaultKeyMap.Refresh):
			return b, b.Refresh()
		case key.Matches(msg, keys.DefaultKeyMap.PageUp, keys.DefaultKeyMap.PageDown,
			keys.DefaultKeyMap.Up, keys.DefaultKeyMap.Down):
			return b, b.page.Update(msg)
		}
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}
	return b, nil
}

// Click handles the navigation buttons
func (b *BrowserPanel) Click(col, row int) tea.Cmd {
	if row != 0 {
		return nil
	}
	switch hitSpan(b.navSpans, col) {
	case 0:
		return b.Back()
	case 1:
		return b.Forward()
	case 2:
		return b.Refresh()
	}
	if col >= b.goSpan.from && col < b.goSpan.to {
		return b.Go()
	}
	return nil
}

// View renders the panel
func (b *BrowserPanel) View(width, height int) string {
	st := b.styles

	nav, spans := buttonRow(st, "", navLabels, -1)
	b.navSpans = spans
	navWidth := lipgloss.Width(nav)
	goWidth := len(goLabel) + 2
	b.input.Width = max(width-navWidth-goWidth-3, 1)
	input := b.input.View()
	gap := max(width-navWidth-1-lipgloss.Width(input)-goWidth, 1)
	from := navWidth + 1 + lipgloss.Width(input) + gap
	b.goSpan = span{from: from, to: from + goWidth}

	lines := []string{
		nav + " " + input + strings.Repeat(" ", gap) + st.ButtonActive.Render(goLabel),
		b.statusLine(),
		rule(st, width),
	}
	lines = append(lines, b.page.View(width, height-len(lines)))
	return fill(strings.Split(strings.Join(lines, "\n"), "\n"), height)
}

func (b *BrowserPanel) statusLine() string {
	st := b.styles
	switch {
	case b.loading:
		return st.Warning.Render("Loading...")
	case b.err != nil:
		return st.Error.Render("Error")
	case b.title != "":
		return st.Heading.Render(b.title)
	default:
		return st.Muted.Render("INFERNONET")
	}
}
