package window

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/kmacinski/demonos/internal/fetch"
	"github.com/kmacinski/demonos/internal/wm"
)

// loadPage fetches target off the event loop
func loadPage(client *fetch.Client, timeout time.Duration, id wm.ID, seq int, target string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		page, err := client.Get(ctx, target)
		return PageLoadedMsg{Window: id, Seq: seq, Page: page, Err: err}
	}
}

// pageView is a scrollable, wrapped text area
type pageView struct {
	viewport viewport.Model
	ready    bool
	text     string
}

func (p *pageView) SetContent(text string) {
	p.text = text
	if p.ready {
		p.viewport.SetContent(ansi.Wrap(text, p.viewport.Width, ""))
		p.viewport.GotoTop()
	}
}

func (p *pageView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return cmd
}

func (p *pageView) View(width, height int) string {
	width, height = max(width, 1), max(height, 1)
	if !p.ready {
		p.viewport = viewport.New(width, height)
		p.viewport.SetContent(ansi.Wrap(p.text, width, ""))
		p.ready = true
	} else if p.viewport.Width != width || p.viewport.Height != height {
		p.viewport.Width = width
		p.viewport.Height = height
		p.viewport.SetContent(ansi.Wrap(p.text, width, ""))
	}
	return p.viewport.View()
}
