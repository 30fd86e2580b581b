package window

import (
	"fmt"
	"slices"
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

const goLabel = "GO"

// ProxyPanel routes a destination through the configured proxy engine and
// shows the result as text.
type ProxyPanel struct {
	Base
	engine    proxy.Engine
	transport proxy.Transport
	status    proxy.Status
	base      string
	client    *fetch.Client
	timeout   time.Duration
	input     textinput.Model
	page      pageView
	seq       int
	target    string

	engineSpans    []span
	transportSpans []span
	goSpan         span
}

// ProxyOptions configures a new proxy panel
type ProxyOptions struct {
	BaseURL   string
	Engine    proxy.Engine
	Transport proxy.Transport
	Timeout   time.Duration
	Client    *fetch.Client
}

// NewProxy creates a proxy panel
func NewProxy(id wm.ID, host Host, styles ui.Styles, opts ProxyOptions) *ProxyPanel {
	in := textinput.New()
	in.Prompt = "URL ▸ "
	in.Placeholder = "enter a destination"
	in.CharLimit = 2048

	if !slices.Contains(proxy.Engines, opts.Engine) {
		opts.Engine = proxy.EngineUV
	}
	if !slices.Contains(proxy.Transports, opts.Transport) {
		opts.Transport = proxy.TransportEpoxy
	}

	p := &ProxyPanel{
		Base:      NewBase(id, "proxy", host, styles),
		engine:    opts.Engine,
		transport: opts.Transport,
		base:      opts.BaseURL,
		client:    opts.Client,
		timeout:   opts.Timeout,
		input:     in,
	}
	p.page.SetContent("Pick an engine and transport, then enter a destination.")
	return p
}

// SetFocus focuses the URL input with the panel
func (p *ProxyPanel) SetFocus(focused bool) {
	p.focused = focused
	if focused {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

// Status returns the connection state
func (p *ProxyPanel) Status() proxy.Status { return p.status }

// Engine returns the selected engine
func (p *ProxyPanel) Engine() proxy.Engine { return p.engine }

// Transport returns the selected transport
func (p *ProxyPanel) Transport() proxy.Transport { return p.transport }

// Target returns the last navigation target
func (p *ProxyPanel) Target() string { return p.target }

// Yank returns the last navigation target
func (p *ProxyPanel) Yank() string { return p.target }

// SetEngine selects an engine
func (p *ProxyPanel) SetEngine(e proxy.Engine) {
	p.engine = e
	p.status = proxy.StatusReady
	p.host.Toast("Engine: " + strings.ToUpper(string(e)))
}

// SetTransport selects a transport
func (p *ProxyPanel) SetTransport(t proxy.Transport) {
	p.transport = t
	p.status = proxy.StatusReady
	p.host.Toast("Transport: " + strings.ToUpper(string(t)))
}

// Navigate routes the input value through the proxy. Empty input is ignored.
func (p *ProxyPanel) Navigate() tea.Cmd {
	dest, ok := proxy.Normalize(p.input.Value())
	if !ok {
		return nil
	}
	p.seq++
	p.status = proxy.StatusConnecting
	p.target = proxy.Target(p.base, p.engine, p.transport, dest)
	p.page.SetContent("Connecting to " + dest + " ...")
	if p.client == nil {
		return nil
	}
	return loadPage(p.client, p.timeout, p.id, p.seq, p.target)
}

// Update handles input
func (p *ProxyPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	switch msg := msg.(type) {
	case PageLoadedMsg:
		if msg.Seq != p.seq {
			return p, nil
		}
		if msg.Err != nil {
			p.status = proxy.StatusError
			p.page.SetContent(fmt.Sprintf("Error: %v", msg.Err))
			return p, nil
		}
		p.status = proxy.StatusConnected
		p.page.SetContent(msg.Page.Render())
		return p, nil

	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			return p, p.Navigate()
		case key.Matches(msg, keys.DefaultKeyMap.Engine):
			p.SetEngine(next(proxy.Engines, p.engine))
			return p, nil
		case key.Matches(msg, keys.DefaultKeyMap.Transport):
			p.SetTransport(next(proxy.Transports, p.transport))
			return p, nil
		case key.Matches(msg, keys.DefaultKeyMap.PageUp, keys.DefaultKeyMap.PageDown,
			keys.DefaultKeyMap.Up, keys.DefaultKeyMap.Down):
			return p, p.page.Update(msg)
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}
	return p, nil
}

// Click handles the engine, transport and go buttons
func (p *ProxyPanel) Click(col, row int) tea.Cmd {
	switch row {
	case 0:
		if i := hitSpan(p.engineSpans, col); i >= 0 {
			p.SetEngine(proxy.Engines[i])
		}
	case 1:
		if i := hitSpan(p.transportSpans, col); i >= 0 {
			p.SetTransport(proxy.Transports[i])
		}
	case 2:
		if col >= p.goSpan.from && col < p.goSpan.to {
			return p.Navigate()
		}
	}
	return nil
}

// View renders the panel
func (p *ProxyPanel) View(width, height int) string {
	st := p.styles
	var lines []string

	engines := make([]string, len(proxy.Engines))
	for i, e := range proxy.Engines {
		engines[i] = strings.ToUpper(string(e))
	}
	row, spans := buttonRow(st, "Engine:    ", engines, slices.Index(proxy.Engines, p.engine))
	p.engineSpans = spans
	lines = append(lines, row)

	transports := make([]string, len(proxy.Transports))
	for i, t := range proxy.Transports {
		transports[i] = strings.ToUpper(string(t))
	}
	row, spans = buttonRow(st, "Transport: ", transports, slices.Index(proxy.Transports, p.transport))
	p.transportSpans = spans
	lines = append(lines, row)

	goWidth := len(goLabel) + 2
	p.input.Width = max(width-lipgloss.Width(p.input.Prompt)-goWidth-2, 1)
	input := p.input.View()
	gap := max(width-lipgloss.Width(input)-goWidth, 1)
	p.goSpan = span{from: lipgloss.Width(input) + gap, to: lipgloss.Width(input) + gap + goWidth}
	lines = append(lines, input+strings.Repeat(" ", gap)+st.ButtonActive.Render(goLabel))

	lines = append(lines, p.statusStyle().Render(proxy.StatusLine(p.engine, p.transport, p.status)))
	lines = append(lines, rule(st, width))
	lines = append(lines, p.page.View(width, height-len(lines)))

	return fill(strings.Split(strings.Join(lines, "\n"), "\n"), height)
}

func (p *ProxyPanel) statusStyle() lipgloss.Style {
	switch p.status {
	case proxy.StatusConnecting:
		return p.styles.Warning
	case proxy.StatusConnected:
		return p.styles.Success
	case proxy.StatusError:
		return p.styles.Error
	default:
		return p.styles.Muted
	}
}

// next returns the item after cur, wrapping around
func next[T comparable](items []T, cur T) T {
	i := slices.Index(items, cur)
	return items[(i+1)%len(items)]
}
