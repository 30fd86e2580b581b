package window

import (
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/demonos/internal/config"
	"github.com/kmacinski/demonos/internal/fetch"
	"github.com/kmacinski/demonos/internal/proxy"
	"github.com/kmacinski/demonos/internal/ticker"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
	"go.uber.org/zap"
)

// Deps are the collaborators panels are built with
type Deps struct {
	Host       Host
	Styles     ui.Styles
	Fetch      *fetch.Client
	Proxy      config.ProxyConfig
	Appearance func() config.AppearanceConfig
	Scheduler  *ticker.Scheduler
	Rand       *rand.Rand
	Log        *zap.Logger
}

// Dispatcher fills window surfaces with the panel for their kind and stops
// running games when their window goes away. It implements wm.Lifecycle.
type Dispatcher struct {
	deps    Deps
	pending []tea.Cmd
}

var _ wm.Lifecycle = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher
func NewDispatcher(deps Deps) *Dispatcher {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.Scheduler == nil {
		deps.Scheduler = ticker.NewScheduler()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if deps.Appearance == nil {
		deps.Appearance = func() config.AppearanceConfig { return config.Default.Appearance }
	}
	return &Dispatcher{deps: deps}
}

// SetStyles changes the styles new panels are created with
func (d *Dispatcher) SetStyles(styles ui.Styles) {
	d.deps.Styles = styles
}

// SetProxy changes the proxy settings new panels are created with
func (d *Dispatcher) SetProxy(cfg config.ProxyConfig) {
	d.deps.Proxy = cfg
}

// Initialize implements wm.Lifecycle
func (d *Dispatcher) Initialize(id wm.ID, kind wm.Kind, surface *wm.Surface) {
	panel := d.build(id, kind, surface)
	if panel == nil {
		d.deps.Log.Warn("no panel for window kind", zap.Int("id", int(id)), zap.Stringer("kind", kind))
		return
	}
	surface.Attach(panel)
	d.deps.Log.Debug("window initialized", zap.Int("id", int(id)), zap.Stringer("kind", kind))
}

// Teardown implements wm.Lifecycle
func (d *Dispatcher) Teardown(id wm.ID, kind wm.Kind, surface *wm.Surface) {
	if g, ok := surface.Content().(*GamesPanel); ok {
		g.Stop()
		d.deps.Log.Debug("game stopped", zap.Int("id", int(id)))
	}
}

// Commands drains the commands queued while building panels
func (d *Dispatcher) Commands() tea.Cmd {
	if len(d.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(d.pending...)
	d.pending = nil
	return cmd
}

func (d *Dispatcher) build(id wm.ID, kind wm.Kind, surface *wm.Surface) Window {
	deps := d.deps
	switch kind {
	case wm.KindProxy:
		d.pending = append(d.pending, textinput.Blink)
		return NewProxy(id, deps.Host, deps.Styles, ProxyOptions{
			BaseURL:   deps.Proxy.BaseURL,
			Engine:    proxy.Engine(deps.Appearance().DefaultEngine),
			Transport: proxy.Transport(deps.Proxy.Transport),
			Timeout:   deps.Proxy.Timeout,
			Client:    deps.Fetch,
		})
	case wm.KindBrowser:
		d.pending = append(d.pending, textinput.Blink)
		return NewBrowser(id, deps.Host, deps.Styles, deps.Fetch, deps.Proxy.Timeout)
	case wm.KindSettings:
		return NewSettings(id, deps.Host, deps.Styles, deps.Appearance())
	case wm.KindTerminal:
		d.pending = append(d.pending, textinput.Blink)
		return NewTerminal(id, deps.Host, deps.Styles, func() string { return d.deps.Appearance().Theme })
	case wm.KindGames:
		return NewGames(id, deps.Host, deps.Styles, deps.Scheduler, surface, deps.Rand)
	case wm.KindAbout:
		return NewAbout(id, deps.Host, deps.Styles)
	}
	return nil
}
