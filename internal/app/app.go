package app

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/demonos/internal/backdrop"
	"github.com/kmacinski/demonos/internal/config"
	"github.com/kmacinski/demonos/internal/fetch"
	"github.com/kmacinski/demonos/internal/geom"
	"github.com/kmacinski/demonos/internal/keys"
	"github.com/kmacinski/demonos/internal/layout"
	"github.com/kmacinski/demonos/internal/ticker"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/watcher"
	"github.com/kmacinski/demonos/internal/window"
	"github.com/kmacinski/demonos/internal/wm"
	"go.uber.org/zap"
)

const (
	clockInterval    = time.Second
	backdropInterval = 33 * time.Millisecond
)

// Options configures a new App
type Options struct {
	Config     *config.Config
	ConfigPath string // watched for changes when set
	Log        *zap.Logger
	SkipBoot   bool
	Now        func() time.Time
	Rand       *rand.Rand
}

// App is the main application model. It owns the window manager session
// and acts as the Host panels talk to.
type App struct {
	state    *State
	cfg      config.Config
	cfgPath  string
	log      *zap.Logger
	now      func() time.Time
	copy     func(string) error
	session  *wm.Session
	dispatch *window.Dispatcher
	layout   *layout.Manager
	styles   ui.Styles
	sched    *ticker.Scheduler
	field    *backdrop.Field
	help     *window.Help

	bootLoop *ticker.Loop

	// Commands queued by Host calls made while handling a message
	pending []tea.Cmd

	// Config watcher
	watcher *watcher.FileWatcher
	program *tea.Program
}

var _ window.Host = (*App)(nil)

// New creates a new application
func New(opts Options) *App {
	cfg := config.Default.Clone()
	if opts.Config != nil {
		cfg = opts.Config.Clone()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(opts.Now().UnixNano()), 666))
	}

	styles := ui.NewStyles(ui.Palette(cfg.Appearance.Theme, cfg.Appearance.Accent))
	metrics := layout.NewMetrics(cfg.Display.CellWidth, cfg.Display.CellHeight, cfg.Desktop.TaskbarHeight)

	a := &App{
		state:   NewState(opts.SkipBoot || cfg.Boot.Skip),
		cfg:     cfg,
		cfgPath: opts.ConfigPath,
		log:     opts.Log,
		now:     opts.Now,
		copy:    clipboard.WriteAll,
		layout:  layout.NewManager(metrics, styles),
		styles:  styles,
		sched:   ticker.NewScheduler(),
		help:    window.NewHelp(styles),
	}

	a.dispatch = window.NewDispatcher(window.Deps{
		Host:   a,
		Styles: styles,
		Fetch: fetch.New(fetch.Options{
			Timeout:   cfg.Proxy.Timeout,
			UserAgent: cfg.Proxy.UserAgent,
			Retries:   1,
		}),
		Proxy:      cfg.Proxy,
		Appearance: func() config.AppearanceConfig { return a.cfg.Appearance },
		Scheduler:  a.sched,
		Rand:       opts.Rand,
		Log:        opts.Log.Named("window"),
	})
	a.session = wm.NewSession(cfg.SessionOptions(), a.dispatch, opts.Log.Named("wm"))
	a.field = backdrop.New(a.session.Viewport(), opts.Rand)
	a.state.Clock = a.clock()

	return a
}

// SetProgram sets the tea.Program reference for sending messages from the
// config watcher
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	if a.cfgPath == "" {
		return
	}

	w, err := watcher.New(a.cfgPath, 300*time.Millisecond, func() {
		if a.program != nil {
			a.program.Send(ConfigChangedMsg{})
		}
	})
	if err != nil {
		a.log.Warn("config watcher disabled", zap.String("path", a.cfgPath), zap.Error(err))
		return
	}
	a.watcher = w
	a.watcher.Start()
}

// Cleanup stops the watcher and every running loop
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.shutdown()
}

func (a *App) shutdown() {
	a.session.Shutdown()
	a.sched.StopAll()
}

// Session exposes the window manager session
func (a *App) Session() *wm.Session { return a.session }

// Init starts the clock, the backdrop and the boot log
func (a *App) Init() tea.Cmd {
	_, clockCmd := a.sched.Start(clockInterval, func(time.Duration) tea.Cmd {
		a.state.Clock = a.clock()
		return nil
	})
	_, fieldCmd := a.sched.Start(backdropInterval, func(dt time.Duration) tea.Cmd {
		a.field.Tick(dt)
		return nil
	})
	cmds := []tea.Cmd{clockCmd, fieldCmd}
	if a.state.Booting() {
		var bootCmd tea.Cmd
		a.bootLoop, bootCmd = a.sched.Start(a.cfg.Boot.Interval, func(time.Duration) tea.Cmd {
			a.bootStep()
			return nil
		})
		cmds = append(cmds, bootCmd)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout.Resize(msg.Width, msg.Height)
		a.session.SetViewport(a.layout.Viewport())
		a.field.Resize(a.layout.Viewport())

	case ticker.FrameMsg:
		cmd = a.sched.Handle(msg)

	case tea.KeyMsg:
		cmd = a.handleKey(msg)

	case tea.MouseMsg:
		cmd = a.handleMouse(msg)

	case ToastExpiredMsg:
		a.state.ExpireToast(msg.Seq)

	case ToggleModalMsg:
		a.state.ToggleModal(msg.Name)

	case window.AppearanceMsg:
		a.applyAppearance(msg.Appearance)

	case ConfigChangedMsg:
		cmd = a.reloadConfig()

	case ConfigLoadedMsg:
		a.applyConfig(msg)

	case window.Addressed:
		cmd = a.deliver(msg)
	}

	a.syncFocus()
	return a, a.flush(cmd)
}

// flush batches cmd with everything queued while handling the message
func (a *App) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(a.pending, cmd, a.dispatch.Commands())
	a.pending = nil
	return tea.Batch(cmds...)
}

// deliver hands an addressed message to its window. Messages for windows
// that have since closed are dropped.
func (a *App) deliver(msg window.Addressed) tea.Cmd {
	panel, ok := a.panel(msg.Target())
	if !ok {
		a.log.Debug("dropped message for closed window", zap.Int("id", int(msg.Target())))
		return nil
	}
	_, cmd := panel.Update(msg)
	return cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	km := keys.DefaultKeyMap

	// Always allow quit
	if key.Matches(msg, km.Quit) {
		a.shutdown()
		return tea.Quit
	}

	if a.state.Booting() {
		a.finishBoot()
		return nil
	}

	if a.state.ActiveModal != "" {
		if key.Matches(msg, km.Help, km.Escape) {
			a.state.CloseModal()
		}
		return nil
	}

	if a.state.MenuOpen {
		return a.handleMenuKey(msg)
	}

	focused := a.session.Focused()
	switch {
	case key.Matches(msg, km.Help):
		a.state.ToggleModal("help")
		return nil
	case key.Matches(msg, km.StartMenu):
		a.state.ToggleMenu()
		return nil
	case key.Matches(msg, km.CycleNext):
		a.session.FocusNext(false)
		return nil
	case key.Matches(msg, km.CyclePrev):
		a.session.FocusNext(true)
		return nil
	case key.Matches(msg, km.Close):
		a.session.Close(focused)
		return nil
	case key.Matches(msg, km.Minimize):
		a.session.Minimize(focused)
		return nil
	case key.Matches(msg, km.Maximize):
		a.session.ToggleMaximize(focused)
		return nil
	case key.Matches(msg, km.Yank):
		a.yank()
		return nil
	}

	for _, o := range []struct {
		binding key.Binding
		kind    wm.Kind
	}{
		{km.OpenProxy, wm.KindProxy},
		{km.OpenBrowser, wm.KindBrowser},
		{km.OpenSettings, wm.KindSettings},
		{km.OpenTerminal, wm.KindTerminal},
		{km.OpenGames, wm.KindGames},
		{km.OpenAbout, wm.KindAbout},
	} {
		if key.Matches(msg, o.binding) {
			a.session.Open(o.kind)
			return nil
		}
	}

	// Delegate to focused window
	return a.delegate(focused, msg)
}

func (a *App) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	km := keys.DefaultKeyMap
	items := a.menuItems()
	switch {
	case key.Matches(msg, km.Up):
		a.state.MoveMenu(-1, len(items))
	case key.Matches(msg, km.Down, km.Tab):
		a.state.MoveMenu(1, len(items))
	case key.Matches(msg, km.Enter):
		kind := items[a.state.MenuIndex].Kind
		a.state.CloseMenu()
		a.session.Open(kind)
	case key.Matches(msg, km.Escape, km.StartMenu):
		a.state.CloseMenu()
	}
	return nil
}

func (a *App) delegate(id wm.ID, msg tea.Msg) tea.Cmd {
	panel, ok := a.panel(id)
	if !ok {
		return nil
	}
	_, cmd := panel.Update(msg)
	return cmd
}

func (a *App) yank() {
	panel, ok := a.panel(a.session.Focused())
	if !ok {
		return
	}
	y, ok := panel.(window.Yanker)
	if !ok {
		return
	}
	text := y.Yank()
	if text == "" {
		return
	}
	if err := a.copy(text); err != nil {
		a.log.Warn("clipboard write failed", zap.Error(err))
		a.Toast("Copy failed")
		return
	}
	a.Toast("Copied: " + text)
}

// panel returns the content of an open window
func (a *App) panel(id wm.ID) (window.Window, bool) {
	rec, ok := a.session.Get(id)
	if !ok {
		return nil, false
	}
	w, ok := rec.Surface.Content().(window.Window)
	return w, ok
}

// syncFocus mirrors the session's focus onto the panels
func (a *App) syncFocus() {
	focused := a.session.Focused()
	for _, rec := range a.session.Records() {
		if w, ok := rec.Surface.Content().(window.Window); ok && w.Focused() != (rec.ID == focused) {
			w.SetFocus(rec.ID == focused)
		}
	}
}

func (a *App) menuItems() []layout.MenuItem {
	kinds := wm.Kinds()
	items := make([]layout.MenuItem, len(kinds))
	for i, k := range kinds {
		label := k.String()
		if w, ok := a.cfg.Windows[k.String()]; ok && w.Title != "" {
			label = w.Title
		}
		items[i] = layout.MenuItem{Kind: k, Label: label}
	}
	return items
}

func (a *App) clock() string {
	t := a.now()
	return t.Format("15:04:05") + " │ " + strings.ToUpper(t.Format("Mon 01/02"))
}

// applyAppearance restyles the desktop and every open panel
func (a *App) applyAppearance(ap config.AppearanceConfig) {
	a.cfg.Appearance = ap
	a.styles = ui.NewStyles(ui.Palette(ap.Theme, ap.Accent))
	a.layout.SetStyles(a.styles)
	a.dispatch.SetStyles(a.styles)
	a.help.SetStyles(a.styles)
	for _, rec := range a.session.Records() {
		switch w := rec.Surface.Content().(type) {
		case *window.SettingsPanel:
			w.SetAppearance(ap)
			w.SetStyles(a.styles)
		case window.Window:
			w.SetStyles(a.styles)
		}
	}
	a.log.Debug("appearance changed", zap.String("theme", ap.Theme), zap.String("accent", ap.Accent))
}

func (a *App) reloadConfig() tea.Cmd {
	path := a.cfgPath
	return func() tea.Msg {
		cfg, err := config.Load(path)
		return ConfigLoadedMsg{Config: cfg, Err: err}
	}
}

func (a *App) applyConfig(msg ConfigLoadedMsg) {
	if msg.Err != nil {
		a.log.Warn("config reload failed", zap.Error(msg.Err))
		a.Toast("Config error: " + msg.Err.Error())
		return
	}
	cfg := msg.Config.Clone()
	a.cfg.Proxy = cfg.Proxy
	a.cfg.Windows = cfg.Windows
	a.dispatch.SetProxy(cfg.Proxy)
	a.session.SetPresets(cfg.SessionOptions().Presets)
	a.applyAppearance(cfg.Appearance)
	a.log.Info("config reloaded", zap.String("path", a.cfgPath))
	a.Toast("Config reloaded")
}

// Host

// Open opens or focuses the window of kind
func (a *App) Open(kind wm.Kind) wm.ID {
	return a.session.Open(kind)
}

// Close closes a window
func (a *App) Close(id wm.ID) {
	a.session.Close(id)
}

// Toast shows msg above the taskbar for a moment
func (a *App) Toast(msg string) {
	seq := a.state.ShowToast(msg)
	a.pending = append(a.pending, tea.Tick(toastFor, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	}))
}

// Windows lists the open windows in taskbar order
func (a *App) Windows() []wm.Entry {
	return a.session.Taskbar().Entries
}

// Viewport returns the desktop size in pixels
func (a *App) Viewport() geom.Size {
	return a.session.Viewport()
}
