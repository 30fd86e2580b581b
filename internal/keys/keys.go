package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the desktop
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Tab    key.Binding
	Space  key.Binding

	// Window management
	CycleNext key.Binding
	CyclePrev key.Binding
	Close     key.Binding
	Minimize  key.Binding
	Maximize  key.Binding

	// Apps
	OpenProxy    key.Binding
	OpenBrowser  key.Binding
	OpenSettings key.Binding
	OpenTerminal key.Binding
	OpenGames    key.Binding
	OpenAbout    key.Binding

	// Actions
	Help      key.Binding
	StartMenu key.Binding
	Yank      key.Binding
	Quit      key.Binding

	// Browser
	Back     key.Binding
	Forward  key.Binding
	Refresh  key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Proxy
	Engine    key.Binding
	Transport key.Binding
}

// DefaultKeyMap returns the default keybindings
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↑/↓", "navigate"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←/→", "choose"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("←/→", "choose"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close menu"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	Space: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "restart game"),
	),
	CycleNext: key.NewBinding(
		key.WithKeys("alt+tab", "f3"),
		key.WithHelp("f3", "next window"),
	),
	CyclePrev: key.NewBinding(
		key.WithKeys("alt+shift+tab", "f4"),
		key.WithHelp("f4", "prev window"),
	),
	Close: key.NewBinding(
		key.WithKeys("alt+w"),
		key.WithHelp("M-w", "close window"),
	),
	Minimize: key.NewBinding(
		key.WithKeys("alt+n"),
		key.WithHelp("M-n", "minimize"),
	),
	Maximize: key.NewBinding(
		key.WithKeys("alt+m"),
		key.WithHelp("M-m", "maximize"),
	),
	OpenProxy: key.NewBinding(
		key.WithKeys("alt+1"),
		key.WithHelp("M-1", "proxy"),
	),
	OpenBrowser: key.NewBinding(
		key.WithKeys("alt+2"),
		key.WithHelp("M-2", "browser"),
	),
	OpenSettings: key.NewBinding(
		key.WithKeys("alt+3"),
		key.WithHelp("M-3", "settings"),
	),
	OpenTerminal: key.NewBinding(
		key.WithKeys("alt+4"),
		key.WithHelp("M-4", "terminal"),
	),
	OpenGames: key.NewBinding(
		key.WithKeys("alt+5"),
		key.WithHelp("M-5", "games"),
	),
	OpenAbout: key.NewBinding(
		key.WithKeys("alt+6"),
		key.WithHelp("M-6", "about"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help"),
	),
	StartMenu: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("f2", "start menu"),
	),
	Yank: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "copy"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("alt+left"),
		key.WithHelp("M-←", "back"),
	),
	Forward: key.NewBinding(
		key.WithKeys("alt+right"),
		key.WithHelp("M-→", "forward"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "refresh"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll down"),
	),
	Engine: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("C-e", "proxy engine"),
	),
	Transport: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("C-t", "proxy transport"),
	),
}

// HelpBindings returns the keybindings to display in help
func HelpBindings() []key.Binding {
	return []key.Binding{
		DefaultKeyMap.Help,
		DefaultKeyMap.StartMenu,
		DefaultKeyMap.CycleNext,
		DefaultKeyMap.CyclePrev,
		DefaultKeyMap.Close,
		DefaultKeyMap.Minimize,
		DefaultKeyMap.Maximize,
		DefaultKeyMap.OpenProxy,
		DefaultKeyMap.OpenBrowser,
		DefaultKeyMap.OpenSettings,
		DefaultKeyMap.OpenTerminal,
		DefaultKeyMap.OpenGames,
		DefaultKeyMap.OpenAbout,
		DefaultKeyMap.Back,
		DefaultKeyMap.Forward,
		DefaultKeyMap.Refresh,
		DefaultKeyMap.Engine,
		DefaultKeyMap.Transport,
		DefaultKeyMap.Yank,
		DefaultKeyMap.Quit,
	}
}
