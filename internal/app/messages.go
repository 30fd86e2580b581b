package app

import "github.com/kmacinski/demonos/internal/config"

// ToastExpiredMsg is sent when a toast's display time is over
type ToastExpiredMsg struct {
	Seq int
}

// ConfigChangedMsg is sent by the watcher when the config file changes
type ConfigChangedMsg struct{}

// ConfigLoadedMsg carries a reloaded configuration
type ConfigLoadedMsg struct {
	Config *config.Config
	Err    error
}

// ToggleModalMsg toggles a modal
type ToggleModalMsg struct {
	Name string
}
