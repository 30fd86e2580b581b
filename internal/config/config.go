package config

import (
	"maps"
	"time"
)

// Config holds all application configuration
type Config struct {
	Display    DisplayConfig           `yaml:"display" envconfig:"DISPLAY"`
	Desktop    DesktopConfig           `yaml:"desktop" envconfig:"DESKTOP"`
	Windows    map[string]WindowConfig `yaml:"windows" ignored:"true"`
	Appearance AppearanceConfig        `yaml:"appearance" envconfig:"APPEARANCE"`
	Proxy      ProxyConfig             `yaml:"proxy" envconfig:"PROXY"`
	Log        LogConfig               `yaml:"log" envconfig:"LOG"`
	Boot       BootConfig              `yaml:"boot" envconfig:"BOOT"`
}

// DisplayConfig maps terminal cells to desktop pixels
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width" envconfig:"CELL_WIDTH"`
	CellHeight int `yaml:"cell_height" envconfig:"CELL_HEIGHT"`
}

// DesktopConfig holds window placement and sizing limits, in pixels
type DesktopConfig struct {
	CascadeX         int `yaml:"cascade_x" envconfig:"CASCADE_X"`
	CascadeY         int `yaml:"cascade_y" envconfig:"CASCADE_Y"`
	CascadeStep      int `yaml:"cascade_step" envconfig:"CASCADE_STEP"`
	MarginRight      int `yaml:"margin_right" envconfig:"MARGIN_RIGHT"`
	MarginBottom     int `yaml:"margin_bottom" envconfig:"MARGIN_BOTTOM"`
	MinVisibleWidth  int `yaml:"min_visible_width" envconfig:"MIN_VISIBLE_WIDTH"`
	MinVisibleHeight int `yaml:"min_visible_height" envconfig:"MIN_VISIBLE_HEIGHT"`
	MinWidth         int `yaml:"min_width" envconfig:"MIN_WIDTH"`
	MinHeight        int `yaml:"min_height" envconfig:"MIN_HEIGHT"`
	TaskbarHeight    int `yaml:"taskbar_height" envconfig:"TASKBAR_HEIGHT"`
}

// WindowConfig is the title and preferred size of one window kind
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// AppearanceConfig holds the settings panel values
type AppearanceConfig struct {
	Theme         string `yaml:"theme" envconfig:"THEME"`
	Scanlines     bool   `yaml:"scanlines" envconfig:"SCANLINES"`
	Accent        string `yaml:"accent" envconfig:"ACCENT"`
	DefaultEngine string `yaml:"default_engine" envconfig:"DEFAULT_ENGINE"`
}

// ProxyConfig holds the proxy and browser fetch settings
type ProxyConfig struct {
	BaseURL   string        `yaml:"base_url" envconfig:"BASE_URL"`
	Transport string        `yaml:"transport" envconfig:"TRANSPORT"`
	Timeout   time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	UserAgent string        `yaml:"user_agent" envconfig:"USER_AGENT"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL"`
	File        string `yaml:"file" envconfig:"FILE"` // empty means the state dir default
	Development bool   `yaml:"development" envconfig:"DEV"`
}

// BootConfig controls the boot log shown before the desktop
type BootConfig struct {
	Skip     bool          `yaml:"skip" envconfig:"SKIP"`
	Interval time.Duration `yaml:"interval" envconfig:"INTERVAL"`
}

// Themes lists the selectable desktop themes
var Themes = []string{"infernal", "abyss", "void", "ember"}

// Accents lists the settings panel accent swatches
var Accents = []string{"#ff2a2a", "#ff6600", "#cc00ff", "#00ff88", "#00aaff"}

// Default returns the default configuration
var Default = Config{
	Display: DisplayConfig{
		CellWidth:  10,
		CellHeight: 22,
	},
	Desktop: DesktopConfig{
		CascadeX:         80,
		CascadeY:         40,
		CascadeStep:      28,
		MarginRight:      40,
		MarginBottom:     80,
		MinVisibleWidth:  200,
		MinVisibleHeight: 80,
		MinWidth:         320,
		MinHeight:        240,
		TaskbarHeight:    44,
	},
	Windows: map[string]WindowConfig{
		"proxy":    {Title: "🔥 DEMONPROXY", Width: 750, Height: 620},
		"browser":  {Title: "🌐 INFERNONET", Width: 820, Height: 560},
		"settings": {Title: "⚙️ SETTINGS", Width: 420, Height: 380},
		"terminal": {Title: "💀 TERMINAL", Width: 560, Height: 420},
		"games":    {Title: "🎮 HELLARCADE", Width: 560, Height: 460},
		"about":    {Title: "👁️ ABOUT", Width: 460, Height: 480},
	},
	Appearance: AppearanceConfig{
		Theme:         "infernal",
		Scanlines:     true,
		Accent:        "#ff2a2a",
		DefaultEngine: "uv",
	},
	Proxy: ProxyConfig{
		BaseURL:   "http://localhost:8080/",
		Transport: "epoxy",
		Timeout:   15 * time.Second,
		UserAgent: "demonos/6.6.6",
	},
	Log: LogConfig{
		Level: "info",
	},
	Boot: BootConfig{
		Interval: 180 * time.Millisecond,
	},
}

// Clone returns a copy that shares no maps with c
func (c Config) Clone() Config {
	c.Windows = maps.Clone(c.Windows)
	return c
}
