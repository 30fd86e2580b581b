package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/kmacinski/demonos/internal/geom"
	"github.com/kmacinski/demonos/internal/wm"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. DEMONOS_LOG_LEVEL
const EnvPrefix = "DEMONOS"

// DefaultPath returns $XDG_CONFIG_HOME/demonos/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "demonos", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default.Clone()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decode unmarshals data onto cfg, merging window presets field by field
func decode(data []byte, cfg *Config) error {
	defaults := cfg.Windows
	cfg.Windows = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}

	merged := make(map[string]WindowConfig, len(defaults))
	for name, w := range defaults {
		merged[name] = w
	}
	for name, w := range cfg.Windows {
		base := merged[name]
		if w.Title != "" {
			base.Title = w.Title
		}
		if w.Width > 0 {
			base.Width = w.Width
		}
		if w.Height > 0 {
			base.Height = w.Height
		}
		merged[name] = base
	}
	cfg.Windows = merged
	return nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("display: cell size must be positive, got %dx%d", c.Display.CellWidth, c.Display.CellHeight)
	}
	if c.Desktop.CascadeStep < 0 {
		return fmt.Errorf("desktop: cascade_step must not be negative")
	}
	if c.Desktop.MinWidth <= 0 || c.Desktop.MinHeight <= 0 {
		return fmt.Errorf("desktop: minimum window size must be positive")
	}
	if c.Desktop.TaskbarHeight < 0 {
		return fmt.Errorf("desktop: taskbar_height must not be negative")
	}
	for name, w := range c.Windows {
		if _, ok := wm.ParseKind(name); !ok {
			return fmt.Errorf("windows: unknown window %q", name)
		}
		if w.Width <= 0 || w.Height <= 0 {
			return fmt.Errorf("windows.%s: size must be positive", name)
		}
	}
	if !slices.Contains(Themes, c.Appearance.Theme) {
		return fmt.Errorf("appearance: unknown theme %q (want one of %s)", c.Appearance.Theme, strings.Join(Themes, ", "))
	}
	if !isHexColor(c.Appearance.Accent) {
		return fmt.Errorf("appearance: accent %q is not a #rrggbb color", c.Appearance.Accent)
	}
	switch c.Appearance.DefaultEngine {
	case "uv", "scramjet":
	default:
		return fmt.Errorf("appearance: unknown engine %q", c.Appearance.DefaultEngine)
	}
	switch c.Proxy.Transport {
	case "epoxy", "libcurl":
	default:
		return fmt.Errorf("proxy: unknown transport %q", c.Proxy.Transport)
	}
	if c.Proxy.Timeout <= 0 {
		return fmt.Errorf("proxy: timeout must be positive")
	}
	if c.Boot.Interval <= 0 {
		return fmt.Errorf("boot: interval must be positive")
	}
	return nil
}

// SessionOptions converts the desktop settings into window manager options
func (c *Config) SessionOptions() wm.Options {
	opts := wm.DefaultOptions()
	opts.Placement = geom.Placement{
		Origin: geom.Point{X: c.Desktop.CascadeX, Y: c.Desktop.CascadeY},
		Step:   c.Desktop.CascadeStep,
		Margin: geom.Size{Width: c.Desktop.MarginRight, Height: c.Desktop.MarginBottom},
	}
	opts.MinVisible = geom.Size{Width: c.Desktop.MinVisibleWidth, Height: c.Desktop.MinVisibleHeight}
	opts.MinSize = geom.Size{Width: c.Desktop.MinWidth, Height: c.Desktop.MinHeight}
	opts.TaskbarBand = c.Desktop.TaskbarHeight

	for name, w := range c.Windows {
		kind, ok := wm.ParseKind(name)
		if !ok {
			continue
		}
		opts.Presets[kind] = wm.Preset{
			Title: w.Title,
			Size:  geom.Size{Width: w.Width, Height: w.Height},
		}
	}
	return opts
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
