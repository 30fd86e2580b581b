package window

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/demonos/internal/config"
	"github.com/kmacinski/demonos/internal/keys"
	"github.com/kmacinski/demonos/internal/proxy"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
)

type setting int

const (
	settingTheme setting = iota
	settingScanlines
	settingAccent
	settingEngine
	settingCount
)

var scanlineLabels = []string{"ON", "OFF"}

// SettingsPanel edits the appearance section. Every change is applied to
// the desktop immediately.
type SettingsPanel struct {
	Base
	values config.AppearanceConfig
	cursor setting
	spans  [settingCount][]span
}

// NewSettings creates a settings panel showing the current appearance
func NewSettings(id wm.ID, host Host, styles ui.Styles, current config.AppearanceConfig) *SettingsPanel {
	return &SettingsPanel{
		Base:   NewBase(id, "settings", host, styles),
		values: current,
	}
}

// Values returns the edited appearance
func (s *SettingsPanel) Values() config.AppearanceConfig {
	return s.values
}

// SetAppearance refreshes the panel after an outside change
func (s *SettingsPanel) SetAppearance(a config.AppearanceConfig) {
	s.values = a
}

// selected returns the index of the current choice for row
func (s *SettingsPanel) selected(row setting) int {
	switch row {
	case settingTheme:
		return slices.Index(config.Themes, s.values.Theme)
	case settingScanlines:
		if s.values.Scanlines {
			return 0
		}
		return 1
	case settingAccent:
		return slices.IndexFunc(config.Accents, func(a string) bool {
			return strings.EqualFold(a, s.values.Accent)
		})
	case settingEngine:
		return slices.Index(proxy.Engines, proxy.Engine(s.values.DefaultEngine))
	}
	return -1
}

func options(row setting) int {
	switch row {
	case settingTheme:
		return len(config.Themes)
	case settingScanlines:
		return len(scanlineLabels)
	case settingAccent:
		return len(config.Accents)
	case settingEngine:
		return len(proxy.Engines)
	}
	return 0
}

// Choose applies option i of row, toasts and asks the desktop to restyle
func (s *SettingsPanel) Choose(row setting, i int) tea.Cmd {
	if i < 0 || i >= options(row) {
		return nil
	}
	switch row {
	case settingTheme:
		s.values.Theme = config.Themes[i]
		s.host.Toast("Theme: " + s.values.Theme)
	case settingScanlines:
		s.values.Scanlines = i == 0
		s.host.Toast("Scanlines: " + scanlineLabels[i])
	case settingAccent:
		s.values.Accent = config.Accents[i]
		s.host.Toast("Accent color updated")
	case settingEngine:
		s.values.DefaultEngine = string(proxy.Engines[i])
		s.host.Toast("Default engine: " + strings.ToUpper(s.values.DefaultEngine))
	}
	a := s.values
	return func() tea.Msg { return AppearanceMsg{Appearance: a} }
}

// Update handles input
func (s *SettingsPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return s, nil
	}
	switch {
	case key.Matches(km, keys.DefaultKeyMap.Up):
		s.cursor = (s.cursor + settingCount - 1) % settingCount
	case key.Matches(km, keys.DefaultKeyMap.Down, keys.DefaultKeyMap.Tab):
		s.cursor = (s.cursor + 1) % settingCount
	case key.Matches(km, keys.DefaultKeyMap.Left):
		n := options(s.cursor)
		return s, s.Choose(s.cursor, (max(s.selected(s.cursor), 0)+n-1)%n)
	case key.Matches(km, keys.DefaultKeyMap.Right):
		n := options(s.cursor)
		return s, s.Choose(s.cursor, (s.selected(s.cursor)+1)%n)
	}
	return s, nil
}

// Click handles the option buttons. Setting rows are two lines apart.
func (s *SettingsPanel) Click(col, row int) tea.Cmd {
	if row%2 != 0 || row/2 >= int(settingCount) {
		return nil
	}
	r := setting(row / 2)
	s.cursor = r
	return s.Choose(r, hitSpan(s.spans[r], col))
}

// View renders the panel
func (s *SettingsPanel) View(width, height int) string {
	st := s.styles
	rows := []struct {
		label  string
		labels []string
	}{
		{"Theme", config.Themes},
		{"Scanlines", scanlineLabels},
		{"Accent", nil},
		{"Engine", []string{"UV", "SCRAMJET"}},
	}

	var lines []string
	for i, r := range rows {
		marker := "  "
		if setting(i) == s.cursor && s.focused {
			marker = st.Accent.Render("▸ ")
		}
		prefix := marker + lipgloss.NewStyle().Width(11).Render(r.label)
		if setting(i) == settingAccent {
			line, spans := s.swatches(prefix)
			s.spans[i] = spans
			lines = append(lines, line, "")
			continue
		}
		line, spans := buttonRow(st, prefix, r.labels, s.selected(setting(i)))
		s.spans[i] = spans
		lines = append(lines, line, "")
	}
	lines = append(lines, st.Muted.Render("↑/↓ pick a setting, ←/→ change it"))
	return fill(lines, height)
}

func (s *SettingsPanel) swatches(prefix string) (string, []span) {
	var sb strings.Builder
	sb.WriteString(prefix)
	col := lipgloss.Width(prefix)
	active := s.selected(settingAccent)
	spans := make([]span, len(config.Accents))
	for i, c := range config.Accents {
		if i > 0 {
			sb.WriteString(" ")
			col++
		}
		mark := " ■ "
		if i == active {
			mark = "[■]"
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(mark))
		spans[i] = span{from: col, to: col + 3}
		col += 3
	}
	return sb.String(), spans
}
