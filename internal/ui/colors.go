package ui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the desktop
type Colors struct {
	Desktop         lipgloss.Color
	Window          lipgloss.Color
	TitleBar        lipgloss.Color
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	Taskbar         lipgloss.Color
	TaskbarText     lipgloss.Color
	Text            lipgloss.Color
	Muted           lipgloss.Color
	Accent          lipgloss.Color
	Secondary       lipgloss.Color
	Success         lipgloss.Color
	Warning         lipgloss.Color
	Error           lipgloss.Color
}

// themes holds the base palettes; the accent is applied on top
var themes = map[string]Colors{
	"infernal": {
		Desktop:         lipgloss.Color("#0a0000"),
		Window:          lipgloss.Color("#120404"),
		TitleBar:        lipgloss.Color("#2a0505"),
		BorderUnfocused: lipgloss.Color("#4a1010"),
		Taskbar:         lipgloss.Color("#1a0202"),
		TaskbarText:     lipgloss.Color("#f5d0d0"),
		Text:            lipgloss.Color("#f0e0e0"),
		Muted:           lipgloss.Color("#8a5a5a"),
	},
	"abyss": {
		Desktop:         lipgloss.Color("#00040a"),
		Window:          lipgloss.Color("#040a14"),
		TitleBar:        lipgloss.Color("#08162a"),
		BorderUnfocused: lipgloss.Color("#16304a"),
		Taskbar:         lipgloss.Color("#020812"),
		TaskbarText:     lipgloss.Color("#d0e0f5"),
		Text:            lipgloss.Color("#e0e8f0"),
		Muted:           lipgloss.Color("#5a6e8a"),
	},
	"void": {
		Desktop:         lipgloss.Color("#050008"),
		Window:          lipgloss.Color("#0c0412"),
		TitleBar:        lipgloss.Color("#1c0828"),
		BorderUnfocused: lipgloss.Color("#3a1850"),
		Taskbar:         lipgloss.Color("#0a020e"),
		TaskbarText:     lipgloss.Color("#e8d0f5"),
		Text:            lipgloss.Color("#ece0f0"),
		Muted:           lipgloss.Color("#7a5a8a"),
	},
	"ember": {
		Desktop:         lipgloss.Color("#0a0500"),
		Window:          lipgloss.Color("#140a02"),
		TitleBar:        lipgloss.Color("#2e1404"),
		BorderUnfocused: lipgloss.Color("#5a2a08"),
		Taskbar:         lipgloss.Color("#1a0c02"),
		TaskbarText:     lipgloss.Color("#f5e0c8"),
		Text:            lipgloss.Color("#f5ebe0"),
		Muted:           lipgloss.Color("#8a6a4a"),
	},
}

// DefaultAccent is the stock accent color
const DefaultAccent = "#ff2a2a"

// Palette returns the named theme with the given accent. Unknown themes fall
// back to infernal.
func Palette(theme, accent string) Colors {
	c, ok := themes[theme]
	if !ok {
		c = themes["infernal"]
	}
	if accent == "" {
		accent = DefaultAccent
	}
	c.Accent = lipgloss.Color(accent)
	c.BorderFocused = c.Accent
	c.Secondary = lipgloss.Color("#ff6600")
	c.Success = lipgloss.Color("#00ff88")
	c.Warning = lipgloss.Color("#ff8800")
	c.Error = lipgloss.Color("#ff2a2a")
	return c
}

// DefaultColors returns the default color palette
var DefaultColors = Palette("infernal", DefaultAccent)
