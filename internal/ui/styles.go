package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds all the lipgloss styles for the desktop
type Styles struct {
	Colors Colors

	// Desktop
	Desktop  lipgloss.Style
	Particle lipgloss.Style
	Scanline lipgloss.Style

	// Window styles
	WindowFocused   lipgloss.Style
	WindowUnfocused lipgloss.Style
	TitleFocused    lipgloss.Style
	TitleUnfocused  lipgloss.Style
	TitleButton     lipgloss.Style
	Body            lipgloss.Style

	// Taskbar
	Taskbar              lipgloss.Style
	StartButton          lipgloss.Style
	StartButtonActive    lipgloss.Style
	TaskbarItem          lipgloss.Style
	TaskbarItemFocused   lipgloss.Style
	TaskbarItemMinimized lipgloss.Style
	Clock                lipgloss.Style

	// Start menu
	Menu             lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemSelected lipgloss.Style

	// Panels
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Label        lipgloss.Style
	Heading      lipgloss.Style

	// Feedback
	Toast   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalTitle lipgloss.Style

	// General
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Accent lipgloss.Style
}

// NewStyles creates a new Styles instance with the given colors
func NewStyles(c Colors) Styles {
	return Styles{
		Colors: c,

		// Desktop
		Desktop: lipgloss.NewStyle().
			Background(c.Desktop),
		Particle: lipgloss.NewStyle().
			Foreground(c.Accent).
			Background(c.Desktop),
		Scanline: lipgloss.NewStyle().
			Foreground(c.Muted).
			Background(c.Desktop).
			Faint(true),

		// Window styles
		WindowFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c.BorderFocused).
			Background(c.Window),
		WindowUnfocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c.BorderUnfocused).
			Background(c.Window),
		TitleFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Accent).
			Background(c.TitleBar),
		TitleUnfocused: lipgloss.NewStyle().
			Foreground(c.Muted).
			Background(c.TitleBar),
		TitleButton: lipgloss.NewStyle().
			Foreground(c.Text).
			Background(c.TitleBar),
		Body: lipgloss.NewStyle().
			Foreground(c.Text).
			Background(c.Window),

		// Taskbar
		Taskbar: lipgloss.NewStyle().
			Background(c.Taskbar).
			Foreground(c.TaskbarText),
		StartButton: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Accent).
			Background(c.Taskbar).
			Padding(0, 1),
		StartButtonActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Desktop).
			Background(c.Accent).
			Padding(0, 1),
		TaskbarItem: lipgloss.NewStyle().
			Foreground(c.TaskbarText).
			Background(c.Taskbar).
			Padding(0, 1),
		TaskbarItemFocused: lipgloss.NewStyle().
			Foreground(c.Accent).
			Background(c.TitleBar).
			Underline(true).
			Padding(0, 1),
		TaskbarItemMinimized: lipgloss.NewStyle().
			Foreground(c.Muted).
			Background(c.Taskbar).
			Italic(true).
			Padding(0, 1),
		Clock: lipgloss.NewStyle().
			Foreground(c.Accent).
			Background(c.Taskbar).
			Padding(0, 1),

		// Start menu
		Menu: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c.Accent).
			Background(c.Window),
		MenuItem: lipgloss.NewStyle().
			Foreground(c.Text).
			Background(c.Window).
			Padding(0, 1),
		MenuItemSelected: lipgloss.NewStyle().
			Foreground(c.Desktop).
			Background(c.Accent).
			Padding(0, 1),

		// Panels
		Button: lipgloss.NewStyle().
			Foreground(c.Text).
			Background(c.TitleBar).
			Padding(0, 1),
		ButtonActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Desktop).
			Background(c.Accent).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(c.Muted),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Accent),

		// Feedback
		Toast: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c.Accent).
			Foreground(c.Text).
			Background(c.Window).
			Padding(0, 1),
		Success: lipgloss.NewStyle().
			Foreground(c.Success),
		Warning: lipgloss.NewStyle().
			Foreground(c.Warning),
		Error: lipgloss.NewStyle().
			Foreground(c.Error),

		// Modal
		Modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(c.Accent).
			Background(c.Window).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(c.Accent).
			MarginBottom(1),

		// General
		Text: lipgloss.NewStyle().
			Foreground(c.Text),
		Muted: lipgloss.NewStyle().
			Foreground(c.Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(c.Accent),
	}
}

// DefaultStyles returns styles with the default color palette
var DefaultStyles = NewStyles(DefaultColors)
