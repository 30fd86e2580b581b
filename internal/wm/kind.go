package wm

import "github.com/kmacinski/demonos/internal/geom"

// Kind identifies one of the fixed application window types
type Kind int

const (
	KindProxy Kind = iota + 1
	KindBrowser
	KindSettings
	KindTerminal
	KindGames
	KindAbout
)

var kindNames = map[Kind]string{
	KindProxy:    "proxy",
	KindBrowser:  "browser",
	KindSettings: "settings",
	KindTerminal: "terminal",
	KindGames:    "games",
	KindAbout:    "about",
}

// String returns the lowercase kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// OwnsRunningState reports whether windows of this kind drive a frame loop
// that must be torn down before the window is destroyed.
func (k Kind) OwnsRunningState() bool {
	return k == KindGames
}

// Kinds returns all kinds in start menu order
func Kinds() []Kind {
	return []Kind{KindProxy, KindBrowser, KindSettings, KindTerminal, KindGames, KindAbout}
}

// ParseKind resolves a lowercase kind name
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Preset is the title and preferred size of a window kind
type Preset struct {
	Title string
	Size  geom.Size
}

// DefaultPresets mirrors the stock desktop window configuration
func DefaultPresets() map[Kind]Preset {
	return map[Kind]Preset{
		KindProxy:    {Title: "🔥 DEMONPROXY", Size: geom.Size{Width: 750, Height: 620}},
		KindBrowser:  {Title: "🌐 INFERNONET", Size: geom.Size{Width: 820, Height: 560}},
		KindSettings: {Title: "⚙️ SETTINGS", Size: geom.Size{Width: 420, Height: 380}},
		KindTerminal: {Title: "💀 TERMINAL", Size: geom.Size{Width: 560, Height: 420}},
		KindGames:    {Title: "🎮 HELLARCADE", Size: geom.Size{Width: 560, Height: 460}},
		KindAbout:    {Title: "👁️ ABOUT", Size: geom.Size{Width: 460, Height: 480}},
	}
}
