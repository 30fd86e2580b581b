package window

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/demonos/internal/arcade"
	"github.com/kmacinski/demonos/internal/keys"
	"github.com/kmacinski/demonos/internal/ticker"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
)

// GameFrame is the interval of the running game's frame loop
const GameFrame = 16 * time.Millisecond

// GamesPanel shows the game cards and runs at most one game. The running
// game's frame loop is bound to the window surface so it cannot outlive the
// window.
type GamesPanel struct {
	Base
	sched   *ticker.Scheduler
	surface *wm.Surface
	rng     *rand.Rand
	cursor  int
	game    arcade.Game
	name    string
	loop    *ticker.Loop
	canvas  *arcade.Canvas
	back    []span
}

// NewGames creates the games panel for a window surface
func NewGames(id wm.ID, host Host, styles ui.Styles, sched *ticker.Scheduler, surface *wm.Surface, r *rand.Rand) *GamesPanel {
	return &GamesPanel{
		Base:    NewBase(id, "games", host, styles),
		sched:   sched,
		surface: surface,
		rng:     r,
	}
}

// Playing reports whether a game is running
func (g *GamesPanel) Playing() bool { return g.game != nil }

// Game returns the running game, or nil
func (g *GamesPanel) Game() arcade.Game { return g.game }

// Loop returns the running frame loop, or nil
func (g *GamesPanel) Loop() *ticker.Loop { return g.loop }

// Play starts the game at catalog index i, replacing any running game
func (g *GamesPanel) Play(i int) tea.Cmd {
	if i < 0 || i >= len(arcade.Catalog) || g.surface.Released() {
		return nil
	}
	g.Stop()

	info := arcade.Catalog[i]
	game, ok := arcade.New(info.ID, g.rng)
	if !ok {
		return nil
	}
	g.cursor = i
	g.game = game
	g.name = info.Name

	loop, cmd := g.sched.Start(GameFrame, func(dt time.Duration) tea.Cmd {
		game.Tick(dt)
		return nil
	})
	g.loop = loop
	g.surface.Bind(loop)
	return cmd
}

// Stop ends the running game and drops its input state
func (g *GamesPanel) Stop() {
	g.loop.Stop()
	g.loop = nil
	g.game = nil
	g.name = ""
}

// Update handles input
func (g *GamesPanel) Update(msg tea.Msg) (Window, tea.Cmd) {
	press, ok := msg.(tea.KeyMsg)
	if !ok || !g.focused {
		return g, nil
	}
	km := keys.DefaultKeyMap

	if g.game != nil {
		switch {
		case key.Matches(press, km.Escape):
			g.Stop()
		case key.Matches(press, km.Up):
			g.game.Press(arcade.KeyUp)
		case key.Matches(press, km.Down):
			g.game.Press(arcade.KeyDown)
		case key.Matches(press, km.Left):
			g.game.Press(arcade.KeyLeft)
		case key.Matches(press, km.Right):
			g.game.Press(arcade.KeyRight)
		case key.Matches(press, km.Space):
			g.game.Press(arcade.KeySpace)
		}
		return g, nil
	}

	n := len(arcade.Catalog)
	switch {
	case key.Matches(press, km.Up, km.Left):
		g.cursor = (g.cursor + n - 1) % n
	case key.Matches(press, km.Down, km.Right, km.Tab):
		g.cursor = (g.cursor + 1) % n
	case key.Matches(press, km.Enter, km.Space):
		return g, g.Play(g.cursor)
	}
	return g, nil
}

// Click plays a card, or goes back from a running game
func (g *GamesPanel) Click(col, row int) tea.Cmd {
	if g.game != nil {
		if row == 0 && hitSpan(g.back, col) == 0 {
			g.Stop()
		}
		return nil
	}
	if row < 2 || (row-2)%3 == 2 {
		return nil
	}
	return g.Play((row - 2) / 3)
}

// View renders the card grid or the running game
func (g *GamesPanel) View(width, height int) string {
	if g.game != nil {
		return g.viewGame(width, height)
	}

	st := g.styles
	lines := []string{st.Heading.Render("SELECT YOUR TORMENT"), ""}
	for i, info := range arcade.Catalog {
		style, marker := st.Text, "  "
		if i == g.cursor {
			style, marker = st.Accent.Bold(true), st.Accent.Render("▸ ")
		}
		lines = append(lines, marker+style.Render(info.Name), "  "+st.Muted.Render(info.Blurb), "")
	}
	lines = append(lines, st.Muted.Render("enter to play, esc to leave a game"))
	return fill(lines, height)
}

func (g *GamesPanel) viewGame(width, height int) string {
	st := g.styles
	header, spans := buttonRow(st, "", []string{"◀ BACK"}, -1)
	g.back = spans
	header += "  " + st.Heading.Render(g.name)
	if b, ok := g.game.(*arcade.Breakout); ok {
		header += st.Muted.Render(fmt.Sprintf("  lives %d", b.Lives()))
	}

	rows := max(height-1, 1)
	if g.canvas == nil || g.canvas.Cols != width || g.canvas.Rows != rows {
		g.canvas = arcade.NewCanvas(width, rows)
	}
	g.game.Draw(g.canvas)

	lines := []string{header}
	for r := 0; r < g.canvas.Rows; r++ {
		lines = append(lines, g.renderRow(r))
	}
	return fill(lines, height)
}

// renderRow styles one canvas row, grouping runs of the same tone
func (g *GamesPanel) renderRow(row int) string {
	var sb strings.Builder
	var run []rune
	tone := g.canvas.At(0, row).Tone
	flush := func() {
		if len(run) > 0 {
			sb.WriteString(g.toneStyle(tone).Render(string(run)))
			run = run[:0]
		}
	}
	for col := 0; col < g.canvas.Cols; col++ {
		c := g.canvas.At(col, row)
		if c.Tone != tone {
			flush()
			tone = c.Tone
		}
		run = append(run, c.Rune)
	}
	flush()
	return sb.String()
}

func (g *GamesPanel) toneStyle(t arcade.Tone) lipgloss.Style {
	st := g.styles
	switch t {
	case arcade.ToneDim, arcade.ToneMuted:
		return st.Muted
	case arcade.ToneAccent:
		return st.Accent
	case arcade.ToneSecondary:
		return lipgloss.NewStyle().Foreground(st.Colors.Secondary)
	case arcade.ToneBright:
		return st.Bold
	case arcade.ToneSuccess:
		return st.Success
	default:
		return st.Text
	}
}
