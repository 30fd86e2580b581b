package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var bootMessages = []string{
	"[OK] Infernal kernel loaded",
	"[OK] Mounting /hell partition",
	"[OK] Initializing DemonOS v6.6.6",
	"[OK] Loading UV proxy engine",
	"[OK] Loading Scramjet engine",
	"[OK] Initializing Epoxy transport",
	"[OK] Initializing Libcurl transport",
	"[OK] Starting daemon processes",
	"[OK] Configuring network interfaces",
	"[OK] DemonOS ready",
}

const bootBarWidth = 40

// bootStep reveals the next boot line. The tick after the last line hands
// over to the desktop.
func (a *App) bootStep() {
	if a.state.BootShown < len(bootMessages) {
		a.state.BootShown++
		return
	}
	a.finishBoot()
}

func (a *App) finishBoot() {
	if !a.state.Booting() {
		return
	}
	a.bootLoop.Stop()
	a.bootLoop = nil
	a.state.Phase = PhaseDesktop
	a.log.Info("desktop started",
		zap.Int("boot_lines", a.state.BootShown),
		zap.Int("width", a.layout.Width()),
		zap.Int("height", a.layout.Height()),
	)
}

func (a *App) renderBoot() string {
	st := a.styles
	lines := []string{st.Heading.Render("DEMON OS"), st.Muted.Render("v6.6.6"), ""}
	for _, m := range bootMessages[:a.state.BootShown] {
		ok, rest, _ := strings.Cut(m, " ")
		lines = append(lines, st.Success.Render(ok)+" "+st.Text.Render(rest))
	}
	for i := a.state.BootShown; i < len(bootMessages); i++ {
		lines = append(lines, "")
	}

	filled := bootBarWidth * a.state.BootShown / len(bootMessages)
	bar := st.Accent.Render(strings.Repeat("█", filled)) + st.Muted.Render(strings.Repeat("░", bootBarWidth-filled))
	lines = append(lines, "", bar, st.Muted.Render(fmt.Sprintf("%3d%%  press any key to skip", 100*a.state.BootShown/len(bootMessages))))

	return lipgloss.Place(a.layout.Width(), a.layout.Height(), lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}
