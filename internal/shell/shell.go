// Package shell is the command interpreter behind the terminal panel.
package shell

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Prompt is echoed in front of every submitted command
const Prompt = "demon@os:~$ "

// Class selects how an output line is colored
type Class int

const (
	Plain Class = iota
	Info
	Success
	Error
)

// Line is one line of terminal output
type Line struct {
	Text  string
	Class Class
}

// Window describes an open window for ls
type Window struct {
	ID        int
	Kind      string
	Title     string
	Minimized bool
}

// Env is what commands may do to the desktop
type Env interface {
	OpenApp(name string) bool
	CloseWindow(id int) bool
	Windows() []Window
	Toast(msg string)
	Theme() string
	Resolution() string
}

type command struct {
	usage string
	run   func(s *Shell, args []string) []Line
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":     {"help       - Show this help", (*Shell).help},
		"about":    {"about      - About DemonOS", (*Shell).about},
		"ls":       {"ls         - List windows", (*Shell).ls},
		"open":     {"open <app> - Open an app (proxy/browser/settings/terminal/games/about)", (*Shell).open},
		"close":    {"close <id> - Close a window", (*Shell).close},
		"clear":    {"clear      - Clear terminal", (*Shell).clear},
		"date":     {"date       - Show date/time", (*Shell).date},
		"uptime":   {"uptime     - Show system uptime", (*Shell).uptime},
		"whoami":   {"whoami     - Show current user", (*Shell).whoami},
		"ping":     {"ping       - Ping the void", (*Shell).ping},
		"matrix":   {"matrix     - Activate matrix mode", (*Shell).matrix},
		"neofetch": {"neofetch   - System info", (*Shell).neofetch},
	}
}

var helpOrder = []string{"help", "about", "ls", "open", "close", "clear", "date", "uptime", "whoami", "ping", "matrix", "neofetch"}

// Shell holds the scrollback and command history of one terminal
type Shell struct {
	env     Env
	now     func() time.Time
	lines   []Line
	history []string // newest first
	histIdx int
}

// New creates a shell bound to env
func New(env Env) *Shell {
	return &Shell{env: env, now: time.Now, histIdx: -1}
}

// Lines returns the scrollback
func (s *Shell) Lines() []Line {
	return s.lines
}

// Exec runs one command line and appends its output
func (s *Shell) Exec(raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}
	s.history = slices.Insert(s.history, 0, raw)
	s.histIdx = -1

	s.lines = append(s.lines, Line{Text: Prompt + raw})

	fields := strings.Fields(raw)
	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		s.lines = append(s.lines, Line{Text: fmt.Sprintf("bash: %s: command not found", name), Class: Error})
		return
	}
	out := cmd.run(s, args)
	s.lines = append(s.lines, out...)
}

// HistoryUp returns the previous (older) command
func (s *Shell) HistoryUp() string {
	if len(s.history) == 0 {
		return ""
	}
	s.histIdx = min(s.histIdx+1, len(s.history)-1)
	return s.history[s.histIdx]
}

// HistoryDown returns the next (newer) command, or "" past the newest
func (s *Shell) HistoryDown() string {
	s.histIdx = max(s.histIdx-1, -1)
	if s.histIdx < 0 {
		return ""
	}
	return s.history[s.histIdx]
}

func (s *Shell) help([]string) []Line {
	out := []Line{{Text: "Available commands:", Class: Info}}
	for _, name := range helpOrder {
		out = append(out, Line{Text: commands[name].usage})
	}
	return out
}

func (s *Shell) about([]string) []Line {
	return []Line{{Text: "DemonOS v6.6.6 — Infernal Kernel. Built for the damned.", Class: Info}}
}

func (s *Shell) ls([]string) []Line {
	wins := s.env.Windows()
	if len(wins) == 0 {
		return []Line{{Text: "No open windows", Class: Info}}
	}
	out := make([]Line, 0, len(wins))
	for _, w := range wins {
		text := fmt.Sprintf("  %d  %-9s %s", w.ID, w.Kind, w.Title)
		if w.Minimized {
			text += " (minimized)"
		}
		out = append(out, Line{Text: text})
	}
	return out
}

func (s *Shell) open(args []string) []Line {
	app := ""
	if len(args) > 0 {
		app = args[0]
	}
	if !s.env.OpenApp(app) {
		return []Line{{Text: "Unknown app: " + app, Class: Error}}
	}
	return []Line{{Text: "Opening " + app + "...", Class: Success}}
}

func (s *Shell) close(args []string) []Line {
	if len(args) == 0 {
		return []Line{{Text: "usage: close <id>", Class: Error}}
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return []Line{{Text: "close: invalid id " + args[0], Class: Error}}
	}
	if !s.env.CloseWindow(id) {
		return []Line{{Text: fmt.Sprintf("close: no window with id %d", id), Class: Error}}
	}
	return []Line{{Text: fmt.Sprintf("Closed window %d", id), Class: Success}}
}

func (s *Shell) clear([]string) []Line {
	s.lines = s.lines[:0]
	return nil
}

func (s *Shell) date([]string) []Line {
	return []Line{{Text: s.now().Format("Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"), Class: Info}}
}

func (s *Shell) uptime([]string) []Line {
	return []Line{{Text: "up 6:66:06, load average: 6.66, 6.66, 6.66", Class: Success}}
}

func (s *Shell) whoami([]string) []Line {
	return []Line{{Text: "demon", Class: Info}}
}

func (s *Shell) ping([]string) []Line {
	return []Line{
		{Text: "PING void.hell (6.6.6.6) 56 bytes of data."},
		{Text: "64 bytes from void.hell: icmp_seq=1 ttl=66 time=6.66 ms", Class: Success},
		{Text: "64 bytes from void.hell: icmp_seq=2 ttl=66 time=6.66 ms", Class: Success},
		{Text: "--- void.hell ping statistics ---", Class: Info},
		{Text: "2 packets transmitted, 2 received, 0% packet loss", Class: Success},
	}
}

func (s *Shell) matrix([]string) []Line {
	s.env.Toast("🟩 Matrix mode activated... just kidding.")
	return []Line{{Text: "Wake up, Neo... (jk)", Class: Info}}
}

func (s *Shell) neofetch([]string) []Line {
	return []Line{
		{Text: `    /\    DemonOS v6.6.6`, Class: Info},
		{Text: `   /  \   ─────────────`, Class: Info},
		{Text: `  / /\ \  Kernel: Infernal v6.6.6`},
		{Text: ` / /  \ \ CPU: Brimstone x666 @ 6.66GHz`},
		{Text: `/______\ Memory: 666MB / 6.66GB`},
		{Text: `          Shell: demon-sh`},
		{Text: `          Resolution: ` + s.env.Resolution()},
		{Text: `          Theme: ` + s.env.Theme()},
	}
}
