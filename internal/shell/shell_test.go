package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv struct {
	opened  []string
	closed  []int
	toasts  []string
	windows []Window
}

func (f *fakeEnv) OpenApp(name string) bool {
	switch name {
	case "proxy", "browser", "settings", "terminal", "games", "about":
		f.opened = append(f.opened, name)
		return true
	}
	return false
}

func (f *fakeEnv) CloseWindow(id int) bool {
	for _, w := range f.windows {
		if w.ID == id {
			f.closed = append(f.closed, id)
			return true
		}
	}
	return false
}

func (f *fakeEnv) Windows() []Window { return f.windows }

func (f *fakeEnv) Toast(msg string) { f.toasts = append(f.toasts, msg) }

func (f *fakeEnv) Theme() string { return "abyss" }

func (f *fakeEnv) Resolution() string { return "1920x1080" }

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestExecEchoesAndRuns(t *testing.T) {
	s := New(&fakeEnv{})
	s.Exec("whoami")

	assert.Equal(t, []Line{
		{Text: "demon@os:~$ whoami"},
		{Text: "demon", Class: Info},
	}, s.Lines())
}

func TestUnknownCommand(t *testing.T) {
	s := New(&fakeEnv{})
	s.Exec("rm -rf /")

	require.Len(t, s.Lines(), 2)
	assert.Equal(t, Line{Text: "bash: rm: command not found", Class: Error}, s.Lines()[1])
}

func TestBlankInputIgnored(t *testing.T) {
	s := New(&fakeEnv{})
	s.Exec("   ")
	assert.Empty(t, s.Lines())
	assert.Equal(t, "", s.HistoryUp())
}

func TestOpenCommand(t *testing.T) {
	env := &fakeEnv{}
	s := New(env)

	s.Exec("open games")
	s.Exec("open explorer")
	s.Exec("open")

	assert.Equal(t, []string{"games"}, env.opened)
	assert.Equal(t, []string{
		"demon@os:~$ open games",
		"Opening games...",
		"demon@os:~$ open explorer",
		"Unknown app: explorer",
		"demon@os:~$ open",
		"Unknown app: ",
	}, texts(s.Lines()))
}

func TestCloseCommand(t *testing.T) {
	env := &fakeEnv{windows: []Window{{ID: 3, Kind: "about"}}}
	s := New(env)

	s.Exec("close 3")
	s.Exec("close 9")
	s.Exec("close x")
	s.Exec("close")

	assert.Equal(t, []int{3}, env.closed)
	assert.Equal(t, []string{
		"demon@os:~$ close 3",
		"Closed window 3",
		"demon@os:~$ close 9",
		"close: no window with id 9",
		"demon@os:~$ close x",
		"close: invalid id x",
		"demon@os:~$ close",
		"usage: close <id>",
	}, texts(s.Lines()))
}

func TestLs(t *testing.T) {
	env := &fakeEnv{}
	s := New(env)
	s.Exec("ls")
	assert.Equal(t, "No open windows", s.Lines()[1].Text)

	env.windows = []Window{{ID: 1, Kind: "proxy", Title: "P"}, {ID: 4, Kind: "games", Title: "G", Minimized: true}}
	s.Exec("ls")
	assert.Equal(t, []string{"  1  proxy     P", "  4  games     G (minimized)"}, texts(s.Lines()[3:]))
}

func TestClear(t *testing.T) {
	s := New(&fakeEnv{})
	s.Exec("ping")
	s.Exec("clear")
	assert.Empty(t, s.Lines())
}

func TestHelpListsEveryCommand(t *testing.T) {
	s := New(&fakeEnv{})
	s.Exec("help")
	assert.Len(t, s.Lines(), 2+len(commands))
}

func TestMatrixToasts(t *testing.T) {
	env := &fakeEnv{}
	s := New(env)
	s.Exec("matrix")
	assert.Len(t, env.toasts, 1)
}

func TestNeofetchUsesEnv(t *testing.T) {
	s := New(&fakeEnv{})
	s.Exec("neofetch")
	out := texts(s.Lines())
	assert.Contains(t, out, "          Resolution: 1920x1080")
	assert.Contains(t, out, "          Theme: abyss")
}

func TestDate(t *testing.T) {
	s := New(&fakeEnv{})
	s.now = func() time.Time { return time.Date(2026, 6, 6, 6, 6, 6, 0, time.UTC) }
	s.Exec("date")
	assert.Equal(t, "Sat Jun 06 2026 06:06:06 GMT+0000 (UTC)", s.Lines()[1].Text)
}

func TestHistory(t *testing.T) {
	s := New(&fakeEnv{})
	s.Exec("ls")
	s.Exec("date")
	s.Exec("ping")

	assert.Equal(t, "ping", s.HistoryUp())
	assert.Equal(t, "date", s.HistoryUp())
	assert.Equal(t, "ls", s.HistoryUp())
	assert.Equal(t, "ls", s.HistoryUp())
	assert.Equal(t, "date", s.HistoryDown())
	assert.Equal(t, "ping", s.HistoryDown())
	assert.Equal(t, "", s.HistoryDown())
	assert.Equal(t, "", s.HistoryDown())

	s.Exec("whoami")
	assert.Equal(t, "whoami", s.HistoryUp())
}
