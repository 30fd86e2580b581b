package window

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kmacinski/demonos/internal/config"
	"github.com/kmacinski/demonos/internal/fetch"
	"github.com/kmacinski/demonos/internal/proxy"
	"github.com/kmacinski/demonos/internal/shell"
	"github.com/kmacinski/demonos/internal/ui"
	"github.com/kmacinski/demonos/internal/wm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProxy(host Host) *ProxyPanel {
	p := NewProxy(1, host, ui.DefaultStyles, ProxyOptions{BaseURL: "http://localhost:8080"})
	p.SetFocus(true)
	return p
}

func TestProxyCyclesEngineAndTransport(t *testing.T) {
	host := &fakeHost{}
	p := newTestProxy(host)
	require.Equal(t, proxy.EngineUV, p.Engine())
	require.Equal(t, proxy.TransportEpoxy, p.Transport())

	p.Update(keyPress("ctrl+e"))
	assert.Equal(t, proxy.EngineScramjet, p.Engine())
	assert.Equal(t, "Engine: SCRAMJET", host.lastToast())

	p.Update(keyPress("ctrl+t"))
	assert.Equal(t, proxy.TransportLibcurl, p.Transport())
	assert.Equal(t, "Transport: LIBCURL", host.lastToast())

	p.Update(keyPress("ctrl+e"))
	assert.Equal(t, proxy.EngineUV, p.Engine())
}

func TestProxyInvalidOptionsFallBack(t *testing.T) {
	p := NewProxy(1, &fakeHost{}, ui.DefaultStyles, ProxyOptions{Engine: "bogus", Transport: "carrier-pigeon"})
	assert.Equal(t, proxy.EngineUV, p.Engine())
	assert.Equal(t, proxy.TransportEpoxy, p.Transport())
}

func TestProxyNavigate(t *testing.T) {
	p := newTestProxy(&fakeHost{})

	assert.Nil(t, p.Navigate(), "empty input is ignored")
	assert.Equal(t, proxy.StatusReady, p.Status())

	p.input.SetValue("example.com")
	p.Navigate()
	assert.Equal(t, proxy.StatusConnecting, p.Status())
	assert.Equal(t, "http://localhost:8080/proxy.html?engine=uv&transport=epoxy&url=https%3A%2F%2Fexample.com", p.Target())
	assert.Equal(t, p.Target(), p.Yank())
}

func TestProxyIgnoresStaleLoads(t *testing.T) {
	p := newTestProxy(&fakeHost{})
	p.input.SetValue("one.test")
	p.Navigate()
	p.input.SetValue("two.test")
	p.Navigate()

	p.Update(PageLoadedMsg{Window: 1, Seq: 1, Err: errors.New("late")})
	assert.Equal(t, proxy.StatusConnecting, p.Status())

	p.Update(PageLoadedMsg{Window: 1, Seq: 2, Page: &fetch.Page{Title: "two", Lines: []string{"hello"}}})
	assert.Equal(t, proxy.StatusConnected, p.Status())
	assert.Contains(t, p.View(60, 12), "hello")

	p.Navigate()
	p.Update(PageLoadedMsg{Window: 1, Seq: 3, Err: errors.New("refused")})
	assert.Equal(t, proxy.StatusError, p.Status())
	assert.Contains(t, p.View(60, 12), "Error: refused")
}

func TestProxyClicks(t *testing.T) {
	host := &fakeHost{}
	p := newTestProxy(host)
	p.View(60, 12)

	p.Click(p.engineSpans[1].from, 0)
	assert.Equal(t, proxy.EngineScramjet, p.Engine())
	p.Click(p.transportSpans[1].from+1, 1)
	assert.Equal(t, proxy.TransportLibcurl, p.Transport())

	p.input.SetValue("hell.test")
	p.Click(p.goSpan.from, 2)
	assert.Equal(t, proxy.StatusConnecting, p.Status())
	assert.Contains(t, p.Target(), "engine=scramjet&transport=libcurl")

	p.Click(0, 0)
	assert.Equal(t, proxy.EngineScramjet, p.Engine(), "label column is not a button")
}

func TestBrowserHistory(t *testing.T) {
	b := NewBrowser(1, &fakeHost{}, ui.DefaultStyles, nil, time.Second)
	b.SetFocus(true)
	assert.False(t, b.CanGoBack())
	assert.Nil(t, b.Refresh())

	for _, u := range []string{"a.test", "b.test", "c.test"} {
		b.input.SetValue(u)
		b.Go()
	}
	assert.Equal(t, "https://c.test", b.URL())

	b.Back()
	b.Update(keyPress("alt+left"))
	assert.Equal(t, "https://a.test", b.URL())
	assert.False(t, b.CanGoBack())
	assert.True(t, b.CanGoForward())
	assert.Equal(t, "https://a.test", b.input.Value())

	b.Forward()
	assert.Equal(t, "https://b.test", b.URL())

	b.input.SetValue("d.test")
	b.Go()
	assert.False(t, b.CanGoForward(), "navigating drops forward history")
	assert.Equal(t, []string{"https://a.test", "https://b.test", "https://d.test"}, b.history)
}

func TestBrowserLoadFailureToasts(t *testing.T) {
	host := &fakeHost{}
	b := NewBrowser(4, host, ui.DefaultStyles, nil, time.Second)
	b.input.SetValue("nowhere.test")
	b.Go()

	b.Update(PageLoadedMsg{Window: 4, Seq: b.seq, Err: errors.New("no such host")})
	assert.Equal(t, "Page failed to load", host.lastToast())
	assert.False(t, b.loading)
	assert.Contains(t, b.View(60, 10), "no such host")
}

func TestBrowserFetchesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>The Pit</title></head><body><p>Abandon hope</p></body></html>`)
	}))
	defer srv.Close()

	b := NewBrowser(2, &fakeHost{}, ui.DefaultStyles, fetch.New(fetch.Options{}), 5*time.Second)
	b.input.SetValue(srv.URL)
	cmd := b.Go()
	require.NotNil(t, cmd)

	msg, ok := cmd().(PageLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, wm.ID(2), msg.Target())
	require.NoError(t, msg.Err)

	b.Update(msg)
	assert.Equal(t, "The Pit", b.title)
	assert.Contains(t, b.View(60, 10), "Abandon hope")
}

func TestSettingsChoose(t *testing.T) {
	host := &fakeHost{}
	s := NewSettings(1, host, ui.DefaultStyles, config.Default.Appearance)

	cmd := s.Choose(settingTheme, 1)
	require.NotNil(t, cmd)
	assert.Equal(t, "Theme: abyss", host.lastToast())
	msg, ok := cmd().(AppearanceMsg)
	require.True(t, ok)
	assert.Equal(t, "abyss", msg.Appearance.Theme)

	s.Choose(settingEngine, 1)
	assert.Equal(t, "Default engine: SCRAMJET", host.lastToast())
	assert.Equal(t, "scramjet", s.Values().DefaultEngine)

	assert.Nil(t, s.Choose(settingAccent, 99))
}

func TestSettingsKeysAndClicks(t *testing.T) {
	host := &fakeHost{}
	s := NewSettings(1, host, ui.DefaultStyles, config.Default.Appearance)
	s.SetFocus(true)

	s.Update(keyPress("down"))
	_, cmd := s.Update(keyPress("right"))
	require.NotNil(t, cmd)
	assert.False(t, s.Values().Scanlines)
	assert.Equal(t, "Scanlines: OFF", host.lastToast())

	s.Update(keyPress("left"))
	assert.True(t, s.Values().Scanlines)

	s.View(60, 12)
	s.Click(s.spans[settingAccent][2].from+1, 4)
	assert.Equal(t, config.Accents[2], s.Values().Accent)
	assert.Equal(t, "Accent color updated", host.lastToast())
	assert.Equal(t, settingAccent, s.cursor)

	assert.Nil(t, s.Click(0, 3), "gap rows hold no buttons")
}

func TestTerminalRunsCommandsAgainstHost(t *testing.T) {
	host := &fakeHost{windows: []wm.Entry{{ID: 3, Kind: wm.KindAbout, Label: "ABOUT"}}}
	term := NewTerminal(1, host, ui.DefaultStyles, func() string { return "void" })
	term.SetFocus(true)

	term.input.SetValue("open games")
	term.Update(keyPress("enter"))
	assert.Equal(t, []wm.Kind{wm.KindGames}, host.opened)
	assert.Empty(t, term.input.Value())
	assert.Equal(t, "Opening games...", term.Yank())

	term.input.SetValue("close 3")
	term.Update(keyPress("enter"))
	assert.Equal(t, []wm.ID{3}, host.closed)

	term.input.SetValue("close 9")
	term.Update(keyPress("enter"))
	assert.Len(t, host.closed, 1)
	last := term.Shell().Lines()[len(term.Shell().Lines())-1]
	assert.Equal(t, shell.Error, last.Class)

	term.Update(keyPress("up"))
	assert.Equal(t, "close 9", term.input.Value())
	term.Update(keyPress("up"))
	assert.Equal(t, "close 3", term.input.Value())
	term.Update(keyPress("down"))
	assert.Equal(t, "close 9", term.input.Value())
}

func TestTerminalViewShowsPrompt(t *testing.T) {
	term := NewTerminal(1, &fakeHost{}, ui.DefaultStyles, nil)
	term.SetFocus(true)
	term.input.SetValue("whoami")
	term.Update(keyPress("enter"))

	view := term.View(60, 8)
	assert.Contains(t, view, shell.Prompt+"whoami")
	assert.Contains(t, view, "demon")
}

func TestTerminalIgnoresKeysWhenUnfocused(t *testing.T) {
	host := &fakeHost{}
	term := NewTerminal(1, host, ui.DefaultStyles, nil)
	term.input.SetValue("open about")
	term.Update(keyPress("enter"))
	assert.Empty(t, host.opened)
}
