package ticker

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRunsAndReschedules(t *testing.T) {
	s := NewScheduler()
	var frames []time.Duration
	l, cmd := s.Start(100*time.Millisecond, func(dt time.Duration) tea.Cmd {
		frames = append(frames, dt)
		return nil
	})
	require.NotNil(t, cmd)

	start := time.Now()
	next := s.Handle(FrameMsg{Loop: l.id, Time: start})
	assert.NotNil(t, next)
	s.Handle(FrameMsg{Loop: l.id, Time: start.Add(130 * time.Millisecond)})

	assert.Equal(t, []time.Duration{100 * time.Millisecond, 130 * time.Millisecond}, frames)
	assert.Equal(t, 1, s.Active())
}

func TestStoppedLoopDropsFrames(t *testing.T) {
	s := NewScheduler()
	calls := 0
	l, _ := s.Start(time.Second, func(time.Duration) tea.Cmd {
		calls++
		return nil
	})

	l.Stop()
	l.Stop()

	assert.Nil(t, s.Handle(FrameMsg{Loop: l.id, Time: time.Now()}))
	assert.Equal(t, 0, calls)
	assert.True(t, l.Stopped())
	assert.Equal(t, 0, s.Active())
}

func TestLoopCanStopItself(t *testing.T) {
	s := NewScheduler()
	var l *Loop
	l, _ = s.Start(time.Millisecond, func(time.Duration) tea.Cmd {
		l.Stop()
		return nil
	})

	assert.Nil(t, s.Handle(FrameMsg{Loop: l.id, Time: time.Now()}))
	assert.Equal(t, 0, s.Active())
}

func TestStopAll(t *testing.T) {
	s := NewScheduler()
	a, _ := s.Start(time.Second, func(time.Duration) tea.Cmd { return nil })
	b, _ := s.Start(time.Second, func(time.Duration) tea.Cmd { return nil })

	s.StopAll()

	assert.True(t, a.Stopped())
	assert.True(t, b.Stopped())
	assert.Equal(t, 0, s.Active())
}

func TestNilLoopIsStopped(t *testing.T) {
	var l *Loop
	l.Stop()
	assert.True(t, l.Stopped())
}
