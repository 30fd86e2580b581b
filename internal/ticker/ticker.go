// Package ticker drives recurring frame callbacks through the Bubble Tea
// message loop. Each loop reschedules itself one tick at a time until its
// handle is stopped.
package ticker

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is delivered when a loop's interval has elapsed
type FrameMsg struct {
	Loop int
	Time time.Time
}

// Func is called once per frame with the time since the previous frame
type Func func(dt time.Duration) tea.Cmd

// Loop is the cancellation handle of a running frame loop
type Loop struct {
	id       int
	interval time.Duration
	fn       Func
	last     time.Time
	stopped  bool
	sched    *Scheduler
}

// Stop cancels the loop. Frames already in flight are dropped.
func (l *Loop) Stop() {
	if l == nil || l.stopped {
		return
	}
	l.stopped = true
	delete(l.sched.loops, l.id)
}

// Stopped reports whether Stop was called
func (l *Loop) Stopped() bool {
	return l == nil || l.stopped
}

// Scheduler owns the set of running loops
type Scheduler struct {
	loops  map[int]*Loop
	nextID int
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{loops: make(map[int]*Loop)}
}

// Start registers fn to run every interval. The returned command schedules
// the first frame.
func (s *Scheduler) Start(interval time.Duration, fn Func) (*Loop, tea.Cmd) {
	s.nextID++
	l := &Loop{
		id:       s.nextID,
		interval: interval,
		fn:       fn,
		sched:    s,
	}
	s.loops[l.id] = l
	return l, l.schedule()
}

// Handle runs the frame for msg and schedules the next one
func (s *Scheduler) Handle(msg FrameMsg) tea.Cmd {
	l, ok := s.loops[msg.Loop]
	if !ok {
		return nil
	}

	dt := l.interval
	if !l.last.IsZero() {
		dt = msg.Time.Sub(l.last)
	}
	l.last = msg.Time

	cmd := l.fn(dt)
	if l.stopped {
		return cmd
	}
	return tea.Batch(cmd, l.schedule())
}

// Active returns the number of running loops
func (s *Scheduler) Active() int {
	return len(s.loops)
}

// StopAll cancels every running loop
func (s *Scheduler) StopAll() {
	for _, l := range s.loops {
		l.stopped = true
	}
	clear(s.loops)
}

func (l *Loop) schedule() tea.Cmd {
	id := l.id
	return tea.Tick(l.interval, func(t time.Time) tea.Msg {
		return FrameMsg{Loop: id, Time: t}
	})
}
