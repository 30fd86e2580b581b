// Package arcade holds the games panel simulations. Each game advances by
// Tick and is drawn onto a Canvas of terminal cells; none of them know about
// windows or the event loop.
package arcade

import (
	"math/rand/v2"
	"time"
)

// Field is the simulation area in game pixels
const (
	FieldWidth  = 520
	FieldHeight = 380
)

// frame is the fixed physics step of the paddle games
const frame = time.Second / 60

// holdFor is how long a key counts as held after a press. Terminals report
// presses and autorepeat only, never releases.
const holdFor = 150 * time.Millisecond

// Key is a game input
type Key int

const (
	KeyUp Key = iota + 1
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
)

// Game is one running simulation
type Game interface {
	Tick(dt time.Duration)
	Press(k Key)
	Draw(c *Canvas)
	Score() int
	Over() bool
}

// Info describes a game card
type Info struct {
	ID    string
	Name  string
	Blurb string
}

// Catalog lists the games in card order
var Catalog = []Info{
	{ID: "snake", Name: "SNAKE", Blurb: "Eat. Grow. Don't bite yourself."},
	{ID: "breakout", Name: "BREAKOUT", Blurb: "Shatter the brimstone wall."},
	{ID: "pong", Name: "PONG", Blurb: "Outlast the machine."},
}

// New starts the game with the given id
func New(id string, r *rand.Rand) (Game, bool) {
	if r == nil {
		r = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 666))
	}
	switch id {
	case "snake":
		return NewSnake(r), true
	case "breakout":
		return NewBreakout(r), true
	case "pong":
		return NewPong(), true
	}
	return nil, false
}

// stepper converts variable frame times into whole fixed steps
type stepper struct {
	step time.Duration
	acc  time.Duration
}

// advance returns how many steps fit into the accumulated time, at most 5
func (s *stepper) advance(dt time.Duration) int {
	s.acc += dt
	n := int(s.acc / s.step)
	s.acc -= time.Duration(n) * s.step
	if n > 5 {
		n = 5
	}
	return n
}

// held tracks keys that count as pressed for a short while
type held map[Key]time.Duration

func (h held) press(k Key) {
	h[k] = holdFor
}

func (h held) down(k Key) bool {
	return h[k] > 0
}

func (h held) decay(dt time.Duration) {
	for k, left := range h {
		if left -= dt; left <= 0 {
			delete(h, k)
		} else {
			h[k] = left
		}
	}
}
