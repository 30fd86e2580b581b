package arcade

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

const (
	snakeCell = 20
	snakeCols = FieldWidth / snakeCell
	snakeRows = FieldHeight / snakeCell
	snakeStep = 120 * time.Millisecond
)

type cell struct{ X, Y int }

// Snake is the grid snake game
type Snake struct {
	rng     *rand.Rand
	clock   stepper
	body    []cell // head first
	dir     cell
	nextDir cell
	food    cell
	score   int
	dead    bool
}

// NewSnake starts a snake game
func NewSnake(r *rand.Rand) *Snake {
	s := &Snake{rng: r, clock: stepper{step: snakeStep}}
	s.reset()
	return s
}

func (s *Snake) reset() {
	s.body = []cell{{10, 10}}
	s.dir = cell{1, 0}
	s.nextDir = s.dir
	s.score = 0
	s.dead = false
	s.food = s.randomFood()
}

func (s *Snake) randomFood() cell {
	return cell{s.rng.IntN(snakeCols), s.rng.IntN(snakeRows)}
}

// Press turns the snake; it cannot reverse onto itself
func (s *Snake) Press(k Key) {
	switch {
	case k == KeyUp && s.dir.Y != 1:
		s.nextDir = cell{0, -1}
	case k == KeyDown && s.dir.Y != -1:
		s.nextDir = cell{0, 1}
	case k == KeyLeft && s.dir.X != 1:
		s.nextDir = cell{-1, 0}
	case k == KeyRight && s.dir.X != -1:
		s.nextDir = cell{1, 0}
	case k == KeySpace && s.dead:
		s.reset()
	}
}

// Tick moves the snake one cell per step interval
func (s *Snake) Tick(dt time.Duration) {
	for n := s.clock.advance(dt); n > 0 && !s.dead; n-- {
		s.step()
	}
}

func (s *Snake) step() {
	s.dir = s.nextDir
	head := cell{s.body[0].X + s.dir.X, s.body[0].Y + s.dir.Y}
	if head.X < 0 || head.X >= snakeCols || head.Y < 0 || head.Y >= snakeRows || slices.Contains(s.body, head) {
		s.dead = true
		return
	}
	s.body = slices.Insert(s.body, 0, head)
	if head == s.food {
		s.score++
		s.food = s.randomFood()
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Score returns the food eaten
func (s *Snake) Score() int { return s.score }

// Over reports whether the snake crashed
func (s *Snake) Over() bool { return s.dead }

// Draw renders the board
func (s *Snake) Draw(c *Canvas) {
	c.Clear()
	c.Fill(float64(s.food.X*snakeCell), float64(s.food.Y*snakeCell), snakeCell, snakeCell, '◆', ToneSecondary)
	for i := len(s.body) - 1; i >= 0; i-- {
		seg := s.body[i]
		r, t := '▓', ToneAccent
		if i == 0 {
			r, t = '█', ToneBright
		}
		c.Fill(float64(seg.X*snakeCell), float64(seg.Y*snakeCell), snakeCell, snakeCell, r, t)
	}
	c.Text(1, 0, fmt.Sprintf("SCORE: %d", s.score), ToneAccent)
	if s.dead {
		c.Center(c.Rows/2-1, "GAME OVER", ToneAccent)
		c.Center(c.Rows/2+1, fmt.Sprintf("Score: %d | SPACE to restart", s.score), ToneMuted)
	}
}
