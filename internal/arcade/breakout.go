package arcade

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	brickRows = 4
	brickCols = 10
	paddleW   = 100
	paddleH   = 12
	ballR     = 7
)

type brick struct {
	X, Y, W, H float64
	Row        int
	Alive      bool
}

type ball struct {
	X, Y, VX, VY float64
}

// Breakout is the paddle and bricks game
type Breakout struct {
	rng    *rand.Rand
	clock  stepper
	keys   held
	paddle struct{ X, Y float64 }
	ball   ball
	bricks []brick
	score  int
	lives  int
	dead   bool
	won    bool
}

// NewBreakout starts a breakout game
func NewBreakout(r *rand.Rand) *Breakout {
	b := &Breakout{rng: r, clock: stepper{step: frame}, keys: held{}}
	b.reset()
	return b
}

func (b *Breakout) reset() {
	b.paddle.X, b.paddle.Y = FieldWidth/2-paddleW/2, FieldHeight-30
	b.ball = ball{X: FieldWidth / 2, Y: FieldHeight - 60, VX: 3, VY: -4}
	b.score, b.lives = 0, 3
	b.dead, b.won = false, false
	b.bricks = b.bricks[:0]
	for r := 0; r < brickRows; r++ {
		for c := 0; c < brickCols; c++ {
			b.bricks = append(b.bricks, brick{
				X: float64(c*49 + 4), Y: float64(r*26 + 40), W: 44, H: 18,
				Row: r, Alive: true,
			})
		}
	}
}

// Press moves the paddle or restarts a finished game
func (b *Breakout) Press(k Key) {
	if k == KeySpace && (b.dead || b.won) {
		b.reset()
		return
	}
	b.keys.press(k)
}

// Tick advances the simulation in fixed frames
func (b *Breakout) Tick(dt time.Duration) {
	for n := b.clock.advance(dt); n > 0; n-- {
		b.frame()
		b.keys.decay(frame)
	}
}

func (b *Breakout) frame() {
	if b.dead || b.won {
		return
	}
	if b.keys.down(KeyLeft) {
		b.paddle.X = max(0, b.paddle.X-6)
	}
	if b.keys.down(KeyRight) {
		b.paddle.X = min(FieldWidth-paddleW, b.paddle.X+6)
	}

	b.ball.X += b.ball.VX
	b.ball.Y += b.ball.VY

	if b.ball.X-ballR < 0 || b.ball.X+ballR > FieldWidth {
		b.ball.VX *= -1
	}
	if b.ball.Y-ballR < 0 {
		b.ball.VY *= -1
	}
	if b.ball.Y+ballR > FieldHeight {
		b.lives--
		if b.lives <= 0 {
			b.dead = true
		} else {
			vx := 3.0
			if b.rng.Float64() <= 0.5 {
				vx = -3
			}
			b.ball = ball{X: FieldWidth / 2, Y: FieldHeight - 60, VX: vx, VY: -4}
		}
	}

	if b.ball.Y+ballR > b.paddle.Y && b.ball.X > b.paddle.X && b.ball.X < b.paddle.X+paddleW && b.ball.VY > 0 {
		b.ball.VY *= -1
		b.ball.VX = (b.ball.X - (b.paddle.X + paddleW/2)) / 10
	}

	alive := 0
	for i := range b.bricks {
		br := &b.bricks[i]
		if !br.Alive {
			continue
		}
		if b.ball.X > br.X && b.ball.X < br.X+br.W && b.ball.Y > br.Y && b.ball.Y < br.Y+br.H {
			br.Alive = false
			b.ball.VY *= -1
			b.score++
			continue
		}
		alive++
	}
	b.won = alive == 0
}

// Score returns the bricks broken
func (b *Breakout) Score() int { return b.score }

// Lives returns the balls left
func (b *Breakout) Lives() int { return b.lives }

// Won reports whether every brick is gone
func (b *Breakout) Won() bool { return b.won }

// Over reports whether the game ended either way
func (b *Breakout) Over() bool { return b.dead || b.won }

// Draw renders the field
func (b *Breakout) Draw(c *Canvas) {
	c.Clear()
	for _, br := range b.bricks {
		if !br.Alive {
			continue
		}
		t := ToneAccent
		if br.Row%2 == 1 {
			t = ToneSecondary
		}
		c.Fill(br.X, br.Y, br.W-4, br.H, '▄', t)
	}
	c.Point(b.ball.X, b.ball.Y, '●', ToneBright)
	c.Fill(b.paddle.X, b.paddle.Y, paddleW, paddleH, '▀', ToneAccent)

	c.Text(1, 0, fmt.Sprintf("SCORE: %d", b.score), ToneAccent)
	lives := "LIVES: " + strings.Repeat("♥", max(b.lives, 0))
	c.Text(c.Cols-len([]rune(lives))-1, 0, lives, ToneAccent)

	if b.Over() {
		msg, t := "GAME OVER", ToneAccent
		if b.won {
			msg, t = "YOU WIN!", ToneSuccess
		}
		c.Center(c.Rows/2-1, msg, t)
		c.Center(c.Rows/2+1, fmt.Sprintf("Score: %d | SPACE to restart", b.score), ToneMuted)
	}
}
