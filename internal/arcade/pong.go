package arcade

import (
	"strconv"
	"time"
)

const (
	pongPaddleH = 80
	pongPaddleW = 12
	pongPaddleX = 16
)

// Pong is the player versus machine paddle game
type Pong struct {
	clock   stepper
	keys    held
	player  float64 // paddle top
	ai      float64
	ball    ball
	playerN int
	aiN     int
}

// NewPong starts a pong match
func NewPong() *Pong {
	return &Pong{
		clock:  stepper{step: frame},
		keys:   held{},
		player: FieldHeight/2 - pongPaddleH/2,
		ai:     FieldHeight/2 - pongPaddleH/2,
		ball:   ball{X: FieldWidth / 2, Y: FieldHeight / 2, VX: 4, VY: 3},
	}
}

// Press moves the player paddle
func (p *Pong) Press(k Key) {
	p.keys.press(k)
}

// Tick advances the match in fixed frames
func (p *Pong) Tick(dt time.Duration) {
	for n := p.clock.advance(dt); n > 0; n-- {
		p.frame()
		p.keys.decay(frame)
	}
}

func (p *Pong) frame() {
	if p.keys.down(KeyUp) {
		p.player = max(0, p.player-6)
	}
	if p.keys.down(KeyDown) {
		p.player = min(FieldHeight-pongPaddleH, p.player+6)
	}

	center := p.ai + pongPaddleH/2
	if center < p.ball.Y-4 {
		p.ai = min(FieldHeight-pongPaddleH, p.ai+4)
	} else if center > p.ball.Y+4 {
		p.ai = max(0, p.ai-4)
	}

	p.ball.X += p.ball.VX
	p.ball.Y += p.ball.VY

	if p.ball.Y < 6 || p.ball.Y > FieldHeight-6 {
		p.ball.VY *= -1
	}

	if p.ball.X < pongPaddleX+pongPaddleW && p.ball.Y > p.player && p.ball.Y < p.player+pongPaddleH && p.ball.VX < 0 {
		p.ball.VX *= -1.05
		p.ball.VY += (p.ball.Y - (p.player + pongPaddleH/2)) / 15
	}
	if p.ball.X > FieldWidth-pongPaddleX-pongPaddleW && p.ball.Y > p.ai && p.ball.Y < p.ai+pongPaddleH && p.ball.VX > 0 {
		p.ball.VX *= -1.05
		p.ball.VY += (p.ball.Y - (p.ai + pongPaddleH/2)) / 15
	}

	if p.ball.X < 0 {
		p.aiN++
		p.ball = ball{X: FieldWidth / 2, Y: FieldHeight / 2, VX: 4, VY: 3}
	}
	if p.ball.X > FieldWidth {
		p.playerN++
		p.ball = ball{X: FieldWidth / 2, Y: FieldHeight / 2, VX: -4, VY: 3}
	}

	p.ball.VX = max(-10, min(10, p.ball.VX))
	p.ball.VY = max(-8, min(8, p.ball.VY))
}

// Score returns the player's points
func (p *Pong) Score() int { return p.playerN }

// Points returns both scores, player first
func (p *Pong) Points() (player, ai int) { return p.playerN, p.aiN }

// Over is always false; pong has no end state
func (p *Pong) Over() bool { return false }

// Draw renders the court
func (p *Pong) Draw(c *Canvas) {
	c.Clear()
	mid := c.Cols / 2
	for row := 0; row < c.Rows; row += 2 {
		c.Set(mid, row, '┊', ToneDim)
	}
	c.Fill(pongPaddleX, p.player, pongPaddleW, pongPaddleH, '█', ToneAccent)
	c.Fill(FieldWidth-pongPaddleX-pongPaddleW, p.ai, pongPaddleW, pongPaddleH, '█', ToneSecondary)
	c.Point(p.ball.X, p.ball.Y, '●', ToneBright)

	c.Text(c.Cols/4, 1, strconv.Itoa(p.playerN), ToneAccent)
	c.Text(3*c.Cols/4, 1, strconv.Itoa(p.aiN), ToneSecondary)
}
