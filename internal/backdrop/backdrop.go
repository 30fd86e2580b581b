// Package backdrop animates the drifting particles behind the windows
package backdrop

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/kmacinski/demonos/internal/geom"
)

// Count is the number of particles on the desktop
const Count = 60

// Particle is one drifting dot, in viewport pixels
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

// Dot is a particle mapped onto a terminal cell
type Dot struct {
	Col, Row int
	Rune     rune
	Bright   bool
}

// Field holds the particle set for one viewport
type Field struct {
	size      geom.Size
	particles []Particle
	elapsed   time.Duration
}

// New scatters Count particles over the viewport
func New(size geom.Size, r *rand.Rand) *Field {
	f := &Field{size: size, particles: make([]Particle, Count)}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      r.Float64() * float64(size.Width),
			Y:      r.Float64() * float64(size.Height),
			Radius: r.Float64()*1.5 + 0.3,
			VX:     (r.Float64() - 0.5) * 0.3,
			VY:     (r.Float64() - 0.5) * 0.3,
			Alpha:  r.Float64(),
		}
	}
	return f
}

// Resize changes the wrap-around bounds. Particles outside the new bounds
// wrap on the next tick.
func (f *Field) Resize(size geom.Size) {
	f.size = size
}

// Particles returns the current particle set
func (f *Field) Particles() []Particle {
	return f.particles
}

// Tick advances every particle. Velocities are per 60Hz frame.
func (f *Field) Tick(dt time.Duration) {
	f.elapsed += dt
	steps := dt.Seconds() * 60
	w, h := float64(f.size.Width), float64(f.size.Height)
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX * steps
		p.Y += p.VY * steps
		p.Alpha = 0.2 + 0.8*math.Abs(math.Sin(f.elapsed.Seconds()/3+p.X))
		switch {
		case p.X < 0:
			p.X = w
		case p.X > w:
			p.X = 0
		}
		switch {
		case p.Y < 0:
			p.Y = h
		case p.Y > h:
			p.Y = 0
		}
	}
}

// Dots maps particles onto a grid of cells of the given pixel size. Faint
// particles are skipped.
func (f *Field) Dots(cell geom.Size) []Dot {
	if cell.Width <= 0 || cell.Height <= 0 {
		return nil
	}
	dots := make([]Dot, 0, len(f.particles))
	for _, p := range f.particles {
		if p.Alpha < 0.35 {
			continue
		}
		d := Dot{
			Col:    int(p.X) / cell.Width,
			Row:    int(p.Y) / cell.Height,
			Rune:   '·',
			Bright: p.Alpha > 0.8,
		}
		if p.Radius > 1.2 {
			d.Rune = '•'
		}
		dots = append(dots, d)
	}
	return dots
}
