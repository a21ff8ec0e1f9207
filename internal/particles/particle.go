package particles

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/hero-particles/internal/config"
)

// Class picks a particle's color. It is fixed at creation.
type Class uint8

const (
	Primary Class = iota
	Accent
)

func (c Class) String() string {
	if c == Accent {
		return "accent"
	}
	return "primary"
}

// RGB returns the class color, ignoring alpha.
func (c Class) RGB() color.RGBA {
	if c == Accent {
		return config.AccentColor
	}
	return config.PrimaryColor
}

// Particle is one drifting point. X and Y are logical pixels.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Class   Class
}

// Store owns the particle records of one Field.
type Store struct {
	particles []Particle
}

// Seed creates n particles spread uniformly over a w×h container.
func Seed(rng *rand.Rand, n int, w, h float64) *Store {
	s := &Store{particles: make([]Particle, n)}
	for i := range s.particles {
		class := Primary
		if rng.Float64() < config.AccentRatio {
			class = Accent
		}
		s.particles[i] = Particle{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			VX:      drift(rng),
			VY:      drift(rng),
			Radius:  rng.Float64()*(config.MaxRadius-config.MinRadius) + config.MinRadius,
			Opacity: rng.Float64()*(config.MaxOpacity-config.MinOpacity) + config.MinOpacity,
			Class:   class,
		}
	}
	return s
}

// drift returns a velocity component in [-MaxSpeed, MaxSpeed] excluding zero.
func drift(rng *rand.Rand) float64 {
	for {
		if v := (rng.Float64() - 0.5) * 2 * config.MaxSpeed; v != 0 {
			return v
		}
	}
}

func (s *Store) Len() int { return len(s.particles) }

// At returns a copy of particle i.
func (s *Store) At(i int) Particle { return s.particles[i] }

// Particles exposes the backing slice for the renderers. Callers must not
// write to it.
func (s *Store) Particles() []Particle { return s.particles }
