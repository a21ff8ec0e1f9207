package particles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/hero-particles/internal/config"
)

func single(p Particle) *Store {
	s := &Store{particles: make([]Particle, 1)}
	s.set(0, p)
	return s
}

func TestStepReflection(t *testing.T) {
	tests := []struct {
		name       string
		in         Particle
		w, h       float64
		wantX      float64
		wantVX     float64
		wantVY     float64
		wantInside bool
	}{
		{"interior drift", Particle{X: 100, Y: 50, VX: 0.1, VY: -0.1}, 200, 100, 100.1, 0.1, -0.1, true},
		{"short of right edge", Particle{X: 199, Y: 50, VX: 0.3}, 200, 100, 199.3, 0.3, 0, true},
		{"crosses right edge", Particle{X: 199.9, Y: 50, VX: 0.3}, 200, 100, 200.2, -0.3, 0, false},
		{"crosses left edge", Particle{X: 0.05, Y: 50, VX: -0.1}, 200, 100, -0.05, 0.1, 0, false},
		{"lands exactly on edge", Particle{X: 199.5, Y: 50, VX: 0.5}, 200, 100, 200, 0.5, 0, true},
		{"already returning", Particle{X: 210, Y: 50, VX: -0.2}, 200, 100, 209.8, -0.2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := single(tt.in)
			s.Step(tt.w, tt.h)
			p := s.At(0)
			assert.InDelta(t, tt.wantX, p.X, 1e-9)
			assert.Equal(t, tt.wantVX, p.VX)
			assert.Equal(t, tt.wantVY, p.VY)
			inside := p.X >= 0 && p.X <= tt.w && p.Y >= 0 && p.Y <= tt.h
			assert.Equal(t, tt.wantInside, inside)
		})
	}
}

func TestStepOvershootReturns(t *testing.T) {
	s := single(Particle{X: 199.9, Y: 50, VX: 0.3})
	s.Step(200, 100)
	s.Step(200, 100)
	p := s.At(0)
	assert.InDelta(t, 199.9, p.X, 1e-9)
	assert.Equal(t, -0.3, p.VX, "no second flip on the way back")
}

func TestStepKeepsParticlesNearBox(t *testing.T) {
	const w, h = 300.0, 200.0
	s := Seed(seeded(3), config.ParticleCount, w, h)
	for tick := 0; tick < 5000; tick++ {
		before := append([]Particle(nil), s.Particles()...)
		s.Step(w, h)
		for i, p := range s.Particles() {
			assert.GreaterOrEqual(t, p.X, -config.MaxSpeed)
			assert.LessOrEqual(t, p.X, w+config.MaxSpeed)
			assert.GreaterOrEqual(t, p.Y, -config.MaxSpeed)
			assert.LessOrEqual(t, p.Y, h+config.MaxSpeed)

			crossedX := (p.X < 0 && before[i].VX < 0) || (p.X > w && before[i].VX > 0)
			assert.Equal(t, crossedX, math.Signbit(p.VX) != math.Signbit(before[i].VX), "particle %d tick %d", i, tick)
			crossedY := (p.Y < 0 && before[i].VY < 0) || (p.Y > h && before[i].VY > 0)
			assert.Equal(t, crossedY, math.Signbit(p.VY) != math.Signbit(before[i].VY), "particle %d tick %d", i, tick)
		}
		if t.Failed() {
			return
		}
	}
}

func TestStepLeavesFixedFields(t *testing.T) {
	s := Seed(seeded(9), 20, 100, 100)
	before := append([]Particle(nil), s.Particles()...)
	for i := 0; i < 100; i++ {
		s.Step(100, 100)
	}
	for i, p := range s.Particles() {
		assert.Equal(t, before[i].Radius, p.Radius)
		assert.Equal(t, before[i].Opacity, p.Opacity)
		assert.Equal(t, before[i].Class, p.Class)
	}
}
