package particles

// Step advances every particle by its velocity and reflects it off the
// edges of a w×h container. Positions are not clamped: a particle may sit
// up to one tick of travel outside the box before it heads back.
func (s *Store) Step(w, h float64) {
	for i := range s.particles {
		p := &s.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VX = reflect(p.X, p.VX, w)
		p.VY = reflect(p.Y, p.VY, h)
	}
}

// reflect points v back inside [0, size]. Only outward motion is flipped,
// so a particle already returning is left alone.
func reflect(pos, v, size float64) float64 {
	switch {
	case pos < 0 && v < 0:
		return -v
	case pos > size && v > 0:
		return -v
	}
	return v
}

