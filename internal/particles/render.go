package particles

import (
	"math"

	"github.com/iburimskiy/hero-particles/internal/config"
)

// linkAlpha is the opacity of a proximity line between points d apart, or
// zero when they are too far apart to link.
func linkAlpha(d float64) float64 {
	if d >= config.LinkDistance {
		return 0
	}
	return clamp01(config.LinkAlpha * (1 - d/config.LinkDistance))
}

// drawLinks strokes a fading line for every close pair. It is quadratic in
// the particle count, which is fine at 60 particles and gets slow past a few
// hundred. Returns the number of lines drawn.
func drawLinks(ctx Context, ps []Particle) int {
	n := 0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y)
			if d >= config.LinkDistance {
				continue
			}
			ctx.StrokeLine(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y, config.LinkWidth, config.AccentColor, linkAlpha(d))
			n++
		}
	}
	return n
}

// drawPoints fills each particle's disc. Must run after drawLinks so points
// sit on top.
func drawPoints(ctx Context, ps []Particle) {
	for i := range ps {
		p := &ps[i]
		ctx.FillCircle(p.X, p.Y, p.Radius, p.Class.RGB(), p.Opacity)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
