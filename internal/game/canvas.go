package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/hero-particles/internal/particles"
)

// imageCanvas draws the particle field into an offscreen image sized in
// device pixels. Draw calls arrive in logical pixels and are scaled here.
type imageCanvas struct {
	buf   *ebiten.Image
	scale float32
}

func newImageCanvas() *imageCanvas {
	return &imageCanvas{scale: 1}
}

func (c *imageCanvas) Context() (particles.Context, error) { return c, nil }

// Image is the current buffer, nil while the container has no area.
func (c *imageCanvas) Image() *ebiten.Image { return c.buf }

func (c *imageCanvas) SetBufferSize(w, h int) {
	if c.buf != nil {
		c.buf.Deallocate()
		c.buf = nil
	}
	c.scale = 1
	if w > 0 && h > 0 {
		c.buf = ebiten.NewImage(w, h)
	}
}

func (c *imageCanvas) SetTransform(scale float64) {
	c.scale = float32(scale)
}

func (c *imageCanvas) Clear() {
	if c.buf != nil {
		c.buf.Clear()
	}
}

func (c *imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.RGBA, alpha float64) {
	if c.buf == nil {
		return
	}
	s := c.scale
	vector.StrokeLine(c.buf, float32(x0)*s, float32(y0)*s, float32(x1)*s, float32(y1)*s, float32(width)*s, withAlpha(clr, alpha), true)
}

func (c *imageCanvas) FillCircle(cx, cy, r float64, clr color.RGBA, alpha float64) {
	if c.buf == nil {
		return
	}
	s := c.scale
	vector.DrawFilledCircle(c.buf, float32(cx)*s, float32(cy)*s, float32(r)*s, withAlpha(clr, alpha), true)
}

// withAlpha converts an RGB color plus float alpha to a non-premultiplied
// color for ebiten.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(alpha * 255))}
}
