package particles

// Surface tracks the logical and device sizes of the drawing buffer.
type Surface struct {
	ctx Context

	Width, Height       float64 // logical
	DevWidth, DevHeight int
	Scale               float64
}

func newSurface(ctx Context) *Surface {
	return &Surface{ctx: ctx, Scale: 1}
}

// Configure sizes the backing buffer to w×h logical pixels at the given
// pixel density and installs the matching transform. Resizing the buffer
// clears it.
func (s *Surface) Configure(w, h, scale float64) (devW, devH int) {
	if scale <= 0 {
		scale = 1
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.Width, s.Height, s.Scale = w, h, scale
	s.DevWidth = int(w * scale)
	s.DevHeight = int(h * scale)
	s.ctx.SetBufferSize(s.DevWidth, s.DevHeight)
	s.ctx.SetTransform(scale)
	return s.DevWidth, s.DevHeight
}

// Empty reports whether the container has no drawable area.
func (s *Surface) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}
