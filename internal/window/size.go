package window

// LayoutSize records the outside size handed to Layout and publishes it to
// resize listeners from Flush. Layout and Update may not share a call
// stack, so listeners only ever run inside Flush.
type LayoutSize struct {
	w, h     int
	scale    float64
	seen     bool
	recorded bool
	nextW    int
	nextH    int
	nextSc   float64

	next      int
	listeners map[int]func()
}

func NewLayoutSize() *LayoutSize {
	return &LayoutSize{scale: 1, nextSc: 1, listeners: map[int]func(){}}
}

// Record stores the latest outside size and device scale.
func (s *LayoutSize) Record(w, h int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.nextW, s.nextH, s.nextSc = w, h, scale
	s.recorded = true
}

// Flush applies the recorded size and notifies listeners if it changed.
// It reports whether a change was applied.
func (s *LayoutSize) Flush() bool {
	if !s.recorded {
		return false
	}
	if s.seen && s.nextW == s.w && s.nextH == s.h && s.nextSc == s.scale {
		return false
	}
	s.w, s.h, s.scale = s.nextW, s.nextH, s.nextSc
	first := !s.seen
	s.seen = true
	if first {
		return true
	}
	for _, fn := range s.listeners {
		fn()
	}
	return true
}

// Known reports whether Layout has run at least once.
func (s *LayoutSize) Known() bool { return s.seen }

func (s *LayoutSize) Size() (float64, float64) { return float64(s.w), float64(s.h) }

func (s *LayoutSize) Scale() float64 { return s.scale }

func (s *LayoutSize) OnResize(fn func()) func() {
	s.next++
	id := s.next
	s.listeners[id] = fn
	return func() { delete(s.listeners, id) }
}
