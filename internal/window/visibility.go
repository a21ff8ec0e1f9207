package window

// Visibility turns a polled on-screen flag into change callbacks. The
// first Poll always reports, which resolves the observer's initial state.
type Visibility struct {
	fn    func(bool)
	known bool
	last  bool
}

func (v *Visibility) Observe(fn func(visible bool)) func() {
	v.fn = fn
	v.known = false
	return func() { v.fn = nil }
}

func (v *Visibility) Poll(visible bool) {
	if v.fn == nil {
		return
	}
	if v.known && v.last == visible {
		return
	}
	v.known, v.last = true, visible
	v.fn(visible)
}
