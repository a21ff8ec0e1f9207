// Package particletest provides manually driven hosts for exercising a
// particles.Field without a display.
package particletest

import (
	"image/color"
	"sort"

	"github.com/pkg/errors"

	"github.com/iburimskiy/hero-particles/internal/particles"
)

// ErrNoContext is returned by a Canvas built with Broken.
var ErrNoContext = errors.New("2d context unavailable")

type OpKind int

const (
	OpBufferSize OpKind = iota
	OpTransform
	OpClear
	OpLine
	OpCircle
)

// Op is one recorded call on a Recorder.
type Op struct {
	Kind OpKind

	W, H  int     // OpBufferSize
	Scale float64 // OpTransform

	X0, Y0, X1, Y1 float64 // OpLine; X0, Y0 are the center for OpCircle
	Width, Radius  float64
	Color          color.RGBA
	Alpha          float64
}

// Recorder is a Context that remembers every call.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) SetBufferSize(w, h int) {
	r.Ops = append(r.Ops, Op{Kind: OpBufferSize, W: w, H: h})
}

func (r *Recorder) SetTransform(scale float64) {
	r.Ops = append(r.Ops, Op{Kind: OpTransform, Scale: scale})
}

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: c, Alpha: alpha})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.RGBA, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X0: cx, Y0: cy, Radius: radius, Color: c, Alpha: alpha})
}

// Count returns how many recorded ops are of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) Draws() int { return r.Count(OpLine) + r.Count(OpCircle) }

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

// Canvas hands out its Recorder, or Err when set.
type Canvas struct {
	Recorder *Recorder
	Err      error
}

func NewCanvas() *Canvas { return &Canvas{Recorder: &Recorder{}} }

// Broken returns a canvas that cannot produce a context.
func Broken() *Canvas { return &Canvas{Err: ErrNoContext} }

func (c *Canvas) Context() (particles.Context, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Recorder, nil
}

// Frames is a FrameScheduler advanced by Step.
type Frames struct {
	next      int
	pending   map[int]func()
	Requested int
	Canceled  int
}

func NewFrames() *Frames { return &Frames{pending: map[int]func(){}} }

func (f *Frames) RequestFrame(fn func()) int {
	f.next++
	f.pending[f.next] = fn
	f.Requested++
	return f.next
}

func (f *Frames) CancelFrame(id int) {
	if _, ok := f.pending[id]; ok {
		delete(f.pending, id)
		f.Canceled++
	}
}

func (f *Frames) Pending() int { return len(f.pending) }

// Step runs the callbacks that were pending when it was called, in request
// order. Callbacks requested while stepping wait for the next Step.
func (f *Frames) Step() int {
	ids := make([]int, 0, len(f.pending))
	for id := range f.pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	due := make([]func(), 0, len(ids))
	for _, id := range ids {
		due = append(due, f.pending[id])
		delete(f.pending, id)
	}
	for _, fn := range due {
		fn()
	}
	return len(due)
}

// StepN calls Step n times.
func (f *Frames) StepN(n int) {
	for i := 0; i < n; i++ {
		f.Step()
	}
}

// Visibility is a VisibilityObserver toggled by Set.
type Visibility struct {
	fn          func(bool)
	Disconnects int
}

func (v *Visibility) Observe(fn func(bool)) func() {
	v.fn = fn
	return func() {
		v.fn = nil
		v.Disconnects++
	}
}

func (v *Visibility) Observing() bool { return v.fn != nil }

// Set delivers a visibility change to the observer, if any.
func (v *Visibility) Set(visible bool) {
	if v.fn != nil {
		v.fn(visible)
	}
}

// Resize is a ResizeSource with a settable size.
type Resize struct {
	W, H, S float64

	next      int
	listeners map[int]func()
	Removes   int
}

func NewResize(w, h, scale float64) *Resize {
	return &Resize{W: w, H: h, S: scale, listeners: map[int]func(){}}
}

func (r *Resize) Size() (float64, float64) { return r.W, r.H }

func (r *Resize) Scale() float64 { return r.S }

func (r *Resize) OnResize(fn func()) func() {
	r.next++
	id := r.next
	r.listeners[id] = fn
	return func() {
		if _, ok := r.listeners[id]; ok {
			delete(r.listeners, id)
			r.Removes++
		}
	}
}

func (r *Resize) Listeners() int { return len(r.listeners) }

// Set changes the size and notifies listeners.
func (r *Resize) Set(w, h float64) {
	r.W, r.H = w, h
	for _, fn := range r.listeners {
		fn()
	}
}

// Host bundles fresh doubles.
type Host struct {
	Canvas     *Canvas
	Frames     *Frames
	Resize     *Resize
	Visibility *Visibility
}

func NewHost(w, h, scale float64) *Host {
	return &Host{
		Canvas:     NewCanvas(),
		Frames:     NewFrames(),
		Resize:     NewResize(w, h, scale),
		Visibility: &Visibility{},
	}
}

// Particles returns the host for particles.Mount.
func (h *Host) Particles() particles.Host {
	return particles.Host{
		Canvas:     h.Canvas,
		Frames:     h.Frames,
		Resize:     h.Resize,
		Visibility: h.Visibility,
	}
}

func (h *Host) Recorder() *Recorder { return h.Canvas.Recorder }
