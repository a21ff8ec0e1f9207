package particles

import (
	"math/rand/v2"
	"time"

	"k8s.io/klog/v2"

	"github.com/iburimskiy/hero-particles/internal/config"
)

// Field is the animated particle background of one container. It is not
// safe for concurrent use: every method, and every host callback, must run
// on the same goroutine.
type Field struct {
	ctx     Context
	frames  FrameScheduler
	resize  ResizeSource
	surface *Surface
	store   *Store
	gate    Gate

	frameID   int
	scheduled bool

	removeResize func()
	disconnect   func()

	inert    bool
	disposed bool

	ticks int
	links int
}

type options struct {
	rng   *rand.Rand
	count int
}

type Option func(*options)

// WithSeed makes the field's random draws reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithCount overrides the particle count. Only tests should need it.
func WithCount(n int) Option {
	return func(o *options) { o.count = n }
}

// Mount attaches a field to the host and starts animating once the
// container is visible. It never fails: if the host cannot provide a drawing
// context the returned field does nothing.
func Mount(host Host, opts ...Option) *Field {
	o := options{count: config.ParticleCount}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		WithSeed(uint64(time.Now().UnixNano()))(&o)
	}

	f := &Field{frames: host.Frames, resize: host.Resize}
	if host.Canvas == nil || host.Frames == nil || host.Resize == nil {
		klog.V(1).Info("particle field disabled: host is missing a capability")
		f.inert = true
		return f
	}
	ctx, err := host.Canvas.Context()
	if err != nil || ctx == nil {
		klog.V(1).Infof("particle field disabled: no 2d context: %v", err)
		f.inert = true
		return f
	}
	f.ctx = ctx
	f.surface = newSurface(ctx)

	w, h := host.Resize.Size()
	devW, devH := f.surface.Configure(w, h, host.Resize.Scale())
	f.store = Seed(o.rng, o.count, w, h)
	f.removeResize = host.Resize.OnResize(f.onResize)

	if host.Visibility == nil {
		klog.V(1).Info("particle field: no visibility observer, always visible")
		f.gate.Set(true)
	} else {
		f.disconnect = host.Visibility.Observe(f.onVisibility)
	}

	klog.V(2).Infof("particle field mounted: %d particles, %gx%g logical, %dx%d device", o.count, w, h, devW, devH)
	f.Start()
	return f
}

// Start schedules the next tick unless one is already pending or the
// container is hidden.
func (f *Field) Start() {
	if f.inert || f.disposed || f.scheduled || !f.gate.Visible() {
		return
	}
	f.frameID = f.frames.RequestFrame(f.frame)
	f.scheduled = true
}

func (f *Field) frame() {
	f.scheduled = false
	f.Tick()
}

// Tick runs one physics step and redraws links then points, then keeps the
// loop going while the container is visible.
func (f *Field) Tick() {
	if f.inert || f.disposed {
		return
	}
	f.ticks++
	if !f.surface.Empty() {
		f.ctx.Clear()
		f.store.Step(f.surface.Width, f.surface.Height)
		ps := f.store.Particles()
		f.links = drawLinks(f.ctx, ps)
		drawPoints(f.ctx, ps)
	}
	if f.gate.Visible() {
		f.Start()
	}
}

func (f *Field) cancel() {
	if !f.scheduled {
		return
	}
	f.frames.CancelFrame(f.frameID)
	f.scheduled = false
}

func (f *Field) onResize() {
	w, h := f.resize.Size()
	devW, devH := f.surface.Configure(w, h, f.resize.Scale())
	klog.V(3).Infof("particle field resized: %gx%g logical, %dx%d device", w, h, devW, devH)
}

func (f *Field) onVisibility(visible bool) {
	if !f.gate.Set(visible) {
		return
	}
	klog.V(3).Infof("particle field visible=%t", visible)
	if visible {
		f.Start()
		return
	}
	f.cancel()
}

// Dispose cancels the pending frame and detaches from the host. It is safe
// to call more than once and on a field that never started.
func (f *Field) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	f.cancel()
	if f.removeResize != nil {
		f.removeResize()
		f.removeResize = nil
	}
	if f.disconnect != nil {
		f.disconnect()
		f.disconnect = nil
	}
	f.store = nil
	klog.V(2).Info("particle field disposed")
}

// Store returns the field's particles, or nil once disposed or when inert.
func (f *Field) Store() *Store { return f.store }

// Stats is a point-in-time view of a field for overlays and tests.
type Stats struct {
	Ticks     int
	Links     int
	Particles int
	Visible   bool
	Scheduled bool
	Inert     bool
	Disposed  bool

	Width, Height       float64
	DevWidth, DevHeight int
	Scale               float64
}

func (f *Field) Stats() Stats {
	s := Stats{
		Ticks:     f.ticks,
		Links:     f.links,
		Visible:   f.gate.Visible(),
		Scheduled: f.scheduled,
		Inert:     f.inert,
		Disposed:  f.disposed,
	}
	if f.store != nil {
		s.Particles = f.store.Len()
	}
	if f.surface != nil {
		s.Width, s.Height = f.surface.Width, f.surface.Height
		s.DevWidth, s.DevHeight = f.surface.DevWidth, f.surface.DevHeight
		s.Scale = f.surface.Scale
	}
	return s
}
