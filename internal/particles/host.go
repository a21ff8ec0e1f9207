// Package particles animates the drifting point field behind the hero
// section: seeding, physics, proximity links and the frame loop. The host
// environment is reached only through the interfaces in this file.
package particles

import "image/color"

// Context is a 2D drawing context. Coordinates passed to the draw calls are
// logical pixels; the context maps them through the current transform.
type Context interface {
	// SetBufferSize resizes the device-pixel backing buffer, clearing it and
	// resetting the transform.
	SetBufferSize(w, h int)
	// SetTransform replaces the transform with a uniform scale.
	SetTransform(scale float64)
	Clear()
	// StrokeLine and FillCircle take the color's RGB with a separate alpha
	// in [0, 1].
	StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA, alpha float64)
	FillCircle(cx, cy, r float64, c color.RGBA, alpha float64)
}

// Canvas hands out the drawing context. It may fail on hosts without 2D
// support.
type Canvas interface {
	Context() (Context, error)
}

// FrameScheduler runs a callback once on the next display frame.
type FrameScheduler interface {
	RequestFrame(fn func()) int
	CancelFrame(id int)
}

// VisibilityObserver reports whether the container is on screen. The first
// callback resolves the initial state. The returned func stops observation.
type VisibilityObserver interface {
	Observe(fn func(visible bool)) (disconnect func())
}

// ResizeSource reports the container's logical size and the display's
// pixel-density scale, and notifies on change.
type ResizeSource interface {
	Size() (w, h float64)
	Scale() float64
	OnResize(fn func()) (remove func())
}

// Host bundles the capabilities a Field needs. Visibility may be nil, in
// which case the field is always visible.
type Host struct {
	Canvas     Canvas
	Frames     FrameScheduler
	Resize     ResizeSource
	Visibility VisibilityObserver
}
