package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sizeLog struct {
	drawLog
	bufW, bufH int
	scale      float64
	calls      []string
}

func (s *sizeLog) SetBufferSize(w, h int) {
	s.bufW, s.bufH = w, h
	s.calls = append(s.calls, "size")
}

func (s *sizeLog) SetTransform(scale float64) {
	s.scale = scale
	s.calls = append(s.calls, "transform")
}

func TestSurfaceConfigure(t *testing.T) {
	tests := []struct {
		name         string
		w, h, scale  float64
		wantW, wantH int
		wantScale    float64
	}{
		{"retina", 300, 200, 2, 600, 400, 2},
		{"standard", 1280, 720, 1, 1280, 720, 1},
		{"fractional", 333, 101, 1.5, 499, 151, 1.5},
		{"missing scale", 300, 200, 0, 300, 200, 1},
		{"zero area", 0, 200, 2, 0, 400, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &sizeLog{}
			s := newSurface(ctx)
			w, h := s.Configure(tt.w, tt.h, tt.scale)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
			assert.Equal(t, tt.wantW, ctx.bufW)
			assert.Equal(t, tt.wantH, ctx.bufH)
			assert.Equal(t, tt.wantScale, ctx.scale)
			assert.Equal(t, []string{"size", "transform"}, ctx.calls)
		})
	}
}

func TestSurfaceEmpty(t *testing.T) {
	s := newSurface(&sizeLog{})
	s.Configure(0, 0, 1)
	assert.True(t, s.Empty())
	s.Configure(10, 10, 1)
	assert.False(t, s.Empty())
}

func TestGate(t *testing.T) {
	var g Gate
	assert.False(t, g.Visible())
	assert.False(t, g.Set(false))
	assert.True(t, g.Set(true))
	assert.True(t, g.Visible())
	assert.False(t, g.Set(true))
	assert.True(t, g.Set(false))
}
