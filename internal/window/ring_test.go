package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickRingSnapshot(t *testing.T) {
	tests := []struct {
		name string
		size int
		add  []time.Duration
		n    int
		want []time.Duration
	}{
		{"empty", 4, nil, 4, []time.Duration{}},
		{"partial", 4, []time.Duration{1, 2}, 4, []time.Duration{1, 2}},
		{"wrapped", 3, []time.Duration{1, 2, 3, 4, 5}, 3, []time.Duration{3, 4, 5}},
		{"last two", 3, []time.Duration{1, 2, 3, 4}, 2, []time.Duration{3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewTickRing(tt.size)
			for _, d := range tt.add {
				r.Add(d)
			}
			assert.Equal(t, tt.want, r.Snapshot(tt.n))
		})
	}
}

func TestTickRingAverage(t *testing.T) {
	r := NewTickRing(2)
	assert.Equal(t, time.Duration(0), r.Average())
	r.Add(2 * time.Millisecond)
	r.Add(4 * time.Millisecond)
	r.Add(6 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, r.Average())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "01:05", FormatDuration(65*time.Second))
	assert.Equal(t, "61:01", FormatDuration(61*time.Minute+time.Second))
	assert.Equal(t, "1.25ms", FormatTick(1250*time.Microsecond))
}
