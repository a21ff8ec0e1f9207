package window

import (
	"sync"
	"time"
)

// TickRing keeps the durations of the last N ticks so the overlay can show
// a rolling average.
type TickRing struct {
	buffer    []time.Duration
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewTickRing(size int) *TickRing {
	if size < 1 {
		size = 1
	}
	return &TickRing{buffer: make([]time.Duration, size)}
}

func (r *TickRing) Add(d time.Duration) {
	r.mu.Lock()
	r.buffer[r.nextIndex] = d
	r.nextIndex++
	if r.nextIndex >= len(r.buffer) {
		r.nextIndex = 0
	}
	if r.filled < len(r.buffer) {
		r.filled++
	}
	r.mu.Unlock()
}

// Snapshot returns up to the last n durations, oldest first.
func (r *TickRing) Snapshot(n int) []time.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n > r.filled {
		n = r.filled
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := r.nextIndex - 1
	if idx < 0 {
		idx = len(r.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, r.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(r.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Average is the mean of everything currently in the ring.
func (r *TickRing) Average() time.Duration {
	samples := r.Snapshot(len(r.buffer))
	if len(samples) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	return sum / time.Duration(len(samples))
}
