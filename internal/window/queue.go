package window

import "sort"

// FrameQueue collects callbacks to run on the next Update. Callbacks queued
// while Run is draining wait for the following Update.
type FrameQueue struct {
	next    int
	pending map[int]func()
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{pending: map[int]func(){}}
}

func (q *FrameQueue) RequestFrame(fn func()) int {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

func (q *FrameQueue) CancelFrame(id int) {
	delete(q.pending, id)
}

func (q *FrameQueue) Len() int { return len(q.pending) }

// Run calls every callback queued before it started, oldest first.
func (q *FrameQueue) Run() int {
	if len(q.pending) == 0 {
		return 0
	}
	ids := make([]int, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	due := make([]func(), len(ids))
	for i, id := range ids {
		due[i] = q.pending[id]
		delete(q.pending, id)
	}
	for _, fn := range due {
		fn()
	}
	return len(due)
}
