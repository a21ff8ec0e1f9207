package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueueRunsInOrder(t *testing.T) {
	q := NewFrameQueue()
	var got []int
	q.RequestFrame(func() { got = append(got, 1) })
	q.RequestFrame(func() { got = append(got, 2) })
	q.RequestFrame(func() { got = append(got, 3) })

	assert.Equal(t, 3, q.Run())
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 0, q.Len())
}

func TestFrameQueueDefersRequestsFromCallbacks(t *testing.T) {
	q := NewFrameQueue()
	runs := 0
	var tick func()
	tick = func() {
		runs++
		q.RequestFrame(tick)
	}
	q.RequestFrame(tick)

	q.Run()
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, q.Len())
	q.Run()
	assert.Equal(t, 2, runs)
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	id := q.RequestFrame(func() { ran = true })
	q.CancelFrame(id)
	q.CancelFrame(id)

	assert.Equal(t, 0, q.Run())
	assert.False(t, ran)
}

func TestVisibilityPoll(t *testing.T) {
	var v Visibility
	var got []bool
	stop := v.Observe(func(b bool) { got = append(got, b) })

	v.Poll(true)
	v.Poll(true)
	v.Poll(false)
	v.Poll(false)
	v.Poll(true)
	assert.Equal(t, []bool{true, false, true}, got)

	stop()
	v.Poll(false)
	assert.Equal(t, []bool{true, false, true}, got)
}

func TestVisibilityFirstPollResolvesHidden(t *testing.T) {
	var v Visibility
	var got []bool
	v.Observe(func(b bool) { got = append(got, b) })
	v.Poll(false)
	assert.Equal(t, []bool{false}, got)
}
