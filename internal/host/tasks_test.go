package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskQueue_DrainOrder(t *testing.T) {
	var q TaskQueue
	var got []int

	q.Queue(func() { got = append(got, 1) })
	q.Queue(func() {
		got = append(got, 2)
		q.Queue(func() { got = append(got, 4) })
	})
	q.Queue(func() { got = append(got, 3) })

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 4, q.Drain())
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, 0, q.Len())
}

func TestTaskQueue_DrainEmpty(t *testing.T) {
	var q TaskQueue
	assert.Equal(t, 0, q.Drain())
}
