package nonogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkQueuePushPopPriority(t *testing.T) {
	q := NewWorkQueue()
	q.Push(LineInfo{Axis: AxisRow, Index: 0}, 0)
	q.Push(LineInfo{Axis: AxisRow, Index: 1}, 5)
	q.Push(LineInfo{Axis: AxisColumn, Index: 0}, 2)

	li, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, LineInfo{Axis: AxisRow, Index: 1}, li)

	li, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, LineInfo{Axis: AxisColumn, Index: 0}, li)

	li, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, LineInfo{Axis: AxisRow, Index: 0}, li)

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestWorkQueuePushIsIdempotentAndOnlyRaises(t *testing.T) {
	q := NewWorkQueue()
	li := LineInfo{Axis: AxisRow, Index: 0}
	q.Push(li, 5)
	q.Push(li, 1) // must not lower the priority
	assert.Equal(t, 1, q.Len())

	q.Push(li, 9)
	q.Push(LineInfo{Axis: AxisRow, Index: 1}, 0)
	popped, _ := q.Pop()
	assert.Equal(t, li, popped)
}

func TestWorkQueueTieBreakIsDeterministic(t *testing.T) {
	q := NewWorkQueue()
	q.Push(LineInfo{Axis: AxisRow, Index: 1}, 0)
	q.Push(LineInfo{Axis: AxisColumn, Index: 1}, 0)
	q.Push(LineInfo{Axis: AxisColumn, Index: 0}, 0)

	// Equal priority: column before row, then ascending index.
	li, _ := q.Pop()
	assert.Equal(t, LineInfo{Axis: AxisColumn, Index: 0}, li)
	li, _ = q.Pop()
	assert.Equal(t, LineInfo{Axis: AxisColumn, Index: 1}, li)
	li, _ = q.Pop()
	assert.Equal(t, LineInfo{Axis: AxisRow, Index: 1}, li)
}

func TestWorkQueueSeedAll(t *testing.T) {
	q := NewWorkQueue()
	q.SeedAll(3, 2)
	assert.Equal(t, 5, q.Len()) // 3 columns + 2 rows
}

func TestWorkQueueCloneIsIndependent(t *testing.T) {
	q := NewWorkQueue()
	q.Push(LineInfo{Axis: AxisRow, Index: 0}, 1)

	clone := q.Clone()
	clone.Push(LineInfo{Axis: AxisRow, Index: 1}, 1)

	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 2, clone.Len())
}
