package alg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackArray(t *testing.T) {
	s := NewStackArray(3)
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push(0)
	s.Push(1)
	s.Push(2)
	top, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, 2, top)
	second, ok := s.Index(1)
	assert.True(t, ok)
	assert.Equal(t, 1, second)
	_, ok = s.Index(3)
	assert.False(t, ok)
	assert.Equal(t, []int{0, 1, 2}, s.Items())
	assert.True(t, s.Contains(1))

	c := s.Copy()
	popped, _ := s.Pop()
	assert.Equal(t, 2, popped)
	assert.Equal(t, 3, c.Size(), "copy is independent")
	assert.False(t, c.Equal(s))
	s.Push(2)
	assert.True(t, c.Equal(s))

	s.Clear()
	assert.Equal(t, 0, s.Size())
}

func TestQueueSlice(t *testing.T) {
	q := NewQueueSlice(3)
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	front, _ := q.Peek()
	assert.Equal(t, 1, front)

	c := q.Copy()
	v, ok := q.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, q.Items())
	assert.Equal(t, 3, c.Size())

	q.Push(7)
	assert.Equal(t, []int{7, 2, 3}, q.Items())
	v, _ = q.Pop()
	assert.Equal(t, 7, v)
	last, ok := q.Index(1)
	assert.True(t, ok)
	assert.Equal(t, 3, last)
	assert.False(t, q.Contains(1))

	q.Clear()
	_, ok = q.Dequeue()
	assert.False(t, ok)
}
