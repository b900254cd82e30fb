package list

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireDoublyConsistent(t *testing.T, list *Doubly) {
	t.Helper()
	require.Equal(t, list.size == 0, list.head == nil)
	require.Equal(t, list.size == 0, list.tail == nil)
	if list.size == 0 {
		return
	}
	require.Nil(t, list.head.prev, "head must have no prev")
	require.Nil(t, list.tail.next, "tail must have no next")

	node := list.head
	for steps := 0; steps < list.size-1; steps++ {
		require.NotNil(t, node.next)
		require.Same(t, node, node.next.prev, "broken back link after %d steps", steps)
		node = node.next
	}
	require.Same(t, list.tail, node, "tail must be size-1 steps from head")
}

func TestDoublyForwardAndBackward(t *testing.T) {
	list := NewDoubly()
	list.InsertFirst(1)
	list.Append(2)
	list.Append(3)

	requireDoublyConsistent(t, list)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(list.All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(list.Backward()))
	assert.Equal(t, 3, list.Len())
}

func TestDoublyBackwardMirrorsForward(t *testing.T) {
	tests := []struct {
		name string
		ops  func(list *Doubly)
	}{
		{"single prepend", func(list *Doubly) { list.InsertFirst(5) }},
		{"single append", func(list *Doubly) { list.Append(5) }},
		{"prepends only", func(list *Doubly) {
			for i := 0; i < 5; i++ {
				list.InsertFirst(i)
			}
		}},
		{"interleaved", func(list *Doubly) {
			list.Append(1)
			list.InsertFirst(0)
			list.Append(2)
			list.InsertFirst(-1)
			list.Append(3)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewDoubly()
			tt.ops(list)
			requireDoublyConsistent(t, list)

			forward := slices.Collect(list.All())
			backward := slices.Collect(list.Backward())
			slices.Reverse(backward)
			assert.Equal(t, forward, backward)
			assert.Len(t, forward, list.Len())
		})
	}
}

func TestDoublyInsertFirstOnEmptySetsTail(t *testing.T) {
	list := NewDoubly()
	list.InsertFirst(8)
	require.NotNil(t, list.tail)
	assert.Same(t, list.head, list.tail)
	requireDoublyConsistent(t, list)
}

func TestDoublyEmpty(t *testing.T) {
	list := NewDoubly()
	assert.Empty(t, slices.Collect(list.All()))
	assert.Empty(t, slices.Collect(list.Backward()))
	assert.Equal(t, "[]", list.String())
}

func TestDoublyRender(t *testing.T) {
	list := NewDoubly()
	list.Append(1)
	list.Append(2)

	var out bytes.Buffer
	require.NoError(t, list.Render(&out))
	assert.Equal(t, "1\n2\n", out.String())

	out.Reset()
	require.NoError(t, list.RenderReverse(&out))
	assert.Equal(t, "2\n1\n", out.String())
}
