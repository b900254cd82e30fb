package util

import "iter"

type Node[T any] struct {
	Next  *Node[T]
	Value T
}

// List is an append-only queue that keeps insertion order.
type List[T any] struct {
	Head *Node[T]
	tail *Node[T]
	len  int
}

func (list *List[T]) Insert(value T) {
	node := &Node[T]{
		Value: value,
	}

	if list.tail == nil {
		list.Head = node
	} else {
		list.tail.Next = node
	}

	list.tail = node
	list.len++
}

func (list *List[T]) Len() int {
	return list.len
}

func (list *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := list.Head; node != nil; node = node.Next {
			if !yield(node.Value) {
				return
			}
		}
	}
}
