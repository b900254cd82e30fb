package list

import (
	"io"
	"iter"
)

type doublyNode struct {
	value int
	next  *doublyNode
	prev  *doublyNode
}

// Doubly is a linked list of ints walkable in both directions.
type Doubly struct {
	head *doublyNode
	tail *doublyNode
	size int
}

func NewDoubly() *Doubly {
	return &Doubly{}
}

func (list *Doubly) Len() int {
	return list.size
}

func (list *Doubly) InsertFirst(value int) {
	node := &doublyNode{value: value, next: list.head}
	if list.head == nil {
		list.tail = node
	} else {
		list.head.prev = node
	}
	list.head = node
	list.size++
}

func (list *Doubly) Append(value int) {
	node := &doublyNode{value: value}
	if list.head == nil {
		list.head = node
		list.tail = node
		list.size++
		return
	}
	list.tail.next = node
	node.prev = list.tail
	list.tail = node
	list.size++
}

// All yields values from head to tail.
func (list *Doubly) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for node := list.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Backward yields values from tail to head following prev links.
func (list *Doubly) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for node := list.tail; node != nil; node = node.prev {
			if !yield(node.value) {
				return
			}
		}
	}
}

func (list *Doubly) Render(w io.Writer) error {
	return renderLines(w, list.All())
}

func (list *Doubly) RenderReverse(w io.Writer) error {
	return renderLines(w, list.Backward())
}

func (list *Doubly) String() string {
	return format(list.All())
}
