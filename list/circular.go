package list

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

type circularNode struct {
	value int
	next  *circularNode
}

// Circular is a singly linked list whose tail links back to its head.
type Circular struct {
	head *circularNode
	tail *circularNode
	size int
}

func NewCircular() *Circular {
	return &Circular{}
}

func (list *Circular) Len() int {
	return list.size
}

func (list *Circular) Append(value int) {
	node := &circularNode{value: value}
	if list.head == nil {
		node.next = node
		list.head = node
		list.tail = node
	} else {
		list.tail.next = node
		node.next = list.head
		list.tail = node
	}
	list.size++
}

// Delete unlinks the first node holding value, scanning forward from head.
func (list *Circular) Delete(value int) Outcome {
	if list.head == nil {
		return Empty
	}

	if list.head.value == value {
		if list.size == 1 {
			list.head = nil
			list.tail = nil
		} else {
			list.head = list.head.next
			list.tail.next = list.head
		}
		list.size--
		return Removed
	}

	// head was checked above, so the scan only looks at successors up to tail
	current := list.head
	for {
		next := current.next
		if next == list.head {
			return NotFound
		}
		if next.value == value {
			current.next = next.next
			if next == list.tail {
				list.tail = current
			}
			next.next = nil
			list.size--
			return Removed
		}
		current = next
	}
}

// All yields exactly Len() values, stopping when the walk is back at head.
func (list *Circular) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if list.head == nil {
			return
		}
		node := list.head
		for {
			if !yield(node.value) {
				return
			}
			node = node.next
			if node == list.head {
				return
			}
		}
	}
}

// Render writes "a -> b -> End", or "List is empty".
func (list *Circular) Render(w io.Writer) error {
	if list.head == nil {
		_, err := fmt.Fprintln(w, "List is empty")
		return err
	}
	var builder strings.Builder
	for value := range list.All() {
		fmt.Fprintf(&builder, "%d -> ", value)
	}
	builder.WriteString("End\n")
	_, err := io.WriteString(w, builder.String())
	return err
}

func (list *Circular) String() string {
	return format(list.All())
}
