package list

import (
	"fmt"
	"io"
	"iter"
)

type singlyNode struct {
	value int
	next  *singlyNode
}

// Singly is a forward-only linked list of ints.
// The zero value is an empty list ready to use.
type Singly struct {
	head *singlyNode
	size int
}

func NewSingly() *Singly {
	return &Singly{}
}

func (list *Singly) Len() int {
	return list.size
}

// InsertFirst links value in front of the current head.
func (list *Singly) InsertFirst(value int) {
	list.head = &singlyNode{value: value, next: list.head}
	list.size++
}

// Append links value after the last node. O(n), the list keeps no tail.
func (list *Singly) Append(value int) {
	node := &singlyNode{value: value}
	list.size++
	if list.head == nil {
		list.head = node
		return
	}
	last := list.head
	for last.next != nil {
		last = last.next
	}
	last.next = node
}

// AppendAt inserts value by position. Index 0 makes value the new head and
// index Len() appends it. For any index in between the new node is linked
// after the node currently at that index, so it lands at index+1.
// Indexes outside [0, Len()] leave the list untouched.
func (list *Singly) AppendAt(index int, value int) Outcome {
	if index < 0 || index > list.size {
		return OutOfRange
	}
	if index == list.size {
		list.Append(value)
		return Inserted
	}
	if index == 0 {
		list.InsertFirst(value)
		return Inserted
	}

	current := list.head
	for steps := 0; current.next != nil && steps < index; steps++ {
		current = current.next
	}
	current.next = &singlyNode{value: value, next: current.next}
	list.size++
	return Inserted
}

// All yields the values from head to the end of the list.
func (list *Singly) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for node := list.head; node != nil; node = node.next {
			if !yield(node.value) {
				return
			}
		}
	}
}

// Render writes one value per line, then a "size -> N" line.
func (list *Singly) Render(w io.Writer) error {
	if err := renderLines(w, list.All()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "size -> %d\n", list.size)
	return err
}

func (list *Singly) String() string {
	return format(list.All())
}
