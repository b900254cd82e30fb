package runner

import (
	"errors"
	"fmt"
	"io"
	"linklist/list"
	"linklist/script"
)

type Kind string

const (
	Singly   Kind = "singly"
	Doubly   Kind = "doubly"
	Circular Kind = "circular"
)

// Kinds lists every list kind in output order.
var Kinds = []Kind{Singly, Doubly, Circular}

var errUnsupported = errors.New("unsupported operation")

// target adapts one list kind to script operations.
type target interface {
	fmt.Stringer
	Len() int
	mutate(op script.Op) (list.Outcome, error)
	render(out io.Writer) error
	renderReverse(out io.Writer) error
}

func newTarget(kind Kind) (target, error) {
	switch kind {
	case Singly:
		return &singlyTarget{list.NewSingly()}, nil
	case Doubly:
		return &doublyTarget{list.NewDoubly()}, nil
	case Circular:
		return &circularTarget{list.NewCircular()}, nil
	}
	return nil, fmt.Errorf("unknown list kind '%v'", kind)
}

type singlyTarget struct {
	*list.Singly
}

func (t *singlyTarget) mutate(op script.Op) (list.Outcome, error) {
	switch op.Name {
	case script.InsertFirst:
		t.InsertFirst(op.Args[0])
		return list.Inserted, nil
	case script.Append:
		t.Append(op.Args[0])
		return list.Inserted, nil
	case script.AppendAt:
		return t.AppendAt(op.Args[0], op.Args[1]), nil
	}
	return 0, errUnsupported
}

func (t *singlyTarget) render(out io.Writer) error {
	return t.Render(out)
}

func (t *singlyTarget) renderReverse(io.Writer) error {
	return errUnsupported
}

type doublyTarget struct {
	*list.Doubly
}

func (t *doublyTarget) mutate(op script.Op) (list.Outcome, error) {
	switch op.Name {
	case script.InsertFirst:
		t.InsertFirst(op.Args[0])
		return list.Inserted, nil
	case script.Append:
		t.Append(op.Args[0])
		return list.Inserted, nil
	}
	return 0, errUnsupported
}

func (t *doublyTarget) render(out io.Writer) error {
	return t.Render(out)
}

func (t *doublyTarget) renderReverse(out io.Writer) error {
	return t.RenderReverse(out)
}

type circularTarget struct {
	*list.Circular
}

func (t *circularTarget) mutate(op script.Op) (list.Outcome, error) {
	switch op.Name {
	case script.Append:
		t.Append(op.Args[0])
		return list.Inserted, nil
	case script.Delete:
		return t.Delete(op.Args[0]), nil
	}
	return 0, errUnsupported
}

func (t *circularTarget) render(out io.Writer) error {
	return t.Render(out)
}

func (t *circularTarget) renderReverse(io.Writer) error {
	return errUnsupported
}
