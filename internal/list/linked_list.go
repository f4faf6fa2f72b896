package list

import "io"

// Ordering is the outcome of comparing two elements.
type Ordering int

// These are the possible orderings of two elements.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Comparator imposes a total order over two elements. It must
// be consistent with itself across calls for the ordering of a
// list built with Insert to hold. Only the sign of the returned
// Ordering is considered.
type Comparator[T any] func(a, b T) Ordering

// Printer writes a textual representation of one element to w.
type Printer[T any] func(w io.Writer, v T) error

// Visitor is applied to elements during a traversal.
type Visitor[T any] func(v T)

// PositionKind tells where Find located an element.
type PositionKind int

// These are the outcomes of Find.
const (
	// Absent means no element compares equal to the searched one.
	Absent PositionKind = iota
	// AtHead means the first match is the head and has no predecessor.
	AtHead
	// AfterNode means the first match follows Position.Pred.
	AfterNode
)

func (k PositionKind) String() string {
	switch k {
	case AtHead:
		return "head"
	case AfterNode:
		return "after-node"
	default:
		return "absent"
	}
}

// Position is the result of Find.
type Position[T any] struct {
	Kind PositionKind
	// Pred is the node immediately preceding the first match.
	// It is only set when Kind is AfterNode.
	Pred *Node[T]
}

// Found reports whether the searched element is in the list.
func (p Position[T]) Found() bool {
	return p.Kind != Absent
}

// Sequence describes a 1-based ordered sequence of elements.
type Sequence[T any] interface {
	// ElementAt returns the element at the given position, which
	// must be in 1..Length().
	ElementAt(position int) (T, error)
	// InsertAt inserts the element so that it ends up at the
	// given position, which must be in 1..Length()+1.
	InsertAt(position int, element T) error
	// RemoveAt removes and returns the element at the given position.
	RemoveAt(position int) (T, error)
	// RemoveValue removes the first element comparing equal to
	// the given one. It needs a comparator.
	RemoveValue(element T) error
	// Insert adds the element in comparator order, after any
	// elements that compare equal to it. It needs a comparator.
	Insert(element T) error
	// Find locates the first element comparing equal to the given
	// one. It needs a comparator.
	Find(element T) (Position[T], error)
	// ForEach applies the visitor to every element, head to tail.
	ForEach(visit Visitor[T])
	// Display writes the elements to w using the printer.
	Display(w io.Writer) error
	// Length returns the number of elements.
	Length() int
	// Destroy releases every node. The sequence is unusable afterwards.
	Destroy()
}
