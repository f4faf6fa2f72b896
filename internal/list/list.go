package list

import (
	"fmt"
	"io"
)

// Assert that *List implements Sequence.
var _ Sequence[int] = (*List[int])(nil)

// List is a singly linked list with 1-based positions.
//
// The list owns every node in its chain: nodes are created
// by the insert operations only and released by the remove
// operations or by Destroy. The count is kept in step with
// the chain so Length is O(1).
//
// The comparator and the printer are both optional. Without
// a comparator the value based operations (Insert, RemoveValue
// and Find) fail with ErrOperationUnavailable, and without a
// printer so does Display. Positional operations never need
// either of them.
//
// List is not safe for concurrent use.
type List[T any] struct {
	head      *Node[T]
	count     int
	limit     int
	destroyed bool
	compare   Comparator[T]
	print     Printer[T]
}

// Option configures a List.
type Option func(*settings)

type settings struct {
	limit int
}

// WithLimit caps the number of nodes the list may hold. Inserting
// beyond the cap fails with ErrOutOfMemory. A limit of zero or less
// means no cap.
func WithLimit(n int) Option {
	return func(s *settings) {
		s.limit = n
	}
}

// New returns a new, empty list. Either capability may be nil.
func New[T any](compare Comparator[T], pr Printer[T], opts ...Option) *List[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return &List[T]{
		compare: compare,
		print:   pr,
		limit:   s.limit,
	}
}

// Destroy unlinks every node from head to tail and leaves the
// list unusable. Calling it on an empty or an already destroyed
// list is fine.
func (l *List[T]) Destroy() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.count = 0
	l.compare = nil
	l.print = nil
	l.destroyed = true
}

// ElementAt returns the element at the given position.
func (l *List[T]) ElementAt(position int) (T, error) {
	var zero T
	if l.destroyed {
		return zero, ErrDestroyed
	}
	if position < 1 || position > l.count {
		return zero, outOfRange("element at", position, l.count)
	}
	return l.nodeAt(position).value, nil
}

// InsertAt inserts the element so that it becomes the element at
// the given position. Every element previously at or after that
// position moves one place later. Position Length()+1 appends.
func (l *List[T]) InsertAt(position int, element T) error {
	if l.destroyed {
		return ErrDestroyed
	}
	if position < 1 || position > l.count+1 {
		return outOfRange("insert at", position, l.count+1)
	}
	n, err := l.newNode(element)
	if err != nil {
		return fmt.Errorf("insert at %d: %w", position, err)
	}
	if position == 1 {
		n.next = l.head
		l.head = n
	} else {
		prev := l.nodeAt(position - 1)
		n.next = prev.next
		prev.next = n
	}
	l.count++
	return nil
}

// RemoveAt removes and returns the element at the given position.
// Every element after it moves one place earlier.
func (l *List[T]) RemoveAt(position int) (T, error) {
	var zero T
	if l.destroyed {
		return zero, ErrDestroyed
	}
	if position < 1 || position > l.count {
		return zero, outOfRange("remove at", position, l.count)
	}
	var prev *Node[T]
	if position > 1 {
		prev = l.nodeAt(position - 1)
	}
	return l.unlink(prev), nil
}

// RemoveValue removes the first element, in head to tail order,
// that compares equal to the given one. Later equal elements
// stay in the list.
func (l *List[T]) RemoveValue(element T) error {
	if l.destroyed {
		return ErrDestroyed
	}
	if l.compare == nil {
		return fmt.Errorf("remove value: no comparator: %w", ErrOperationUnavailable)
	}
	prev, match := l.find(element)
	if match == nil {
		return fmt.Errorf("remove value %v: %w", element, ErrNotFound)
	}
	l.unlink(prev)
	return nil
}

// Insert adds the element right before the first element that
// compares greater than it, or at the tail if there is none.
// An element equal to existing ones lands after all of them.
func (l *List[T]) Insert(element T) error {
	if l.destroyed {
		return ErrDestroyed
	}
	if l.compare == nil {
		return fmt.Errorf("insert: no comparator: %w", ErrOperationUnavailable)
	}
	n, err := l.newNode(element)
	if err != nil {
		return fmt.Errorf("insert %v: %w", element, err)
	}
	var prev *Node[T]
	cur := l.head
	for cur != nil && l.order(cur.value, element) != Greater {
		prev = cur
		cur = cur.next
	}
	n.next = cur
	if prev == nil {
		l.head = n
	} else {
		prev.next = n
	}
	l.count++
	return nil
}

// Find locates the first element comparing equal to the given
// one. A match at the head has no predecessor and is reported
// as AtHead; any other match carries its predecessor node.
func (l *List[T]) Find(element T) (Position[T], error) {
	if l.destroyed {
		return Position[T]{}, ErrDestroyed
	}
	if l.compare == nil {
		return Position[T]{}, fmt.Errorf("find: no comparator: %w", ErrOperationUnavailable)
	}
	prev, match := l.find(element)
	switch {
	case match == nil:
		return Position[T]{Kind: Absent}, nil
	case prev == nil:
		return Position[T]{Kind: AtHead}, nil
	default:
		return Position[T]{Kind: AfterNode, Pred: prev}, nil
	}
}

// ForEach applies visit to every element from head to tail.
// A nil visitor does nothing.
func (l *List[T]) ForEach(visit Visitor[T]) {
	if visit == nil {
		return
	}
	for n := l.head; n != nil; n = n.next {
		visit(n.value)
	}
}

// Display writes the elements as "[ e1 e2 ... eN ]", rendering
// each one with the printer. Nothing is written for an empty list.
func (l *List[T]) Display(w io.Writer) error {
	if l.destroyed {
		return ErrDestroyed
	}
	if l.print == nil {
		return fmt.Errorf("display: no printer: %w", ErrOperationUnavailable)
	}
	if l.head == nil {
		return nil
	}
	if _, err := io.WriteString(w, "[ "); err != nil {
		return err
	}
	for n := l.head; n != nil; n = n.next {
		if err := l.print(w, n.value); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]")
	return err
}

// Length returns the number of elements in the list.
func (l *List[T]) Length() int {
	return l.count
}

// Values returns the elements from head to tail in a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	l.ForEach(func(v T) {
		values = append(values, v)
	})
	return values
}

func (l *List[T]) newNode(element T) (*Node[T], error) {
	if l.limit > 0 && l.count >= l.limit {
		return nil, fmt.Errorf("limit of %d nodes reached: %w", l.limit, ErrOutOfMemory)
	}
	return &Node[T]{value: element}, nil
}

// nodeAt walks to the node at position, which must be in 1..count.
func (l *List[T]) nodeAt(position int) *Node[T] {
	n := l.head
	for i := 1; i < position; i++ {
		n = n.next
	}
	return n
}

// find returns the first node comparing equal to element and its
// predecessor. Both are nil when there is no match; prev alone is
// nil when the match is the head.
func (l *List[T]) find(element T) (prev, match *Node[T]) {
	for n := l.head; n != nil; n = n.next {
		if l.order(n.value, element) == Equal {
			return prev, n
		}
		prev = n
	}
	return nil, nil
}

// unlink removes the node following prev, or the head when prev
// is nil, and returns its element.
func (l *List[T]) unlink(prev *Node[T]) T {
	var n *Node[T]
	if prev == nil {
		n = l.head
		l.head = n.next
	} else {
		n = prev.next
		prev.next = n.next
	}
	n.next = nil
	l.count--
	return n.value
}

// order compares a and b and folds the result to Less, Equal or Greater.
func (l *List[T]) order(a, b T) Ordering {
	switch o := l.compare(a, b); {
	case o < Equal:
		return Less
	case o > Equal:
		return Greater
	default:
		return Equal
	}
}

func outOfRange(op string, position, max int) error {
	return fmt.Errorf("%s: position %d not in 1..%d: %w", op, position, max, ErrIndexOutOfRange)
}
