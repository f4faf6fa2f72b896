package list

// Node is the single entity of the list. It holds one element
// and the link to the next node.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Value returns the element held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns the node following this one, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
