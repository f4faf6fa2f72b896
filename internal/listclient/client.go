package listclient

import "github.com/SystemBuilders/SortList/internal/liststore"

// Client describes a client that can be used to interact with
// a SortList node over HTTP.
//
// Every failure reported by the node is turned back into the
// error it started as, so errors.Is(err, list.ErrNotFound) holds
// on the client side exactly as it does on the store.
type Client interface {
	// Create makes a list on the node and returns its ID.
	Create(order liststore.Order, display bool, limit int) (string, error)
	// Destroy releases a list on the node.
	Destroy(id string) error
	// IDs returns the IDs of every list on the node.
	IDs() ([]string, error)

	// ElementAt returns the element at the 1-based position.
	ElementAt(id string, position int) (string, error)
	// InsertAt inserts the element at the 1-based position.
	InsertAt(id string, position int, element string) error
	// RemoveAt removes and returns the element at the 1-based position.
	RemoveAt(id string, position int) (string, error)
	// RemoveValue removes the first element equal to the given one.
	RemoveValue(id, element string) error
	// Insert adds the element in list order.
	Insert(id, element string) error
	// Find locates the first element equal to the given one.
	Find(id, element string) (liststore.FindResult, error)

	// Display returns the rendered list.
	Display(id string) (string, error)
	// Values returns the elements of the list, head to tail.
	Values(id string) ([]string, error)
}
