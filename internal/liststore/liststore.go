package liststore

// Store describes a component holding any number of lists of
// string elements, addressed by ID. Every operation on one list
// is serialized with the other operations on the same list, so
// a store can be shared by any number of goroutines.
//
// Positions are 1-based, exactly as in the underlying lists.
type Store interface {
	// Create makes a new empty list and returns its ID.
	// The order decides how elements compare, display turns
	// the printer on and limit caps the number of elements
	// (zero for no cap, negative limits are rejected).
	Create(order Order, display bool, limit int) (string, error)
	// Destroy releases the list and forgets its ID.
	Destroy(id string) error
	// IDs returns the IDs of every live list, oldest first.
	IDs() []string

	// ElementAt returns the element at the position.
	ElementAt(id string, position int) (string, error)
	// InsertAt inserts the element at the position.
	InsertAt(id string, position int, element string) error
	// RemoveAt removes and returns the element at the position.
	RemoveAt(id string, position int) (string, error)
	// RemoveValue removes the first element equal to the given one.
	RemoveValue(id, element string) error
	// Insert adds the element in list order.
	Insert(id, element string) error
	// Find locates the first element equal to the given one.
	Find(id, element string) (FindResult, error)

	// Display renders the list as text.
	Display(id string) (string, error)
	// Length returns the number of elements in the list.
	Length(id string) (int, error)
	// Values returns the elements of the list, head to tail.
	Values(id string) ([]string, error)
}

// FindResult is the outcome of Store.Find.
type FindResult struct {
	Found  bool `json:"found"`
	AtHead bool `json:"atHead"`
	// Predecessor is the element right before the first match.
	// It is empty when the match is at the head.
	Predecessor string `json:"predecessor"`
}
