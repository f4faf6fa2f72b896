package routing

// CreateRequest is the body of a list creation.
type CreateRequest struct {
	Order   string `json:"order"`
	Display bool   `json:"display"`
	Limit   int    `json:"limit,omitempty"`
}

// CreateResponse carries the ID of a new list.
type CreateResponse struct {
	ID string `json:"id"`
}

// IDsResponse lists the IDs of the live lists.
type IDsResponse struct {
	IDs []string `json:"ids"`
}

// ListResponse describes the content of a list.
type ListResponse struct {
	ID     string   `json:"id"`
	Length int      `json:"length"`
	Values []string `json:"values"`
}

// InsertRequest is the body of an insertion. Without a position
// the element is inserted in list order, otherwise it is inserted
// at that position.
type InsertRequest struct {
	Element  string `json:"element"`
	Position *int   `json:"position,omitempty"`
}

// ElementResponse carries an element and the position it was read
// from or removed at.
type ElementResponse struct {
	Position int    `json:"position"`
	Element  string `json:"element"`
}

// ErrorResponse is the body of every failed request. Kind names
// the error and the offending parameter is echoed back.
type ErrorResponse struct {
	Error    string  `json:"error"`
	Kind     string  `json:"kind"`
	Position *int    `json:"position,omitempty"`
	Element  *string `json:"element,omitempty"`
}
