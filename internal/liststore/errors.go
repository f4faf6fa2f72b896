package liststore

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrUnknownList    = Error("list doesn't exist in the store")
	ErrInvalidElement = Error("element is not valid for the list order")
	ErrInvalidOrder   = Error("unknown list order")
	ErrInvalidLimit   = Error("list limit can't be negative")
)
