package list

// Error provides constant error strings to the list operations.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrOutOfMemory          = Error("node allocation refused")
	ErrIndexOutOfRange      = Error("position out of range")
	ErrNotFound             = Error("element not found in the list")
	ErrOperationUnavailable = Error("operation unavailable without the required capability")
	ErrDestroyed            = Error("list has been destroyed")
)
