package routing

import (
	"errors"
	"net/http"

	"github.com/SystemBuilders/SortList/internal/list"
	"github.com/SystemBuilders/SortList/internal/liststore"
)

// Error provides constant error strings to the handlers.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrBadRequest = Error("malformed request")
	ErrInternal   = Error("internal error")
)

// kinds maps every error kind surfaced over HTTP to its sentinel
// and status code.
var kinds = []struct {
	name   string
	err    error
	status int
}{
	{"IndexOutOfRange", list.ErrIndexOutOfRange, http.StatusBadRequest},
	{"NotFound", list.ErrNotFound, http.StatusNotFound},
	{"OperationUnavailable", list.ErrOperationUnavailable, http.StatusConflict},
	{"OutOfMemory", list.ErrOutOfMemory, http.StatusInsufficientStorage},
	{"Destroyed", list.ErrDestroyed, http.StatusGone},
	{"UnknownList", liststore.ErrUnknownList, http.StatusNotFound},
	{"InvalidElement", liststore.ErrInvalidElement, http.StatusBadRequest},
	{"InvalidOrder", liststore.ErrInvalidOrder, http.StatusBadRequest},
	{"InvalidLimit", liststore.ErrInvalidLimit, http.StatusBadRequest},
	{"BadRequest", ErrBadRequest, http.StatusBadRequest},
}

// KindOf returns the kind name of err and its status code.
func KindOf(err error) (string, int) {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name, k.status
		}
	}
	return "Internal", http.StatusInternalServerError
}

// ErrorOf returns the sentinel error of a kind name, ErrInternal
// for names it doesn't know.
func ErrorOf(kind string) error {
	for _, k := range kinds {
		if k.name == kind {
			return k.err
		}
	}
	return ErrInternal
}
