package listclient

import (
	"fmt"

	"github.com/SystemBuilders/SortList/internal/routing"
)

// RequestError is a failure reported by the node. It unwraps to
// the sentinel error of its kind.
type RequestError struct {
	StatusCode int
	Response   routing.ErrorResponse
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Response.Kind, e.Response.Error)
}

// Unwrap returns the sentinel error of the reported kind.
func (e *RequestError) Unwrap() error {
	return routing.ErrorOf(e.Response.Kind)
}
