package liststore

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/SystemBuilders/SortList/internal/list"
)

// Order names the comparator a list is created with.
type Order string

// These are the supported orders.
const (
	// Unordered lists have no comparator, only positional
	// operations are available on them.
	Unordered Order = "none"
	// Numeric lists compare elements as floating point numbers.
	Numeric Order = "numeric"
	// Lexical lists compare elements byte-wise.
	Lexical Order = "lexical"
)

// ParseOrder returns the Order named by s. An empty string
// means Unordered.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return Unordered, nil
	case Unordered, Numeric, Lexical:
		return o, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidOrder)
}

// comparator returns the list comparator of the order, nil for Unordered.
func (o Order) comparator() list.Comparator[string] {
	switch o {
	case Numeric:
		return compareNumeric
	case Lexical:
		return list.Ordered[string]()
	}
	return nil
}

// validate rejects elements the order can't compare.
func (o Order) validate(element string) error {
	if o != Numeric {
		return nil
	}
	f, err := strconv.ParseFloat(element, 64)
	if err != nil || math.IsNaN(f) {
		return fmt.Errorf("%q is not a number: %w", element, ErrInvalidElement)
	}
	return nil
}

// compareNumeric expects elements that passed Numeric.validate.
func compareNumeric(a, b string) list.Ordering {
	x, _ := strconv.ParseFloat(a, 64)
	y, _ := strconv.ParseFloat(b, 64)
	switch {
	case x < y:
		return list.Less
	case x > y:
		return list.Greater
	}
	return list.Equal
}

func printElement(w io.Writer, v string) error {
	_, err := io.WriteString(w, v)
	return err
}
