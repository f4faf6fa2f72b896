package list

import (
	"cmp"
	"fmt"
	"io"
)

// Ordered returns a comparator sorting elements in ascending natural order.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) Ordering {
		return Ordering(cmp.Compare(a, b))
	}
}

// Reverse returns a comparator with the opposite order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) Ordering {
		return c(b, a)
	}
}

// Sprint returns a printer rendering elements with fmt.Fprint.
func Sprint[T any]() Printer[T] {
	return func(w io.Writer, v T) error {
		_, err := fmt.Fprint(w, v)
		return err
	}
}
