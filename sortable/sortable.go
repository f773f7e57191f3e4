// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/amp-quicksort/compare"
)

// Sortable is a value that knows how to order itself against another value
// of the same type. LessThan must be a strict weak order consistent with
// Equals: for any a and b exactly one of a.LessThan(b), b.LessThan(a) and
// a.Equals(b) holds.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare adapts a Sortable to a three-way comparator, so Sortable values can
// be handed to anything that takes a compare.Func.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case a.Equals(b):
		return 0
	default:
		return 1
	}
}
