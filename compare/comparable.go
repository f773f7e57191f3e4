// Package compare provides equality and ordering comparators. Comparators
// built here plug into quicksort.SortFunc and slices.SortFunc alike.
package compare

// Comparable is implemented by types that decide their own equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// EqualFunc adapts a three-way comparator into an equality test.
func EqualFunc[T any](f Func[T]) func(a, b T) bool {
	return func(a, b T) bool {
		return f(a, b) == 0
	}
}
