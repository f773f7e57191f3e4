// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so that slices of them can be sorted by their own
// ordering.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float], [String]
// and [Natural]. Slices of these types can be sorted in place with
// [github.com/amp-labs/amp-quicksort/quicksort.SortSortable].
//
// The Sortable interface extends [github.com/amp-labs/amp-quicksort/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// [Compare] turns any Sortable into a three-way comparator.
//
// # Usage
//
// Use the provided wrapper types when a slice should carry its own ordering:
//
//	values := []sortable.Int{42, 10, 25}
//	quicksort.SortSortable(values)
//
//	// values is now [10 25 42]
//	for _, val := range values {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// # Consistency
//
// Sorting relies on LessThan and Equals agreeing with each other. A type
// whose ordering is not transitive (or a [Float] holding NaN) still sorts
// without panicking, but the resulting order is unspecified.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently thread-safe
// for read operations. Sorting a slice of them mutates the slice, which needs
// external synchronization if it is shared.
package sortable
