package quicksort

import (
	"cmp"

	"github.com/amp-labs/amp-quicksort/sortable"
)

// Sort sorts data in place into non-decreasing order.
func Sort[T cmp.Ordered](data []T) {
	newPass(data, lessOrEqual[T], nil).sort()
}

// SortFunc sorts data in place using cmp, which must return a negative
// number when a < b, zero when a == b and a positive number when a > b.
// An inconsistent cmp leaves the order unspecified, but the call still
// terminates and never indexes outside data.
func SortFunc[T any](data []T, cmp func(a, b T) int) {
	newPass(data, lessOrEqualFunc(cmp), nil).sort()
}

// SortSortable sorts data in place using the elements' own ordering.
func SortSortable[T sortable.Sortable[T]](data []T) {
	newPass(data, lessOrEqualSortable[T], nil).sort()
}

// Partition rearranges data around the element at index len(data)/2 and
// returns the index where that pivot ends up. Every element before the
// returned index is <= the pivot; no element after it was found to be
// <= the pivot during the scan. Slices shorter than two elements are left
// untouched and 0 is returned.
func Partition[T cmp.Ordered](data []T) int {
	if len(data) < 2 { //nolint:mnd
		return 0
	}

	return newPass(data, lessOrEqual[T], nil).partition(0, len(data))
}

// PartitionFunc is Partition with a custom comparator.
func PartitionFunc[T any](data []T, cmp func(a, b T) int) int {
	if len(data) < 2 { //nolint:mnd
		return 0
	}

	return newPass(data, lessOrEqualFunc(cmp), nil).partition(0, len(data))
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}

	return true
}

// IsSortedFunc reports whether data is in non-decreasing order according to cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}

	return true
}

func lessOrEqual[T cmp.Ordered](a, b T) bool {
	return a <= b
}

func lessOrEqualFunc[T any](cmp func(a, b T) int) func(a, b T) bool {
	return func(a, b T) bool {
		return cmp(a, b) <= 0
	}
}

func lessOrEqualSortable[T sortable.Sortable[T]](a, b T) bool {
	return a.LessThan(b) || a.Equals(b)
}
