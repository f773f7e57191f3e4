// Package quicksort provides an in-place, recursive quicksort.
//
// # Algorithm
//
// Every range of two or more elements is partitioned Lomuto-style around
// the element at its middle index (len/2). The pivot is swapped to the end
// of the range, every element that compares less than or equal to it is
// moved to the front, and finally the pivot is swapped into its resting
// place. The two ranges on either side of the pivot are then sorted
// recursively. Ranges of zero or one element are left alone.
//
// The sort is not stable, allocates nothing, and mutates the caller's
// slice only through element swaps. Average cost is O(n log n); the pivot
// rule is deterministic and there is no worst-case mitigation, so
// adversarial inputs and inputs with many duplicates of the pivot can
// degrade to O(n^2).
//
// # Usage
//
//	data := []int{5, 2, 9, 1, 5, 6}
//	quicksort.Sort(data) // [1 2 5 5 6 9]
//
// Custom orderings go through SortFunc (a slices.SortFunc style
// comparator) or SortSortable (types implementing sortable.Sortable):
//
//	quicksort.SortFunc(names, compare.Natural)
//
// # Observing a sort
//
// A Sorter built with WithObserver reports every pivot comparison and
// every swap, with absolute indices into the caller's slice, in the order
// they happen. Trace records the swap sequence so that it can be compared
// against a reference; Counter aggregates counts and is safe to share.
// A Sorter built WithName also records Prometheus metrics.
//
// # Thread Safety
//
// The caller must not read or write the slice from another goroutine while
// a sort is running. Sorter values themselves hold no per-call state and
// may be shared.
package quicksort
