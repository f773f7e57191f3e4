package quicksort

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	amperrors "github.com/amp-labs/amp-quicksort/errors"
)

var (
	// ErrNotSorted is returned by Verify when the result is out of order.
	ErrNotSorted = errors.New("sequence is not sorted")

	// ErrNotPermutation is returned by Verify when the result does not hold
	// the same multiset of elements as the input.
	ErrNotPermutation = errors.New("sequence is not a permutation of the input")
)

// Verify checks that after is a sorted permutation of before. Both
// problems are reported when both are present. Neither slice is modified.
func Verify[T cmp.Ordered](before, after []T) error {
	var errs amperrors.Collection

	for i := 1; i < len(after); i++ {
		if after[i] < after[i-1] {
			errs.Add(fmt.Errorf("%w: element %d (%v) is less than element %d (%v)",
				ErrNotSorted, i, after[i], i-1, after[i-1]))

			break
		}
	}

	errs.Add(checkPermutation(before, after))

	return errs.GetError()
}

func checkPermutation[T cmp.Ordered](before, after []T) error {
	if len(before) != len(after) {
		return fmt.Errorf("%w: length changed from %d to %d", ErrNotPermutation, len(before), len(after))
	}

	want := slices.Sorted(slices.Values(before))
	got := slices.Sorted(slices.Values(after))

	for i := range want {
		if cmp.Compare(want[i], got[i]) != 0 {
			return fmt.Errorf("%w: expected %v at sorted position %d, found %v",
				ErrNotPermutation, want[i], i, got[i])
		}
	}

	return nil
}
