package quicksort

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		before         []int
		after          []int
		notSorted      bool
		notPermutation bool
	}{
		{name: "valid", before: []int{5, 2, 9, 1, 5, 6}, after: []int{1, 2, 5, 5, 6, 9}},
		{name: "empty", before: []int{}, after: []int{}},
		{name: "unsorted", before: []int{2, 1}, after: []int{2, 1}, notSorted: true},
		{name: "element dropped", before: []int{3, 1, 2}, after: []int{1, 2}, notPermutation: true},
		{name: "element changed", before: []int{3, 1, 2}, after: []int{1, 2, 4}, notPermutation: true},
		{name: "duplicate lost", before: []int{1, 1, 2}, after: []int{1, 2, 2}, notPermutation: true},
		{
			name:           "both",
			before:         []int{1, 2, 3},
			after:          []int{3, 2, 2},
			notSorted:      true,
			notPermutation: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Verify(tt.before, tt.after)

			if !tt.notSorted && !tt.notPermutation {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.notSorted, errors.Is(err, ErrNotSorted))
			assert.Equal(t, tt.notPermutation, errors.Is(err, ErrNotPermutation))
		})
	}
}

func TestVerify_DoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	before := []int{3, 1, 2}
	after := []int{2, 1, 3}

	_ = Verify(before, after)

	assert.Equal(t, []int{3, 1, 2}, before)
	assert.Equal(t, []int{2, 1, 3}, after)
}
