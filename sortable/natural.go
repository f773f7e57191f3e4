package sortable

import (
	"github.com/amp-labs/amp-quicksort/compare"
)

// Natural is a string that sorts in natural (human) order: digits embedded in
// the string compare by numeric value, so "v2" comes before "v10".
//
// Example:
//
//	versions := []sortable.Natural{"v10", "v2", "v1"}
//	quicksort.SortSortable(versions)
//	// versions is now [v1 v2 v10]
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

func (n Natural) LessThan(other Natural) bool {
	return compare.Natural(string(n), string(other)) < 0
}
