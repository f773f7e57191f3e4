package sortable

// Float is a sortable wrapper type for float64. NaN is neither less than nor
// equal to anything, so slices holding NaN have no defined sorted order.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	return float64(f) == float64(other)
}

func (f Float) LessThan(other Float) bool {
	return float64(f) < float64(other)
}
