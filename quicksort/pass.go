package quicksort

import (
	"github.com/amp-labs/amp-quicksort/assert"
)

// pass holds the state of a single top-level sort call. Ranges are
// half-open [lo, hi) offsets into data, so every index handed to the
// observer is absolute.
type pass[T any] struct {
	data     []T
	le       func(a, b T) bool
	observer Observer

	comparisons int
	swaps       int
	maxDepth    int
}

func newPass[T any](data []T, le func(a, b T) bool, observer Observer) *pass[T] {
	return &pass[T]{
		data:     data,
		le:       le,
		observer: observer,
	}
}

func (p *pass[T]) sort() {
	p.sortRange(0, len(p.data), 1)
}

func (p *pass[T]) sortRange(lo, hi, depth int) {
	if hi-lo <= 1 {
		return
	}

	if depth > p.maxDepth {
		p.maxDepth = depth
	}

	if p.observer != nil {
		p.observer.Enter(lo, hi, depth)
	}

	mid := p.partition(lo, hi)

	p.sortRange(lo, mid, depth+1)
	p.sortRange(mid+1, hi, depth+1)
}

// partition requires hi-lo >= 2.
func (p *pass[T]) partition(lo, hi int) int {
	last := hi - 1

	p.swap(lo+(hi-lo)/2, last)

	pivot := p.data[last]
	boundary := lo

	for j := lo; j < last; j++ {
		p.comparisons++

		if p.observer != nil {
			p.observer.Compare(j, last)
		}

		if p.le(p.data[j], pivot) {
			p.swap(boundary, j)
			boundary++
		}
	}

	p.swap(boundary, last)

	assert.InRange(boundary, lo, hi)

	return boundary
}

func (p *pass[T]) swap(i, j int) {
	assert.InRange(i, 0, len(p.data))
	assert.InRange(j, 0, len(p.data))

	p.swaps++

	if p.observer != nil {
		p.observer.Swap(i, j)
	}

	p.data[i], p.data[j] = p.data[j], p.data[i]
}
