package quicksort

import (
	"go.uber.org/atomic"
)

// Observer is notified of every step a Sorter takes. All indices are
// absolute offsets into the slice being sorted. Observers are called
// synchronously from the sorting goroutine and must not touch the slice.
type Observer interface {
	// Enter is called before the range [lo, hi) is partitioned. The whole
	// slice is at depth 1.
	Enter(lo, hi, depth int)

	// Compare is called when the element at index i is compared against the
	// pivot, which sits at index pivot for the duration of the scan.
	Compare(i, pivot int)

	// Swap is called before the elements at i and j are exchanged. Swaps with
	// i == j are reported too.
	Swap(i, j int)
}

// Swap is one recorded element exchange.
type Swap struct {
	I int
	J int
}

// Trace records the exact sequence of swaps performed by a sort, which
// makes runs comparable against a reference trace. It is not safe for
// concurrent use.
type Trace struct {
	Swaps       []Swap
	Comparisons int
	Partitions  int
}

var _ Observer = (*Trace)(nil)

func (t *Trace) Enter(_, _, _ int) {
	t.Partitions++
}

func (t *Trace) Compare(_, _ int) {
	t.Comparisons++
}

func (t *Trace) Swap(i, j int) {
	t.Swaps = append(t.Swaps, Swap{I: i, J: j})
}

// Reset clears the trace so it can be reused.
func (t *Trace) Reset() {
	t.Swaps = t.Swaps[:0]
	t.Comparisons = 0
	t.Partitions = 0
}

// Counter aggregates counts across any number of sorts. It is safe to
// share one Counter between sorters running on different goroutines.
type Counter struct {
	partitions  atomic.Int64
	comparisons atomic.Int64
	swaps       atomic.Int64
	maxDepth    atomic.Int64
}

var _ Observer = (*Counter)(nil)

func (c *Counter) Enter(_, _, depth int) {
	c.partitions.Inc()

	d := int64(depth)

	for {
		cur := c.maxDepth.Load()
		if d <= cur || c.maxDepth.CompareAndSwap(cur, d) {
			return
		}
	}
}

func (c *Counter) Compare(_, _ int) {
	c.comparisons.Inc()
}

func (c *Counter) Swap(_, _ int) {
	c.swaps.Inc()
}

// Partitions returns how many ranges have been partitioned.
func (c *Counter) Partitions() int64 {
	return c.partitions.Load()
}

// Comparisons returns how many pivot comparisons have been made.
func (c *Counter) Comparisons() int64 {
	return c.comparisons.Load()
}

// Swaps returns how many swaps have been made.
func (c *Counter) Swaps() int64 {
	return c.swaps.Load()
}

// MaxDepth returns the deepest recursion level seen so far.
func (c *Counter) MaxDepth() int64 {
	return c.maxDepth.Load()
}

type multiObserver []Observer

func (m multiObserver) Enter(lo, hi, depth int) {
	for _, o := range m {
		o.Enter(lo, hi, depth)
	}
}

func (m multiObserver) Compare(i, pivot int) {
	for _, o := range m {
		o.Compare(i, pivot)
	}
}

func (m multiObserver) Swap(i, j int) {
	for _, o := range m {
		o.Swap(i, j)
	}
}

// Observers fans every notification out to each of the given observers,
// in order. Nil observers are skipped.
func Observers(observers ...Observer) Observer { //nolint:ireturn
	out := make(multiObserver, 0, len(observers))

	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}

	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}
