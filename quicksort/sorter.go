package quicksort

import (
	"cmp"

	"github.com/amp-labs/amp-quicksort/sortable"
)

// Sorter is a configured, reusable quicksort. The zero value is not usable;
// build one with New, NewFunc or NewSortable.
type Sorter[T any] struct {
	le       func(a, b T) bool
	observer Observer
	name     string
}

// Option configures a Sorter.
type Option func(*options)

type options struct {
	observers []Observer
	name      string
}

// WithObserver attaches an observer to the Sorter. It may be given more
// than once; observers are notified in the order they were added.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observers = append(opts.observers, o)
	}
}

// WithName names the Sorter and turns on Prometheus metrics for it, using
// the name as the "sorter" label.
func WithName(name string) Option {
	return func(opts *options) {
		opts.name = name
	}
}

// New returns a Sorter for built-in ordered types.
func New[T cmp.Ordered](opts ...Option) *Sorter[T] {
	return newSorter(lessOrEqual[T], opts)
}

// NewFunc returns a Sorter that orders elements using cmp.
func NewFunc[T any](cmp func(a, b T) int, opts ...Option) *Sorter[T] {
	return newSorter(lessOrEqualFunc(cmp), opts)
}

// NewSortable returns a Sorter for types that carry their own ordering.
func NewSortable[T sortable.Sortable[T]](opts ...Option) *Sorter[T] {
	return newSorter(lessOrEqualSortable[T], opts)
}

func newSorter[T any](le func(a, b T) bool, opts []Option) *Sorter[T] {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return &Sorter[T]{
		le:       le,
		observer: Observers(o.observers...),
		name:     o.name,
	}
}

// Name returns the name given with WithName, or the empty string.
func (s *Sorter[T]) Name() string {
	return s.name
}

// Sort sorts data in place.
func (s *Sorter[T]) Sort(data []T) {
	p := newPass(data, s.le, s.observer)
	p.sort()

	if s.name != "" {
		recordSort(s.name, len(data), p.comparisons, p.swaps, p.maxDepth)
	}
}

// Partition partitions data around its middle element and returns the
// pivot's final index, exactly like the package level Partition.
func (s *Sorter[T]) Partition(data []T) int {
	if len(data) < 2 { //nolint:mnd
		return 0
	}

	return newPass(data, s.le, s.observer).partition(0, len(data))
}
