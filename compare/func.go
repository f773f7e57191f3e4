package compare

import (
	"cmp"

	"facette.io/natsort"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Func is a three-way comparator: negative when a < b, zero when a == b and
// positive when a > b. It is the shape expected by slices.SortFunc and
// quicksort.SortFunc.
type Func[T any] func(a, b T) int

// Reverse returns a comparator that orders elements the opposite way.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// By returns a comparator that orders elements by the key extracted from each.
//
// Example:
//
//	byAge := compare.By(func(p Person) int { return p.Age })
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Natural compares strings in natural (human) order, so that embedded
// numbers compare by value: "file2" sorts before "file10". Strings the
// natural order considers equal, such as "a01" and "a1", fall back to
// byte order so the result is a total order.
func Natural(a, b string) int {
	if a == b {
		return 0
	}

	less := natsort.Compare(a, b)
	greater := natsort.Compare(b, a)

	switch {
	case less && !greater:
		return -1
	case greater && !less:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// Collated returns a comparator that orders strings by the collation rules
// of the given language. The returned comparator holds a collator with
// internal buffers and must not be used from more than one goroutine at a
// time.
//
// Example:
//
//	quicksort.SortFunc(words, compare.Collated(language.Swedish))
func Collated(tag language.Tag, opts ...collate.Option) Func[string] {
	c := collate.New(tag, opts...)

	return c.CompareString
}
