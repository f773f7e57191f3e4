package sortable

// String is a sortable wrapper type for string, ordered byte-wise the same
// way the < operator orders strings. Use Natural for human ordering of
// embedded numbers.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
