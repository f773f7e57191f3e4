//go:build !assertions_disabled

package assert

import (
	"fmt"
)

// Enabled reports whether checks are compiled in.
const Enabled = true

// True panics unless value is true.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	first := args[0]
	remaining := args[1:]

	if firstStr, ok := first.(string); ok {
		panic(fmt.Sprintf(firstStr, remaining...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// False panics unless value is false.
// The optional args are passed to True and follow the same formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// InRange panics unless lo <= i < hi.
func InRange(i, lo, hi int) {
	if i < lo || i >= hi {
		panic(fmt.Sprintf("index %d outside of [%d, %d)", i, lo, hi))
	}
}
