//go:build !assertions_disabled

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { True(true) })
	assert.PanicsWithValue(t, "assertion failed", func() { True(false) })
	assert.PanicsWithValue(t, "bad index 7", func() { True(false, "bad index %d", 7) })
	assert.PanicsWithValue(t, "assertion failed: [42 x]", func() { True(false, 42, "x") })
}

func TestFalse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { False(false) })
	assert.PanicsWithValue(t, "should be false", func() { False(true, "should be false") })
}

func TestInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, Enabled)
	assert.NotPanics(t, func() { InRange(0, 0, 1) })
	assert.NotPanics(t, func() { InRange(4, 2, 5) })
	assert.PanicsWithValue(t, "index 5 outside of [2, 5)", func() { InRange(5, 2, 5) })
	assert.PanicsWithValue(t, "index -1 outside of [0, 3)", func() { InRange(-1, 0, 3) })
}
