package sortable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(1).LessThan(2))
	assert.False(t, Int(2).LessThan(1))
	assert.False(t, Int(2).LessThan(2))
	assert.True(t, Int(-3).Equals(-3))
	assert.False(t, Int(3).Equals(4))
}

func TestByte(t *testing.T) {
	t.Parallel()

	assert.True(t, Byte('a').LessThan('b'))
	assert.False(t, Byte('b').LessThan('a'))
	assert.True(t, Byte('z').Equals('z'))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, String("apple").LessThan("banana"))
	assert.True(t, String("Zebra").LessThan("apple"))
	assert.True(t, String("").Equals(""))
	assert.False(t, String("a").Equals("A"))
}

func TestFloat(t *testing.T) {
	t.Parallel()

	assert.True(t, Float(-0.5).LessThan(0.25))
	assert.True(t, Float(0).Equals(Float(math.Copysign(0, -1))))

	nan := Float(math.NaN())
	assert.False(t, nan.LessThan(1))
	assert.False(t, Float(1).LessThan(nan))
	assert.False(t, nan.Equals(nan))
}

func TestNatural(t *testing.T) {
	t.Parallel()

	assert.True(t, Natural("v2").LessThan("v10"))
	assert.False(t, Natural("v10").LessThan("v2"))
	assert.True(t, String("v10").LessThan("v2"), "byte order disagrees with natural order")
	assert.True(t, Natural("v1").Equals("v1"))
	assert.False(t, Natural("v1").LessThan("v1"))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        Int
		b        Int
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "equal", a: 7, b: 7, expected: 0},
		{name: "greater", a: 9, b: -9, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}

	assert.Equal(t, -1, Compare(Natural("file9"), Natural("file10")))
}
