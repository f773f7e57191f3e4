package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type account struct {
	ID   int
	Name string
}

func (a account) Equals(other account) bool {
	return a.ID == other.ID
}

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        account
		b        account
		expected bool
	}{
		{name: "same id and name", a: account{1, "a"}, b: account{1, "a"}, expected: true},
		{name: "same id, different name", a: account{1, "a"}, b: account{1, "b"}, expected: true},
		{name: "different id", a: account{1, "a"}, b: account{2, "a"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equals[account](tt.a, tt.b))
			assert.Equal(t, tt.expected, tt.b.Equals(tt.a))
		})
	}
}
