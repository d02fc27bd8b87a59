package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  int
		valid bool
	}{
		{"positive integer", "3", 3, true},
		{"one", "1", 1, true},
		{"large", "1000", 1000, true},
		{"leading whitespace", "  4 ", 4, true},
		{"fractional floors", "2.7", 2, true},
		{"fractional just above one", "1.01", 1, true},
		{"fractional below one", "0.9", 0, false},
		{"zero", "0", 0, false},
		{"negative", "-2", 0, false},
		{"negative fractional", "-2.5", 0, false},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"non-numeric", "abc", 0, false},
		{"mixed", "3x", 0, false},
		{"nan", "NaN", 0, false},
		{"positive infinity", "Inf", 0, false},
		{"negative infinity", "-Inf", 0, false},
		{"scientific notation", "2e1", 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantity(tt.raw)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuantity_InvalidDrivesRemoval(t *testing.T) {
	// The policy's contract with the store: invalid input maps to
	// UpdateQuantity(id, 0), which removes the line.
	s := NewStore()
	s.Add(product(1, 10.00))
	s.Add(product(1, 10.00))

	q, ok := ParseQuantity("not-a-number")
	assert.False(t, ok)
	s.UpdateQuantity(1, q)

	assert.True(t, s.Empty(), "invalid quantity input must remove the line")
}
