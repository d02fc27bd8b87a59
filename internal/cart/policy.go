package cart

import (
	"math"
	"strconv"
	"strings"
)

// ParseQuantity is the single choke point for quantity input arriving
// from free-text controls.
//
// The raw value is parsed numerically; fractional values are floored
// (2.7 becomes 2). Any result that is not a finite integer >= 1 —
// non-numeric text, zero, negatives, NaN, infinities — returns ok=false.
//
// ParseQuantity never returns an error: invalid input degrades to
// removal semantics at the call site (UpdateQuantity with quantity 0).
func ParseQuantity(raw string) (quantity int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 1 {
			return 0, false
		}
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	n := int(math.Floor(f))
	if n < 1 {
		return 0, false
	}
	return n, true
}
