// Package checkout layers order pricing and a simulated payment step on
// top of the cart's totals. It reads the cart; it never mutates it —
// the session clears the cart only after payment completes.
package checkout

import (
	"github.com/Medofathi/hadrempro/internal/cart"
)

// Flat-rate shipping and tax rate applied to every order.
const (
	ShippingCost = 5.00
	TaxRate      = 0.08
)

// Summary is a priced snapshot of the cart, taken at checkout time.
type Summary struct {
	Lines      []cart.LineItem
	Subtotal   float64
	Shipping   float64
	Tax        float64
	GrandTotal float64
}

// Summarize prices the current cart contents.
//
// Tax is computed on the subtotal only; shipping is flat. All values
// are full-precision — rounding is a display concern.
func Summarize(s *cart.Store) Summary {
	subtotal := s.TotalPrice()
	tax := subtotal * TaxRate
	return Summary{
		Lines:      s.Items(),
		Subtotal:   subtotal,
		Shipping:   ShippingCost,
		Tax:        tax,
		GrandTotal: subtotal + ShippingCost + tax,
	}
}
