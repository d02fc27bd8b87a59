package render

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/Medofathi/hadrempro/internal/cart"
	"github.com/Medofathi/hadrempro/internal/catalog"
	"github.com/Medofathi/hadrempro/internal/checkout"
)

// newGoldie configures golden comparison the same way for every view
// test. Regenerate with: go test ./internal/render -update
func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// twoLineCart builds a cart with fallback products 1 (quantity 2) and 2
// (quantity 1).
func twoLineCart(t *testing.T) *cart.Store {
	t.Helper()
	products := catalog.Fallback()
	s := cart.NewStore()
	s.Add(products[0])
	s.Add(products[0])
	s.Add(products[1])
	return s
}

func TestPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{9.99, "$9.99"},
		{149.99, "$149.99"},
		{1234.5, "$1,234.50"},
		{0.1 * 3, "$0.30"}, // display rounding hides float artifacts
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Price(tt.in))
	}
}

func TestCatalog_Golden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "catalog_fallback", []byte(Catalog(catalog.Fallback())))
}

func TestCatalog_EmptyGolden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "catalog_empty", []byte(Catalog(nil)))
}

func TestProductDetail_Golden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "product_detail", []byte(ProductDetail(catalog.Fallback()[0])))
}

func TestCart_Golden(t *testing.T) {
	s := twoLineCart(t)
	g := newGoldie(t)
	g.Assert(t, "cart_two_lines", []byte(Cart(s.Items(), s.TotalPrice())))
}

func TestCart_EmptyGolden(t *testing.T) {
	g := newGoldie(t)
	g.Assert(t, "cart_empty", []byte(Cart(nil, 0)))
}

func TestSummary_Golden(t *testing.T) {
	s := twoLineCart(t)
	g := newGoldie(t)
	g.Assert(t, "order_summary", []byte(Summary(checkout.Summarize(s))))
}

func TestReceipt_Golden(t *testing.T) {
	r := checkout.Receipt{
		OrderID:  "0190b5a4-0000-7000-8000-000000000001",
		Total:    414.8384,
		PlacedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	g := newGoldie(t)
	g.Assert(t, "receipt", []byte(Receipt(r)))
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "Cart (0)", Badge(0))
	assert.Equal(t, "Cart (7)", Badge(7))
}
