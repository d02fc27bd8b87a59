package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Medofathi/hadrempro/internal/cart"
	"github.com/Medofathi/hadrempro/internal/catalog"
)

func cartWith(lines ...catalog.Product) *cart.Store {
	s := cart.NewStore()
	for _, p := range lines {
		s.Add(p)
	}
	return s
}

func TestSummarize(t *testing.T) {
	s := cartWith(catalog.Product{ID: 1, Name: "A", Price: 10.00, Category: "T", ImageURL: "u"})
	s.Add(catalog.Product{ID: 1, Name: "A", Price: 10.00, Category: "T", ImageURL: "u"})

	sum := Summarize(s)

	assert.InDelta(t, 20.00, sum.Subtotal, 1e-9)
	assert.InDelta(t, 5.00, sum.Shipping, 1e-9)
	assert.InDelta(t, 1.60, sum.Tax, 1e-9)
	assert.InDelta(t, 26.60, sum.GrandTotal, 1e-9)
	require.Len(t, sum.Lines, 1)
	assert.Equal(t, 2, sum.Lines[0].Quantity)
}

func TestSummarize_EmptyCart(t *testing.T) {
	sum := Summarize(cart.NewStore())

	assert.Zero(t, sum.Subtotal)
	assert.Zero(t, sum.Tax)
	assert.InDelta(t, 5.00, sum.Shipping, 1e-9)
	assert.InDelta(t, 5.00, sum.GrandTotal, 1e-9)
	assert.Empty(t, sum.Lines)
}

func TestSummarize_DoesNotMutateCart(t *testing.T) {
	s := cartWith(catalog.Product{ID: 1, Name: "A", Price: 9.99, Category: "T", ImageURL: "u"})

	_ = Summarize(s)

	assert.Equal(t, 1, s.ItemCount(), "checkout must not mutate the cart")
}

func TestPay_Succeeds(t *testing.T) {
	fixedNow := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := &Processor{
		Tokens: NewFixedGenerator("order-1"),
		Sleep:  NoopSleeper,
		Now:    func() time.Time { return fixedNow },
	}

	receipt, err := p.Pay(context.Background(), Summary{GrandTotal: 26.60})

	require.NoError(t, err)
	assert.Equal(t, "order-1", receipt.OrderID)
	assert.InDelta(t, 26.60, receipt.Total, 1e-9)
	assert.Equal(t, fixedNow, receipt.PlacedAt)
}

func TestPay_ContextCancelled(t *testing.T) {
	p := &Processor{
		Tokens: UUIDv7Generator{},
		Sleep:  RealSleeper,
		Now:    time.Now,
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Pay(ctx, Summary{})

	require.ErrorIs(t, err, context.Canceled)
}

func TestUUIDv7Generator_UniqueTokens(t *testing.T) {
	gen := UUIDv7Generator{}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := gen.Generate()
		require.False(t, seen[token], "token %s generated twice", token)
		seen[token] = true
		assert.Len(t, token, 36)
	}
}

func TestFixedGenerator_Order(t *testing.T) {
	gen := NewFixedGenerator("a", "b")

	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
