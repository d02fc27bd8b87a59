package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PaymentDelay is the fixed duration of the simulated payment step.
const PaymentDelay = 2 * time.Second

// Receipt records a completed order.
type Receipt struct {
	OrderID  string
	Total    float64
	PlacedAt time.Time
}

// TokenGenerator generates unique order IDs.
// Implemented by UUIDv7Generator (production) and FixedGenerator (tests).
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 order IDs.
//
// UUIDv7 embeds a timestamp in the most significant bits, making order
// IDs sortable by creation time.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined order IDs for testing.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedGenerator creates a generator that returns tokens in order.
func NewFixedGenerator(tokens ...string) *FixedGenerator {
	return &FixedGenerator{tokens: tokens}
}

// Generate returns the next predetermined token.
// Panics if all tokens have been consumed - fail-fast for test
// misconfiguration.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.tokens) {
		panic("FixedGenerator: all tokens exhausted")
	}
	token := g.tokens[g.idx]
	g.idx++
	return token
}

// Sleeper waits for the payment delay. Injected so tests do not spend
// wall-clock time.
type Sleeper func(ctx context.Context, d time.Duration) error

// RealSleeper waits d or until the context is cancelled.
func RealSleeper(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoopSleeper returns immediately. For tests.
func NoopSleeper(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Processor runs the simulated payment step.
//
// Payment has no failure path of its own: it always succeeds after the
// fixed delay. The only way it returns an error is context cancellation.
type Processor struct {
	Tokens TokenGenerator
	Sleep  Sleeper
	Now    func() time.Time
}

// NewProcessor returns a production processor: UUIDv7 order IDs, real
// 2-second delay, wall-clock timestamps.
func NewProcessor() *Processor {
	return &Processor{
		Tokens: UUIDv7Generator{},
		Sleep:  RealSleeper,
		Now:    time.Now,
	}
}

// Pay simulates processing payment for the summary and returns the
// receipt. Callers clear the cart only after Pay returns nil error.
func (p *Processor) Pay(ctx context.Context, s Summary) (Receipt, error) {
	if err := p.Sleep(ctx, PaymentDelay); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		OrderID:  p.Tokens.Generate(),
		Total:    s.GrandTotal,
		PlacedAt: p.Now(),
	}, nil
}
