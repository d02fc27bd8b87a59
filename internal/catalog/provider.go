package catalog

import (
	"context"
	"log/slog"
)

// Provider supplies a finite catalog snapshot. Implemented by
// store.Store (SQLite) in production and by StaticProvider in tests.
//
// Providers return already-ordered records; callers validate them at
// the boundary before use.
type Provider interface {
	Products(ctx context.Context) ([]Product, error)
}

// StaticProvider serves a fixed product list. Useful for tests and for
// running the storefront without a database.
type StaticProvider struct {
	List []Product
	Err  error // returned instead of List when non-nil
}

// Products returns the configured list or error.
func (p StaticProvider) Products(context.Context) ([]Product, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.List, nil
}

// Load fetches the catalog from the provider, validates it, and
// substitutes the fixed fallback list on any failure.
//
// Load never returns an error: a failed or invalid fetch degrades to
// the fallback catalog with a logged warning, mirroring the retry-style
// message the storefront shows the shopper.
func Load(ctx context.Context, p Provider, logger *slog.Logger) []Product {
	if logger == nil {
		logger = slog.Default()
	}
	products, err := p.Products(ctx)
	if err != nil {
		logger.Warn("catalog fetch failed, using fallback list", "error", err)
		return Fallback()
	}
	if err := Validate(products); err != nil {
		logger.Warn("catalog failed validation, using fallback list", "error", err)
		return Fallback()
	}
	logger.Info("catalog loaded", "products", len(products))
	return products
}
