// Package catalog defines the product model, the provider boundary that
// supplies it, boundary validation, and client-side search.
//
// Products are validated once at the boundary (Validate); the cart store
// only ever consumes already-validated records.
package catalog

// Product is an immutable catalog record.
//
// IDs are unique within a catalog snapshot and >= 1. Price is >= 0 and
// carried at full float64 precision; formatting to two decimals happens
// only at display time.
type Product struct {
	ID          int     `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Price       float64 `yaml:"price" json:"price"`
	Category    string  `yaml:"category" json:"category"`
	ImageURL    string  `yaml:"imageUrl" json:"imageUrl"`
}
