package catalog

import "strings"

// Filter returns the products whose name or category contains the query
// as a case-insensitive substring. An empty query returns the input
// unchanged. Filter is pure and never touches cart state.
func Filter(products []Product, query string) []Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// FindByID returns the product with the given ID from a snapshot.
func FindByID(products []Product, id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
