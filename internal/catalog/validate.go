package catalog

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// productSchema is the boundary contract for a single catalog record.
// Everything past this check is trusted by the cart store.
const productSchema = `
#Product: {
	id:          int & >=1
	name:        string & !=""
	description: string
	price:       number & >=0
	category:    string & !=""
	imageUrl:    string & !=""
}
`

// ValidationError reports the first record that failed schema
// validation, by position and product ID.
type ValidationError struct {
	Index     int
	ProductID int
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("product %d (index %d): %s", e.ProductID, e.Index, e.Reason)
}

// Validate checks every product against the CUE schema and rejects
// duplicate IDs. Returns nil for an empty catalog.
func Validate(products []Product) error {
	cuectx := cuecontext.New()
	schema := cuectx.CompileString(productSchema).LookupPath(cue.ParsePath("#Product"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling product schema: %w", err)
	}

	seen := make(map[int]int, len(products))
	for i, p := range products {
		if prev, dup := seen[p.ID]; dup {
			return &ValidationError{
				Index:     i,
				ProductID: p.ID,
				Reason:    fmt.Sprintf("duplicate id (also at index %d)", prev),
			}
		}
		seen[p.ID] = i

		val := cuectx.Encode(map[string]any{
			"id":          p.ID,
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"category":    p.Category,
			"imageUrl":    p.ImageURL,
		})
		if err := schema.Unify(val).Validate(cue.Concrete(true)); err != nil {
			return &ValidationError{Index: i, ProductID: p.ID, Reason: err.Error()}
		}
	}
	return nil
}
