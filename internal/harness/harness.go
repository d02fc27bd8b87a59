// Package harness runs YAML-defined cart scenarios: a sequence of
// operations against a fresh cart plus assertions on the resulting
// lines and aggregates. Scenario files live in testdata/scenarios.
package harness

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Medofathi/hadrempro/internal/cart"
	"github.com/Medofathi/hadrempro/internal/catalog"
)

// Scenario defines one conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Ops is the operation sequence applied to a fresh cart.
	Ops []Op `yaml:"ops"`

	// Expect describes the final cart.
	Expect Expect `yaml:"expect"`
}

// Op is a single cart operation.
type Op struct {
	// Op is one of "add", "remove", "update", "clear".
	Op string `yaml:"op"`

	// Product is the product ID the operation targets (except clear).
	Product int `yaml:"product,omitempty"`

	// Quantity is the RAW quantity text for update ops. It goes through
	// the quantity policy exactly like free-text input, so scenarios can
	// exercise non-numeric, zero, negative, and fractional values.
	Quantity string `yaml:"quantity,omitempty"`
}

// Expect describes the final cart state.
type Expect struct {
	Lines     []ExpectedLine `yaml:"lines"`
	ItemCount int            `yaml:"item_count"`
	Subtotal  float64        `yaml:"subtotal"`
}

// ExpectedLine is one expected line item, in insertion order.
type ExpectedLine struct {
	Product  int `yaml:"product"`
	Quantity int `yaml:"quantity"`
}

// LoadScenarios reads a YAML file containing a list of scenarios.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	return scenarios, nil
}

// Run applies the scenario's operations to a fresh cart built over the
// given catalog. Fails fast on malformed scenarios (unknown op or
// product) - those are authoring errors, not cart behavior.
func (sc Scenario) Run(products []catalog.Product) (*cart.Store, error) {
	store := cart.NewStore()
	for i, op := range sc.Ops {
		switch op.Op {
		case "add":
			p, ok := catalog.FindByID(products, op.Product)
			if !ok {
				return nil, fmt.Errorf("%s op %d: unknown product %d", sc.Name, i, op.Product)
			}
			store.Add(p)
		case "remove":
			store.Remove(op.Product)
		case "update":
			q, valid := cart.ParseQuantity(op.Quantity)
			if !valid {
				q = 0
			}
			store.UpdateQuantity(op.Product, q)
		case "clear":
			store.Clear()
		default:
			return nil, fmt.Errorf("%s op %d: unknown op %q", sc.Name, i, op.Op)
		}
	}
	return store, nil
}

// Verify checks the final cart against the scenario's expectations and
// the structural invariants. Returns the first violation found.
func (sc Scenario) Verify(store *cart.Store) error {
	if err := CheckInvariants(store); err != nil {
		return fmt.Errorf("%s: %w", sc.Name, err)
	}

	items := store.Items()
	if len(items) != len(sc.Expect.Lines) {
		return fmt.Errorf("%s: got %d line items, want %d", sc.Name, len(items), len(sc.Expect.Lines))
	}
	for i, want := range sc.Expect.Lines {
		if items[i].ID != want.Product || items[i].Quantity != want.Quantity {
			return fmt.Errorf("%s: line %d is product %d qty %d, want product %d qty %d",
				sc.Name, i, items[i].ID, items[i].Quantity, want.Product, want.Quantity)
		}
	}
	if got := store.ItemCount(); got != sc.Expect.ItemCount {
		return fmt.Errorf("%s: item count %d, want %d", sc.Name, got, sc.Expect.ItemCount)
	}
	if got := store.TotalPrice(); math.Abs(got-sc.Expect.Subtotal) > 1e-9 {
		return fmt.Errorf("%s: subtotal %v, want %v", sc.Name, got, sc.Expect.Subtotal)
	}
	return nil
}

// CheckInvariants verifies the cart's structural invariants from first
// principles: unique product IDs, positive quantities, and aggregates
// that equal their definitions.
func CheckInvariants(store *cart.Store) error {
	items := store.Items()
	seen := make(map[int]bool, len(items))
	var count int
	var total float64
	for _, li := range items {
		if seen[li.ID] {
			return fmt.Errorf("duplicate product %d in cart", li.ID)
		}
		seen[li.ID] = true
		if li.Quantity < 1 {
			return fmt.Errorf("product %d has non-positive quantity %d", li.ID, li.Quantity)
		}
		count += li.Quantity
		total += li.Price * float64(li.Quantity)
	}
	if got := store.ItemCount(); got != count {
		return fmt.Errorf("ItemCount() = %d, sum of quantities = %d", got, count)
	}
	if got := store.TotalPrice(); math.Abs(got-total) > 1e-9 {
		return fmt.Errorf("TotalPrice() = %v, sum of line totals = %v", got, total)
	}
	return nil
}
