package cart

import (
	"github.com/Medofathi/hadrempro/internal/catalog"
)

// LineItem pairs a catalog product with the quantity in the cart.
// Identity is the product ID; the cart never holds two line items for
// the same product.
type LineItem struct {
	catalog.Product
	Quantity int
}

// LineTotal returns price*quantity for this line at full precision.
func (li LineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Store is the single source of truth for cart contents.
//
// Line items keep insertion order: the first-added product stays first,
// even after quantity updates. The index maps product ID to slice
// position and is kept consistent by every mutation.
type Store struct {
	items []LineItem
	index map[int]int // product ID -> position in items
}

// NewStore creates an empty cart for a new shopping session.
func NewStore() *Store {
	return &Store{
		index: make(map[int]int),
	}
}

// Add puts one unit of the product in the cart.
//
// If a line item for the product already exists, its quantity is
// incremented by 1 and its position is unchanged. Otherwise a new line
// item with quantity 1 is appended. Add is additive: calling it N times
// for the same product yields one line item with quantity N.
func (s *Store) Add(p catalog.Product) {
	if pos, ok := s.index[p.ID]; ok {
		s.items[pos].Quantity++
		return
	}
	s.items = append(s.items, LineItem{Product: p, Quantity: 1})
	s.index[p.ID] = len(s.items) - 1
}

// Remove deletes the line item with the given product ID.
// Removing an absent product is a no-op, not an error.
func (s *Store) Remove(productID int) {
	pos, ok := s.index[productID]
	if !ok {
		return
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, productID)
	// Reindex items that shifted left.
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
}

// UpdateQuantity sets the quantity of the line item with the given
// product ID. A quantity below 1 removes the line item entirely; the
// cart never stores a non-positive quantity. Unknown product IDs are a
// no-op.
//
// Callers holding raw user input should go through ParseQuantity first
// and pass 0 for invalid input.
func (s *Store) UpdateQuantity(productID, quantity int) {
	pos, ok := s.index[productID]
	if !ok {
		return
	}
	if quantity < 1 {
		s.Remove(productID)
		return
	}
	s.items[pos].Quantity = quantity
}

// Clear empties the cart unconditionally. Used after a completed order.
func (s *Store) Clear() {
	s.items = nil
	s.index = make(map[int]int)
}

// Items returns the line items in insertion order.
// The returned slice is a copy; mutating it does not affect the store.
func (s *Store) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of distinct line items.
func (s *Store) Len() int {
	return len(s.items)
}

// Empty reports whether the cart holds no line items.
func (s *Store) Empty() bool {
	return len(s.items) == 0
}

// ItemCount returns the sum of quantities across all line items.
// This is the cart-badge number, not the distinct product count.
func (s *Store) ItemCount() int {
	var n int
	for _, li := range s.items {
		n += li.Quantity
	}
	return n
}

// TotalPrice returns the sum of price*quantity over all line items, in
// insertion order, at full float64 precision.
func (s *Store) TotalPrice() float64 {
	var total float64
	for _, li := range s.items {
		total += li.LineTotal()
	}
	return total
}

// Get returns the line item for the given product ID, if present.
func (s *Store) Get(productID int) (LineItem, bool) {
	pos, ok := s.index[productID]
	if !ok {
		return LineItem{}, false
	}
	return s.items[pos], true
}
