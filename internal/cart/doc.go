// Package cart implements the cart state engine: an ordered collection of
// line items with merge-on-add semantics and derived aggregates.
//
// INVARIANTS (hold after every operation):
//   - No two line items share a product ID.
//   - Every quantity is a positive integer; a mutation that would drive a
//     quantity to zero or below removes the line item instead.
//   - ItemCount is the sum of quantities, not the number of distinct items.
//   - TotalPrice is the sum of price*quantity at full float64 precision;
//     rounding happens only at display time (see internal/render).
//
// The store is not safe for concurrent use. The session loop in
// internal/shop is the single writer: each command is processed to
// completion before the next is read, so readers always observe a
// post-mutation snapshot.
package cart
