// Package store provides SQLite-backed storage for the product catalog.
//
// The store is the production catalog.Provider: the shop session reads a
// catalog snapshot from it at startup, and the seed command writes one
// from a YAML file. Cart state is deliberately NOT stored here — the
// cart lives for a single session only.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// Catalog reads always use ORDER BY id ASC so every snapshot iterates
// in the same deterministic order.
package store
