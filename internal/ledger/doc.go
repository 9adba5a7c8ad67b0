// Package ledger records committed food orders and answers aggregate
// queries over them.
//
// The ledger is append-only: Commit is the only write, and there is no
// update or delete. Durable rows live behind the Store interface
// (internal/store for SQLite, internal/pgstore for Postgres); the Ledger
// owns its Store and keeps no package-level state.
//
// # Commit
//
// Commit turns a cart into an Order:
//   - the customer name is trimmed and NFC-normalized
//   - a blank name or an empty cart fails with *cart.ValidationError and
//     writes nothing
//   - the row is inserted atomically, then the cart is reset
//
// Commits are serialized with a mutex so order IDs are assigned in commit
// order even when several shells share one Ledger.
//
// # Aggregates
//
// TotalRevenue and DistinctCustomers are recomputed from the store on every
// call. Nothing is cached in memory, so a reopened ledger reports the same
// figures as the process that wrote the rows.
package ledger
