// Package store provides SQLite-backed durable storage for the order ledger.
//
// The store holds one append-only relation:
//
//	orders(order_id INTEGER PRIMARY KEY AUTOINCREMENT,
//	       customer_name TEXT, items TEXT, total_bill NUMERIC)
//
// AUTOINCREMENT guarantees order IDs are never reused, even after the
// highest row is removed by hand, so IDs are strictly increasing.
//
// # Deterministic Reads
//
//   - Order reads use ORDER BY order_id ASC
//   - Distinct customers use ORDER BY customer_name COLLATE BINARY ASC
//
// # Connection Settings
//
// Open passes journal_mode=WAL, synchronous=NORMAL and a 5000 ms
// busy_timeout as go-sqlite3 DSN parameters, over a single pooled
// connection.
//
// The schema is created if absent and never altered. PRAGMA user_version
// records the layout; a file stamped by a newer layout is refused.
package store
