// Package store is the SQLite-backed conversion journal.
//
// Every line converted by a journalled run is appended as one row of the
// conversions table, keyed by a content-addressed ID. The journal is used to
// check that conversions are deterministic: replaying a session through the
// current engine must reproduce every recorded output.
//
// # Identity and ordering
//
//   - IDs are SHA-256 over canonical JSON of session, seq, direction,
//     options and input, with domain separation ("crkortho/conversion/v1").
//   - Writes are idempotent: ON CONFLICT DO NOTHING.
//   - Ordering uses the logical seq, never timestamps. Every query that
//     returns conversions orders by seq ASC, id ASC COLLATE BINARY.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - schema versioned with PRAGMA user_version
package store
