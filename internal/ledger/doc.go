// Package ledger persists per-row reconciliation outcomes in SQLite.
//
// Every pass gets a UUID and a row in the passes table; every classified cell
// lands in the entries table as resolved (with its file) or unresolved (with
// the candidate prefixes that were attempted). The ledger exists for operator
// follow-up — `bindery unresolved` reads it back — and is not consulted by
// the resolution engine itself, which is pure.
//
// The database is append-mostly history, not coordination state. Schema
// changes bump the version in schema.go; operators delete the database to
// adopt a new schema.
package ledger
