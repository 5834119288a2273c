// Package reconcile drives a full pass over the curated grid.
//
// Rows are processed strictly sequentially in spreadsheet traversal order:
// row-major outer loop, column order within each row. Every non-empty cell
// under a labeled header is classified into candidate prefixes and resolved
// against the pool snapshot; resolved entries are grouped by category into
// the output Tree in first-appearance category order, preserving row order
// within each category.
//
// An unknown category is a configuration error and aborts the pass before
// any output is produced. An unresolved row is reported and skipped; the
// pass always completes for the remaining rows. The engine does not enforce
// one-to-one row-to-file binding — duplicate claims on the same file are
// detected and logged for the operator but both entries are kept.
package reconcile
