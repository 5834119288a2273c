// Package sheet loads the curated workbook into an ordered grid.
//
// The active sheet's first row supplies category names per column; every
// following row holds titles in the cells of those columns. The grid keeps
// spreadsheet order exactly — reconciliation output order is defined by it.
// Columns with a blank header are carried through and skipped by the caller,
// matching how curators park notes in unlabeled columns.
package sheet
