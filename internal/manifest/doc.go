// Package manifest assembles a reconciled tree into a channel package
// description ready for upload tooling.
//
// Categories become topics; entries become video or document nodes depending
// on file extension, with the resolved filename as the node source id. The
// manifest is plain JSON on purpose: the upload side changes more often than
// the reconciliation engine and only needs a stable handoff format.
package manifest
