// Package config loads, normalizes, and validates bindery configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: the versioned download archive layout, the category to
// filename-prefix token table that drives row classification, the resolver's
// substitution and exclusion tables, channel identity for manifest assembly,
// and logging/ledger settings.
//
// The category table is deliberately configuration rather than code: curators
// add spreadsheet columns and naming conventions far more often than the
// matching rules themselves change. Always obtain settings through this
// package so downstream code receives sanitized paths and validated tables.
package config
