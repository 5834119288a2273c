// Package resolve binds candidate filename prefixes to files in the resource
// pool.
//
// Resolution is a left-to-right reduction over the candidate prefixes: each
// step tests every pool filename case-insensitively against one prefix and
// folds the outcome into a single best-match accumulator. Direct prefix
// matches compete on length, with the shortest surviving filename winning —
// longer filenames are presumed to carry suffixes belonging to a different
// row. When a prefix matches nothing directly, a fixed substitution table
// bridges known punctuation differences between curator titles and
// filenames; a match found that way seeds the accumulator but is displaced by
// any shorter direct match from a later candidate.
//
// The reduction step is exported so the tie-break rules are testable without
// a directory in sight.
package resolve
