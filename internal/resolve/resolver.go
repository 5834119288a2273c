package resolve

import (
	"strings"

	"bindery/internal/config"
)

// Resolver matches candidate prefixes against pool filenames using the
// configured substitution and exclusion tables. It carries no per-row state;
// the accumulator lives in the reduction.
type Resolver struct {
	substitutions []config.Substitution
	excludedExts  []string
}

// New builds a Resolver from validated configuration.
func New(cfg *config.Config) *Resolver {
	return &Resolver{
		substitutions: append([]config.Substitution(nil), cfg.Resolver.Substitutions...),
		excludedExts:  append([]string(nil), cfg.Resolver.ExcludedExtensions...),
	}
}

// Resolve reduces the candidate prefixes over the pool and returns the best
// match, or ok=false when no filename satisfied any candidate. The pool slice
// is read in order and never mutated.
func (r *Resolver) Resolve(prefixes []string, pool []string) (name string, ok bool) {
	best := ""
	for _, prefix := range prefixes {
		best = r.Step(best, prefix, pool)
	}
	return best, best != ""
}

// Step folds a single candidate prefix into the accumulator and returns the
// new best match. An empty accumulator means no match so far.
//
// Filenames that match the prefix directly compete on length: the shortest
// wins, displacing the current best only when strictly shorter. Filenames
// that match only after a substitution-table rewrite overwrite the
// accumulator outright, so the most recent fallback match is retained until a
// shorter direct match appears.
func (r *Resolver) Step(best, prefix string, pool []string) string {
	var direct []string
	for _, name := range pool {
		if matchesPrefix(name, prefix) {
			direct = append(direct, name)
			continue
		}
		for _, sub := range r.substitutions {
			reworked := strings.ReplaceAll(prefix, sub.Find, sub.Replace)
			if reworked != prefix && matchesPrefix(name, reworked) {
				best = name
				break
			}
		}
	}

	for _, name := range direct {
		if r.excluded(name) {
			continue
		}
		if best == "" || len(name) < len(best) {
			best = name
		}
	}
	return best
}

func matchesPrefix(name, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(name), strings.ToLower(prefix))
}

func (r *Resolver) excluded(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range r.excludedExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
