package classify

import (
	"fmt"
	"strings"

	"bindery/internal/config"
)

// Variant markers curators append to titles. The dimensionality markers are
// checked before the plain markers so "(2D Anim)" is never half-stripped.
const (
	markerAnim   = "(Anim)"
	markerLive   = "(Live)"
	markerTwoD   = "(2D Anim)"
	markerThreeD = "(3D Anim)"
)

// UnknownCategoryError reports a spreadsheet category with no configured
// prefix tokens. This is a configuration defect, not a per-row failure, and
// aborts the reconciliation pass.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no prefix tokens configured for category %q", e.Category)
}

// Result is the classifier output for one row.
type Result struct {
	// Title is the display title with all variant markers stripped.
	Title string
	// Prefixes are the candidate filename prefixes in resolution order. Each
	// ends with the "." separator so "Cat" cannot match "Caterpillar".
	Prefixes []string
}

// Ruleset holds the immutable classification tables for a pass.
type Ruleset struct {
	categories  map[string][]string
	twoDToken   string
	threeDToken string
}

// NewRuleset builds a Ruleset from validated configuration.
func NewRuleset(cfg *config.Config) *Ruleset {
	categories := make(map[string][]string, len(cfg.Categories))
	for name, tokens := range cfg.Categories {
		categories[name] = append([]string(nil), tokens...)
	}
	return &Ruleset{
		categories:  categories,
		twoDToken:   cfg.Variants.TwoDToken,
		threeDToken: cfg.Variants.ThreeDToken,
	}
}

// Classify derives the normalized title and ordered candidate prefixes for a
// (category, title) cell. It returns an UnknownCategoryError when the
// category has no configured tokens.
func (r *Ruleset) Classify(category, rawTitle string) (Result, error) {
	category = strings.TrimSpace(category)
	tokens, ok := r.categories[category]
	if !ok {
		return Result{}, &UnknownCategoryError{Category: category}
	}

	title := strings.TrimSpace(rawTitle)

	// A dimensionality marker overrides the category's base token list:
	// 2-D/3-D renditions live in their own production line regardless of the
	// column the row came from.
	switch {
	case strings.Contains(title, markerTwoD):
		tokens = []string{r.twoDToken}
	case strings.Contains(title, markerThreeD):
		tokens = []string{r.threeDToken}
	}

	hasAnim := strings.Contains(title, markerAnim)
	hasLive := strings.Contains(title, markerLive)
	normalized := NormalizeTitle(title)

	prefixes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		// Animated and live are divergent production lines; never resolve a
		// marked title against the opposite line's token.
		if hasAnim && strings.Contains(token, "LIVE") {
			continue
		}
		if hasLive && strings.Contains(token, "ANIM") {
			continue
		}
		prefixes = append(prefixes, token+"."+normalized+".")
	}

	return Result{Title: normalized, Prefixes: prefixes}, nil
}

// NormalizeTitle strips every known variant marker and trims whitespace.
// Normalizing an already-normalized title returns it unchanged.
func NormalizeTitle(title string) string {
	for _, marker := range []string{markerTwoD, markerThreeD, markerAnim, markerLive} {
		title = strings.ReplaceAll(title, marker, "")
	}
	return strings.TrimSpace(title)
}
