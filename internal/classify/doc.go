// Package classify derives filename-prefix candidates for spreadsheet rows.
//
// Each curated cell is a (category, title) pair. The Ruleset maps the
// category to its configured base prefix tokens, applies title variant
// markers ((Anim), (Live), (2D Anim), (3D Anim)) to narrow or override that
// list, strips the markers to obtain the display title, and constructs one
// anchored candidate prefix per surviving token. The resolver tests those
// prefixes against the resource pool.
//
// Classification is pure: the result depends only on the category, the raw
// title, and the immutable ruleset, never on other rows.
package classify
