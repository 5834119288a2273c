package reconcile

// Entry binds one curated title to the file that satisfied it.
type Entry struct {
	Title string `json:"title"`
	File  string `json:"file"`
}

// CategoryGroup is one category's resolved entries in row order.
type CategoryGroup struct {
	Category string  `json:"category"`
	Entries  []Entry `json:"entries"`
}

// Tree is the grouped, ordered result of a reconciliation pass. Categories
// appear in order of first resolved entry; entries keep spreadsheet row
// order within their category.
type Tree struct {
	order   []string
	entries map[string][]Entry
}

// NewTree returns an empty result tree.
func NewTree() *Tree {
	return &Tree{entries: make(map[string][]Entry)}
}

// Add appends a resolved entry under a category, registering the category on
// first use.
func (t *Tree) Add(category string, entry Entry) {
	if _, ok := t.entries[category]; !ok {
		t.order = append(t.order, category)
	}
	t.entries[category] = append(t.entries[category], entry)
}

// Categories returns the category names in output order.
func (t *Tree) Categories() []string {
	return append([]string(nil), t.order...)
}

// Entries returns the resolved entries for a category in row order.
func (t *Tree) Entries(category string) []Entry {
	return append([]Entry(nil), t.entries[category]...)
}

// Len returns the total number of resolved entries.
func (t *Tree) Len() int {
	total := 0
	for _, entries := range t.entries {
		total += len(entries)
	}
	return total
}

// Groups flattens the tree for rendering and manifest assembly.
func (t *Tree) Groups() []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(t.order))
	for _, category := range t.order {
		groups = append(groups, CategoryGroup{
			Category: category,
			Entries:  t.Entries(category),
		})
	}
	return groups
}
