package category

// DefaultID is the sentinel sub-section selected whenever the home
// section is entered through the bottom navigation.
const DefaultID = "default"

// Category describes a single home-section filter tab.
type Category struct {
	ID         string
	Label      string
	StyleToken string
}

// Registry holds the static category table. It is built once at
// process start and never mutated afterwards.
type Registry struct {
	ordered []Category
	byID    map[string]Category
	byLabel map[string]Category
}

// builtin lists every category in display order. The default entry is
// the "all listings" tab.
var builtin = []Category{
	{ID: DefaultID, Label: "All", StyleToken: "neutral"},
	{ID: "items", Label: "Items", StyleToken: "items"},
	{ID: "sublets", Label: "Sublets", StyleToken: "sublets"},
	{ID: "rescues", Label: "Rescues", StyleToken: "rescues"},
	{ID: "textbooks", Label: "Textbooks", StyleToken: "textbooks"},
}

// NewRegistry constructs the registry from the builtin table.
func NewRegistry() *Registry {
	r := &Registry{
		ordered: append([]Category(nil), builtin...),
		byID:    make(map[string]Category, len(builtin)),
		byLabel: make(map[string]Category, len(builtin)),
	}
	for _, c := range r.ordered {
		r.byID[c.ID] = c
		r.byLabel[c.Label] = c
	}
	return r
}

// All returns the categories in display order.
func (r *Registry) All() []Category {
	return append([]Category(nil), r.ordered...)
}

// Lookup finds a category by its stable ID.
func (r *Registry) Lookup(id string) (Category, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// ByLabel finds a category by its display label. Listing records carry
// the label, not the ID.
func (r *Registry) ByLabel(label string) (Category, bool) {
	c, ok := r.byLabel[label]
	return c, ok
}

// Label resolves an ID to its display label, falling back to the ID
// itself for unknown values.
func (r *Registry) Label(id string) string {
	if c, ok := r.byID[id]; ok {
		return c.Label
	}
	return id
}

// ValidLabel reports whether a listing may declare the given category
// label. The default tab is a view, not a declarable category.
func (r *Registry) ValidLabel(label string) bool {
	c, ok := r.byLabel[label]
	return ok && c.ID != DefaultID
}

// Next returns the ID of the category following id in display order,
// wrapping at the end. Unknown IDs return the default.
func (r *Registry) Next(id string) string {
	return r.step(id, 1)
}

// Prev returns the ID of the category preceding id in display order,
// wrapping at the start.
func (r *Registry) Prev(id string) string {
	return r.step(id, -1)
}

func (r *Registry) step(id string, delta int) string {
	for i, c := range r.ordered {
		if c.ID == id {
			n := len(r.ordered)
			return r.ordered[(i+delta+n)%n].ID
		}
	}
	return DefaultID
}
