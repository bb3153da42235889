package state

// Position records where a category's grid was left: the cursor index
// and the viewport row offset.
type Position struct {
	Index  int
	Offset int
}

// ScrollCache remembers per-category grid positions for the home
// section. Entries live for the process lifetime only.
type ScrollCache interface {
	Store(categoryID string, pos Position)
	Restore(categoryID string) (Position, bool)
}

type scrollCache struct {
	positions map[string]Position
}

// NewScrollCache returns an empty cache.
func NewScrollCache() ScrollCache {
	return &scrollCache{positions: make(map[string]Position)}
}

func (c *scrollCache) Store(categoryID string, pos Position) {
	if pos.Index < 0 {
		pos.Index = 0
	}
	if pos.Offset < 0 {
		pos.Offset = 0
	}
	c.positions[categoryID] = pos
}

func (c *scrollCache) Restore(categoryID string) (Position, bool) {
	pos, ok := c.positions[categoryID]
	return pos, ok
}
