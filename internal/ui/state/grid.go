package state

import "github.com/unibazaar/unibazaar-tui/internal/listing"

// Grid encapsulates the home-section listing grid for one category:
// cursor position, fuzzy filter, and viewport offset.
type Grid struct {
	CategoryID     string
	Items          []listing.Listing
	Full           []listing.Listing
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewGrid constructs a grid for the given category.
func NewGrid(categoryID string, items []listing.Listing) *Grid {
	g := &Grid{
		CategoryID: categoryID,
		Cursor:     0,
		LastCursor: -1,
	}
	g.UpdateItems(items)
	return g
}

// UpdateItems refreshes the grid contents, re-applying any active
// filter and keeping the viewport stable when possible.
func (g *Grid) UpdateItems(items []listing.Listing) {
	prevOffset := g.ViewportOffset
	g.Full = listing.CloneAll(items)
	g.applyFilter()
	if len(g.Items) == 0 {
		g.ViewportOffset = 0
		return
	}
	if prevOffset < 0 || prevOffset > len(g.Items)-1 {
		g.ViewportOffset = 0
		return
	}
	g.ViewportOffset = prevOffset
}

// Current returns the listing under the cursor.
func (g *Grid) Current() (listing.Listing, bool) {
	if len(g.Items) == 0 || g.Cursor < 0 || g.Cursor >= len(g.Items) {
		return listing.Listing{}, false
	}
	return listing.Clone(g.Items[g.Cursor]), true
}

// IndexOf returns the index of the listing with the given ID.
func (g *Grid) IndexOf(id int64) int {
	for i, l := range g.Items {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Position reports where the grid was left: cursor index and viewport
// row offset, the pair cached per category by the scroll cache.
func (g *Grid) Position() (index, offset int) {
	if g.Cursor < 0 {
		return 0, 0
	}
	return g.Cursor, g.ViewportOffset
}

// SetPosition restores a cached position, clamping it to the current
// item count.
func (g *Grid) SetPosition(index, offset, maxVisible int) {
	g.Cursor = index
	g.ViewportOffset = offset
	if g.Cursor > len(g.Items)-1 {
		g.Cursor = len(g.Items) - 1
	}
	if g.Cursor < 0 {
		g.Cursor = 0
	}
	g.EnsureCursorVisible(maxVisible)
}

// MoveCursorUp moves the cursor up one row, wrapping at the top.
func (g *Grid) MoveCursorUp() bool {
	n := len(g.Items)
	if n == 0 {
		return false
	}
	if g.Cursor > 0 {
		g.Cursor--
	} else {
		g.Cursor = n - 1
	}
	return true
}

// MoveCursorDown moves the cursor down one row, wrapping at the end.
func (g *Grid) MoveCursorDown() bool {
	n := len(g.Items)
	if n == 0 {
		return false
	}
	if g.Cursor < n-1 {
		g.Cursor++
	} else {
		g.Cursor = 0
	}
	return true
}

// MoveCursorHome moves the cursor to the first row.
func (g *Grid) MoveCursorHome() bool {
	if len(g.Items) == 0 {
		g.Cursor = 0
		return false
	}
	old := g.Cursor
	g.Cursor = 0
	return old != g.Cursor
}

// MoveCursorEnd moves the cursor to the last row.
func (g *Grid) MoveCursorEnd() bool {
	n := len(g.Items)
	if n == 0 {
		g.Cursor = 0
		return false
	}
	old := g.Cursor
	g.Cursor = n - 1
	return old != g.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (g *Grid) MoveCursorPageUp(maxVisible int) bool {
	return g.moveCursorBy(-g.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (g *Grid) MoveCursorPageDown(maxVisible int) bool {
	return g.moveCursorBy(g.pageSize(maxVisible))
}

func (g *Grid) moveCursorBy(delta int) bool {
	if len(g.Items) == 0 {
		g.Cursor = 0
		return false
	}
	old := g.Cursor
	if g.Cursor < 0 {
		g.Cursor = 0
	}
	g.Cursor += delta
	if g.Cursor < 0 {
		g.Cursor = 0
	}
	if g.Cursor >= len(g.Items) {
		g.Cursor = len(g.Items) - 1
	}
	return g.Cursor != old
}

func (g *Grid) pageSize(maxVisible int) int {
	total := len(g.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays
// inside the visible window.
func (g *Grid) EnsureCursorVisible(maxVisible int) {
	if len(g.Items) == 0 {
		g.Cursor = 0
		g.ViewportOffset = 0
		return
	}
	if g.Cursor < 0 {
		g.Cursor = 0
	}
	if g.Cursor >= len(g.Items) {
		g.Cursor = len(g.Items) - 1
	}
	if maxVisible <= 0 {
		g.ViewportOffset = 0
		return
	}
	maxOffset := len(g.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if g.ViewportOffset > maxOffset {
		g.ViewportOffset = maxOffset
	}
	if g.ViewportOffset < 0 {
		g.ViewportOffset = 0
	}
	if g.Cursor < g.ViewportOffset {
		g.ViewportOffset = g.Cursor
	}
	if g.Cursor >= g.ViewportOffset+maxVisible {
		g.ViewportOffset = g.Cursor - maxVisible + 1
	}
}
