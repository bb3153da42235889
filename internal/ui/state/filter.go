package state

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/unibazaar/unibazaar-tui/internal/listing"
)

// SetFilter updates the filter query and cursor position, re-deriving
// the visible items.
func (g *Grid) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(g.Filter)
	restore := -1
	g.Filter = query
	runes := []rune(g.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	g.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			g.LastCursor = g.Cursor
		}
		g.Cursor = 0
	} else if prevTrimmed != "" {
		restore = g.LastCursor
	}
	g.applyFilter()
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(g.Items) {
			g.Cursor = restore
		} else if len(g.Items) > 0 {
			g.Cursor = len(g.Items) - 1
		}
		g.LastCursor = -1
	}
}

func (g *Grid) applyFilter() {
	g.Items = FilterListings(g.Full, g.Filter)
	if len(g.Items) == 0 {
		g.Cursor = 0
		g.ViewportOffset = 0
		return
	}
	if g.Cursor < 0 || g.Cursor >= len(g.Items) {
		g.Cursor = len(g.Items) - 1
	}
	if g.ViewportOffset > len(g.Items)-1 {
		g.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (g *Grid) FilterCursorPos() int {
	runes := []rune(g.Filter)
	if g.FilterCursor < 0 {
		return 0
	}
	if g.FilterCursor > len(runes) {
		return len(runes)
	}
	return g.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (g *Grid) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	g.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (g *Grid) DeleteFilterRuneBackward() bool {
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	g.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (g *Grid) DeleteFilterWordBackward() bool {
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(append([]rune{}, runes[:i]...), runes[pos:]...)
	g.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune left.
func (g *Grid) MoveFilterCursorRuneBackward() bool {
	pos := g.FilterCursorPos()
	if pos == 0 {
		return false
	}
	g.FilterCursor = pos - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune right.
func (g *Grid) MoveFilterCursorRuneForward() bool {
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	g.FilterCursor = pos + 1
	return true
}

// MoveFilterCursorStart moves the filter cursor to the beginning.
func (g *Grid) MoveFilterCursorStart() bool {
	if g.FilterCursorPos() == 0 {
		return false
	}
	g.FilterCursor = 0
	return true
}

// MoveFilterCursorEnd moves the filter cursor past the last rune.
func (g *Grid) MoveFilterCursorEnd() bool {
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	g.FilterCursor = len(runes)
	return true
}

// MoveFilterCursorWordBackward moves the cursor to the start of the
// previous word.
func (g *Grid) MoveFilterCursorWordBackward() bool {
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	if i == pos {
		return false
	}
	g.FilterCursor = i
	return true
}

// MoveFilterCursorWordForward moves the cursor past the end of the
// next word.
func (g *Grid) MoveFilterCursorWordForward() bool {
	runes := []rune(g.Filter)
	pos := g.FilterCursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	g.FilterCursor = i
	return true
}

// ClearFilter resets the query, restoring the pre-filter cursor.
func (g *Grid) ClearFilter() bool {
	if g.Filter == "" {
		return false
	}
	g.SetFilter("", 0)
	return true
}

// FilterListings returns the listings whose titles fuzzily match the
// query, best matches first. A blank query returns everything in the
// original order.
func FilterListings(full []listing.Listing, query string) []listing.Listing {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return listing.CloneAll(full)
	}
	type ranked struct {
		entry listing.Listing
		rank  int
		pos   int
	}
	matches := make([]ranked, 0, len(full))
	for i, l := range full {
		r := fuzzy.RankMatchNormalizedFold(trimmed, l.Title)
		if r < 0 {
			continue
		}
		matches = append(matches, ranked{entry: listing.Clone(l), rank: r, pos: i})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].rank != matches[b].rank {
			return matches[a].rank < matches[b].rank
		}
		return matches[a].pos < matches[b].pos
	})
	out := make([]listing.Listing, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.entry)
	}
	return out
}
