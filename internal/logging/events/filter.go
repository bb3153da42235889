package events

import "github.com/unibazaar/unibazaar-tui/internal/logging"

type FilterTracer struct{}

var Filter = FilterTracer{}

func (FilterTracer) Append(categoryID, query string) {
	logging.Trace("filter.append", map[string]interface{}{"category": categoryID, "query": query})
}

func (FilterTracer) Backspace(categoryID, query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"category": categoryID, "query": query})
}

func (FilterTracer) WordBackspace(categoryID, query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"category": categoryID, "query": query})
}

func (FilterTracer) Cleared(categoryID string) {
	logging.Trace("filter.cleared", map[string]interface{}{"category": categoryID})
}

func (FilterTracer) Cursor(categoryID string, position int) {
	logging.Trace("filter.cursor", map[string]interface{}{"category": categoryID, "position": position})
}

func (FilterTracer) CursorWord(categoryID string, position int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"category": categoryID, "position": position})
}
