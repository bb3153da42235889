package events

import "github.com/unibazaar/unibazaar-tui/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Section(section string) {
	logging.Trace("nav.section", map[string]interface{}{"section": section})
}

func (NavTracer) Category(prev, next string) {
	logging.Trace("nav.category", map[string]interface{}{"prev": prev, "next": next})
}

func (NavTracer) ProfilePush(state string) {
	logging.Trace("nav.profile-push", map[string]interface{}{"state": state})
}

func (NavTracer) Back(consumed bool) {
	logging.Trace("nav.back", map[string]interface{}{"consumed": consumed})
}

func (NavTracer) Violation(err error) {
	if err == nil {
		return
	}
	logging.Trace("nav.violation", map[string]interface{}{"error": err.Error()})
}
