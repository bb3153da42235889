package events

import "github.com/unibazaar/unibazaar-tui/internal/logging"

type OverlayTracer struct{}

var Overlay = OverlayTracer{}

func (OverlayTracer) Open(kind string) {
	logging.Trace("overlay.open", map[string]interface{}{"kind": kind})
}

func (OverlayTracer) Replace(prev, next string) {
	logging.Trace("overlay.replace", map[string]interface{}{"prev": prev, "next": next})
}

func (OverlayTracer) Close(kind string) {
	logging.Trace("overlay.close", map[string]interface{}{"kind": kind})
}

func (OverlayTracer) Violation(err error) {
	if err == nil {
		return
	}
	logging.Trace("overlay.violation", map[string]interface{}{"error": err.Error()})
}
