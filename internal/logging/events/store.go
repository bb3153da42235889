package events

import "github.com/unibazaar/unibazaar-tui/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Loaded(count int) {
	logging.Trace("store.loaded", map[string]interface{}{"count": count})
}

func (StoreTracer) SaveQueued(gen uint64, count int) {
	logging.Trace("store.save-queued", map[string]interface{}{"gen": gen, "count": count})
}

func (StoreTracer) Saved(gen uint64) {
	logging.Trace("store.saved", map[string]interface{}{"gen": gen})
}

func (StoreTracer) SaveFailed(gen uint64, err error) {
	payload := map[string]interface{}{"gen": gen}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("store.save-failed", payload)
}

func (StoreTracer) SaveStale(gen, newest uint64) {
	logging.Trace("store.save-stale", map[string]interface{}{"gen": gen, "newest": newest})
}
