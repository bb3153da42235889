package dispatcher

import (
	"github.com/unibazaar/unibazaar-tui/internal/backend"
	"github.com/unibazaar/unibazaar-tui/internal/logging"
	"github.com/unibazaar/unibazaar-tui/internal/logging/events"
	"github.com/unibazaar/unibazaar-tui/internal/state"
)

// Result summarises what a backend event changed, so the UI knows
// whether a redraw or status update is due.
type Result struct {
	ListingsLoaded bool
	SaveCompleted  bool
	SaveStale      bool
	SaveErr        error
}

// Dispatcher applies backend storage events to the listing store. It
// runs on the UI goroutine; the persister only hands values across
// the channel, never touches the stores.
type Dispatcher struct {
	listings state.ListingStore

	completedGen uint64
}

func New(listings state.ListingStore) *Dispatcher {
	return &Dispatcher{listings: listings}
}

// Handle applies one event. Save errors are logged and dropped —
// memory stays the source of truth and the next mutation retries
// naturally. A save completion older than one already seen is marked
// stale and otherwise ignored: the documented behavior is last write
// wins.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	switch evt.Kind {
	case backend.KindLoad:
		if result, ok := evt.Data.(backend.LoadResult); ok {
			d.listings.SetUserEntries(result.Listings)
			events.Store.Loaded(len(result.Listings))
			res.ListingsLoaded = true
		}
	case backend.KindSave:
		if evt.Gen < d.completedGen {
			events.Store.SaveStale(evt.Gen, d.completedGen)
			res.SaveStale = true
			return res
		}
		d.completedGen = evt.Gen
		res.SaveCompleted = true
		if evt.Err != nil {
			res.SaveErr = evt.Err
			logging.Error(evt.Err)
			events.Store.SaveFailed(evt.Gen, evt.Err)
		} else {
			events.Store.Saved(evt.Gen)
		}
	}
	return res
}

// CompletedGeneration reports the newest save generation applied.
func (d *Dispatcher) CompletedGeneration() uint64 {
	return d.completedGen
}
