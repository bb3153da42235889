package state

// SaveEntry tracks the bookmark flag and running save count for one
// listing.
type SaveEntry struct {
	Saved bool
	Count uint
}

// SaveStore is the single mutation path for bookmark state, keyed by
// listing ID. Toggling on increments the count by exactly one;
// toggling off decrements by at most one and never below zero.
type SaveStore interface {
	Toggle(id int64) SaveEntry
	Get(id int64) SaveEntry
	SavedIDs() []int64
}

type saveStore struct {
	entries map[int64]SaveEntry
	order   []int64
}

// NewSaveStore returns an empty in-memory store.
func NewSaveStore() SaveStore {
	return &saveStore{entries: make(map[int64]SaveEntry)}
}

func (s *saveStore) Toggle(id int64) SaveEntry {
	entry, known := s.entries[id]
	if entry.Saved {
		entry.Saved = false
		if entry.Count > 0 {
			entry.Count--
		}
	} else {
		entry.Saved = true
		entry.Count++
	}
	if !known {
		s.order = append(s.order, id)
	}
	s.entries[id] = entry
	return entry
}

func (s *saveStore) Get(id int64) SaveEntry {
	return s.entries[id]
}

// SavedIDs returns the currently saved listing IDs in first-toggle
// order, so the watchlist renders stably.
func (s *saveStore) SavedIDs() []int64 {
	ids := make([]int64, 0, len(s.order))
	for _, id := range s.order {
		if s.entries[id].Saved {
			ids = append(ids, id)
		}
	}
	return ids
}
