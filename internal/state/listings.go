package state

import "github.com/unibazaar/unibazaar-tui/internal/listing"

// ListingStore holds the in-memory listings: user posts first, then
// the static sample set. The in-memory list is the source of truth;
// persistence trails it (a failed save just leaves disk behind until
// the next one).
type ListingStore interface {
	Entries() []listing.Listing
	UserEntries() []listing.Listing
	SetUserEntries([]listing.Listing)
	SetSamples([]listing.Listing)
	Prepend(listing.Listing)
	Find(id int64) (listing.Listing, bool)
	Loaded() bool
}

type listingStore struct {
	user    []listing.Listing
	samples []listing.Listing
	loaded  bool
}

// NewListingStore starts with the given sample set and no user posts;
// user posts arrive asynchronously from the initial load.
func NewListingStore(samples []listing.Listing) ListingStore {
	return &listingStore{samples: listing.CloneAll(samples)}
}

func (s *listingStore) Entries() []listing.Listing {
	out := make([]listing.Listing, 0, len(s.user)+len(s.samples))
	out = append(out, listing.CloneAll(s.user)...)
	out = append(out, listing.CloneAll(s.samples)...)
	return out
}

func (s *listingStore) UserEntries() []listing.Listing {
	return listing.CloneAll(s.user)
}

func (s *listingStore) SetUserEntries(entries []listing.Listing) {
	s.user = listing.CloneAll(entries)
	s.loaded = true
}

func (s *listingStore) SetSamples(entries []listing.Listing) {
	s.samples = listing.CloneAll(entries)
}

// Prepend puts a new post at the head of the user list so the most
// recent post renders first.
func (s *listingStore) Prepend(l listing.Listing) {
	s.user = append([]listing.Listing{listing.Clone(l)}, s.user...)
}

func (s *listingStore) Find(id int64) (listing.Listing, bool) {
	for _, l := range s.user {
		if l.ID == id {
			return listing.Clone(l), true
		}
	}
	for _, l := range s.samples {
		if l.ID == id {
			return listing.Clone(l), true
		}
	}
	return listing.Listing{}, false
}

// Loaded reports whether the initial storage read has been applied.
func (s *listingStore) Loaded() bool {
	return s.loaded
}
