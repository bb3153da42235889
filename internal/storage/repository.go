package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/unibazaar/unibazaar-tui/internal/listing"
	"github.com/unibazaar/unibazaar-tui/internal/logging"
)

// FileName is the single named record holding user-authored listings
// under the app's private data directory.
const FileName = "listings.json"

// Repository persists the user listing record as one JSON document.
// The whole list is rewritten on every save; a reader never observes a
// partial file because the write lands in a temp file first and is
// moved into place with an atomic rename.
type Repository struct {
	path string
}

// NewRepository roots the record under dir, creating the directory
// when missing.
func NewRepository(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Repository{path: filepath.Join(dir, FileName)}, nil
}

// Path returns the record location, mainly for tests and trace logs.
func (r *Repository) Path() string {
	return r.path
}

// Load reads the persisted listings. A missing file, unreadable file,
// or malformed document all degrade to "no user data yet": the error
// is logged and an empty slice is returned. Unknown JSON fields are
// ignored; documented defaults are applied to missing optional fields.
func (r *Repository) Load() []listing.Listing {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Error(fmt.Errorf("read listings: %w", err))
		}
		return []listing.Listing{}
	}
	var records []listing.Listing
	if err := json.Unmarshal(data, &records); err != nil {
		logging.Error(fmt.Errorf("decode listings: %w", err))
		return []listing.Listing{}
	}
	out := make([]listing.Listing, 0, len(records))
	for _, rec := range records {
		out = append(out, listing.Normalize(rec))
	}
	return out
}

// Save overwrites the record with the given listings.
func (r *Repository) Save(listings []listing.Listing) error {
	if listings == nil {
		listings = []listing.Listing{}
	}
	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode listings: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.path), FileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp record: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace record: %w", err)
	}
	return nil
}

// Merge concatenates user listings ahead of the sample set. Ordering
// within the user slice is the caller's concern; new posts are
// prepended before save.
func Merge(user, samples []listing.Listing) []listing.Listing {
	out := make([]listing.Listing, 0, len(user)+len(samples))
	out = append(out, user...)
	out = append(out, samples...)
	return out
}
