package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/unibazaar/unibazaar-tui/internal/listing"
)

// Fixture generates deterministic listings for tests. Index i always
// produces the same listing, so assertions can name titles directly.
func Fixture(i int) listing.Listing {
	categories := []string{"Items", "Sublets", "Rescues", "Textbooks"}
	return listing.Listing{
		ID:           int64(i + 1),
		Title:        fmt.Sprintf("fixture-%02d", i+1),
		Description:  fmt.Sprintf("description for fixture %d", i+1),
		Price:        fmt.Sprintf("$%d", (i+1)*5),
		Category:     categories[i%len(categories)],
		Location:     "North Quad",
		AuthorName:   "Fixture Seller",
		ImageHandles: []string{},
		CreatedAt:    time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour),
	}
}

// Fixtures returns n deterministic listings.
func Fixtures(n int) []listing.Listing {
	out := make([]listing.Listing, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Fixture(i))
	}
	return out
}

// WriteListings seeds a data directory with a listing record the way
// the repository persists it, so tests can exercise startup loads
// without going through a save first.
func WriteListings(t *testing.T, dir string, listings []listing.Listing) string {
	t.Helper()
	data, err := json.MarshalIndent(listings, "", "  ")
	if err != nil {
		t.Fatalf("failed to marshal listings: %v", err)
	}
	path := filepath.Join(dir, "listings.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write listings file: %v", err)
	}
	return path
}
