package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/unibazaar/unibazaar-tui/internal/listing"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	want := []listing.Listing{
		{
			ID:           42,
			Title:        "Desk lamp",
			Description:  "Warm white",
			Price:        "$10",
			Category:     "Items",
			Location:     "North Quad",
			AuthorName:   "Maya R.",
			ImageHandles: []string{"img-a", "img-b"},
			CreatedAt:    time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:           43,
			Title:        "Kittens",
			Price:        "Free",
			Category:     "Rescues",
			AuthorName:   "Sam T.",
			ImageHandles: []string{},
		},
	}
	if err := repo.Save(want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got := repo.Load()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch\nwant %#v\ngot  %#v", want, got)
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	if got := repo.Load(); len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestLoadCorruptFileReturnsEmpty(t *testing.T) {
	repo := newTestRepo(t)
	for _, payload := range []string{"", "{not json", `{"id": 1}`, "null"} {
		if err := os.WriteFile(repo.Path(), []byte(payload), 0o644); err != nil {
			t.Fatalf("seed corrupt file: %v", err)
		}
		if got := repo.Load(); len(got) != 0 {
			t.Fatalf("payload %q: expected empty slice, got %#v", payload, got)
		}
	}
}

func TestLoadIgnoresUnknownFieldsAndAppliesDefaults(t *testing.T) {
	repo := newTestRepo(t)
	doc := `[{"id": 7, "title": "Bike", "price": "$90", "views_count": 12, "boost": true}]`
	if err := os.WriteFile(repo.Path(), []byte(doc), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	got := repo.Load()
	if len(got) != 1 {
		t.Fatalf("expected one listing, got %d", len(got))
	}
	if got[0].AuthorName != listing.DefaultAuthor {
		t.Fatalf("expected default author, got %q", got[0].AuthorName)
	}
	if got[0].ImageHandles == nil || len(got[0].ImageHandles) != 0 {
		t.Fatalf("expected empty handles, got %#v", got[0].ImageHandles)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.Save([]listing.Listing{{ID: 1, Title: "x", Price: "$1"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(repo.Path()))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != FileName {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only %s, got %v", FileName, names)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	repo := newTestRepo(t)
	if err := repo.Save(nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got := repo.Load(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestMergeOrdersUserFirst(t *testing.T) {
	user := []listing.Listing{{ID: 2, Title: "newer"}, {ID: 1, Title: "older"}}
	samples := []listing.Listing{{ID: -1, Title: "sample"}}
	got := Merge(user, samples)
	if len(got) != 3 || got[0].ID != 2 || got[2].ID != -1 {
		t.Fatalf("unexpected merge order: %#v", got)
	}
}
