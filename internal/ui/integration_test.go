package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unibazaar/unibazaar-tui/internal/backend"
	"github.com/unibazaar/unibazaar-tui/internal/storage"
	"github.com/unibazaar/unibazaar-tui/internal/testutil"
)

func startTestPersister(t *testing.T, dir string) *backend.Persister {
	t.Helper()
	repo, err := storage.NewRepository(dir)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	p := backend.NewPersister(repo, 0)
	t.Cleanup(func() {
		p.Stop()
		p.Wait()
	})
	return p
}

func nextEvent(t *testing.T, p *backend.Persister, kind backend.Kind) backend.Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-p.Events():
			if !ok {
				t.Fatalf("events channel closed while waiting for kind %d", kind)
			}
			if evt.Kind == kind {
				return evt
			}
		case <-deadline:
			t.Fatalf("timeout waiting for event kind %d", kind)
		}
	}
}

func TestStartupLoadsPersistedListings(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteListings(t, dir, testutil.Fixtures(3))
	p := startTestPersister(t, dir)

	model := NewModel(Options{Width: 80, Height: 24, Persister: p})
	evt := nextEvent(t, p, backend.KindLoad)
	model.applyBackendEvent(evt)

	if model.loading {
		t.Fatalf("expected loading cleared after the initial load")
	}
	view := model.View()
	if !strings.Contains(view, "fixture-01") {
		t.Fatalf("expected persisted listing in the home grid, view =\n%s", view)
	}
}

func TestCreatePostPersistsThroughBackend(t *testing.T) {
	dir := t.TempDir()
	p := startTestPersister(t, dir)

	model := NewModel(Options{Width: 80, Height: 24, Persister: p})
	model.applyBackendEvent(nextEvent(t, p, backend.KindLoad))

	_ = model.openCreatePost()
	model.createForm.inputs[cpTitle].SetValue("Mini fridge")
	model.createForm.inputs[cpPrice].SetValue("$40")
	if cmd := model.submitCreatePost(); cmd != nil {
		t.Fatalf("expected synchronous finalize without an image source")
	}

	evt := nextEvent(t, p, backend.KindSave)
	if evt.Err != nil {
		t.Fatalf("save failed: %v", evt.Err)
	}
	repo, err := storage.NewRepository(dir)
	if err != nil {
		t.Fatalf("failed to reopen repository: %v", err)
	}
	persisted := repo.Load()
	if len(persisted) != 1 || persisted[0].Title != "Mini fridge" {
		t.Fatalf("expected the new post on disk, got %#v", persisted)
	}
}

func TestGridPaginationRespectsViewport(t *testing.T) {
	model := NewModel(Options{Width: 40, Height: 8})
	model.loading = false
	model.listings.SetSamples(testutil.Fixtures(10))
	model.refreshGrid()
	harness := NewHarness(model)

	view := harness.View()
	if strings.Contains(view, "fixture-09") {
		t.Fatalf("expected fixture-09 outside the initial viewport, view =\n%s", view)
	}

	for i := 0; i < 9; i++ {
		harness.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	view = harness.View()
	if !strings.Contains(view, "fixture-10") {
		t.Fatalf("expected fixture-10 visible after scrolling, view =\n%s", view)
	}
}
