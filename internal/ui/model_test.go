package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unibazaar/unibazaar-tui/internal/backend"
	"github.com/unibazaar/unibazaar-tui/internal/category"
	"github.com/unibazaar/unibazaar-tui/internal/listing"
	"github.com/unibazaar/unibazaar-tui/internal/state"
)

func newTestModel() *Model {
	m := NewModel(Options{Width: 80, Height: 24})
	m.loading = false
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestStartupShowsSamplesBeforeLoadCompletes(t *testing.T) {
	m := NewModel(Options{Width: 80, Height: 24})
	if len(m.grid.Items) == 0 {
		t.Fatalf("expected sample listings in the grid before the load finishes")
	}
	if !m.loading {
		t.Fatalf("expected loading state before the first backend event")
	}
}

func TestBackendLoadMergesUserListings(t *testing.T) {
	m := newTestModel()
	user := listing.Listing{ID: 42, Title: "Desk lamp", Price: "$10", Category: "Items", CreatedAt: time.Now()}
	m.applyBackendEvent(backend.Event{Kind: backend.KindLoad, Data: backend.LoadResult{Listings: []listing.Listing{user}}})
	if m.loading {
		t.Fatalf("expected loading cleared after load event")
	}
	entries := m.listings.Entries()
	if len(entries) == 0 || entries[0].ID != 42 {
		t.Fatalf("expected user listing first in the merged feed, got %#v", entries[:1])
	}
	if m.grid.IndexOf(42) < 0 {
		t.Fatalf("expected grid refreshed with the loaded listing")
	}
}

func TestCategorySwitchRestoresScrollPosition(t *testing.T) {
	m := newTestModel()
	if len(m.grid.Items) < 3 {
		t.Fatalf("need at least 3 sample listings, got %d", len(m.grid.Items))
	}
	m.grid.Cursor = 2
	m.selectCategory("items")
	if m.nav.Category() != "items" {
		t.Fatalf("expected items category, got %s", m.nav.Category())
	}
	if m.grid.CategoryID != "items" {
		t.Fatalf("expected grid rebuilt for items, got %s", m.grid.CategoryID)
	}
	m.selectCategory(category.DefaultID)
	if m.grid.Cursor != 2 {
		t.Fatalf("expected default category cursor restored to 2, got %d", m.grid.Cursor)
	}
}

func TestScrollRestoreClampsAfterShrink(t *testing.T) {
	m := newTestModel()
	m.grid.Cursor = len(m.grid.Items) - 1
	m.selectCategory("items")
	m.listings.SetSamples(m.listings.Entries()[:1])
	m.selectCategory(category.DefaultID)
	if m.grid.Cursor > len(m.grid.Items)-1 {
		t.Fatalf("expected cursor clamped to %d, got %d", len(m.grid.Items)-1, m.grid.Cursor)
	}
}

func TestBackContractThroughModel(t *testing.T) {
	m := newTestModel()
	m.selectCategory("items")
	if current, ok := m.grid.Current(); ok {
		m.openAdDetail(current)
	} else {
		t.Fatalf("expected a listing under the cursor")
	}

	if cmd := m.goBack(); cmd != nil {
		t.Fatalf("expected back to close the overlay, not quit")
	}
	if m.overlays.Current() != state.OverlayNone {
		t.Fatalf("expected overlay dismissed, got %s", m.overlays.Current())
	}
	if m.nav.Category() != "items" {
		t.Fatalf("expected category untouched by overlay dismissal")
	}

	if cmd := m.goBack(); cmd != nil {
		t.Fatalf("expected back to reset the category, not quit")
	}
	if m.nav.Category() != category.DefaultID {
		t.Fatalf("expected default category, got %s", m.nav.Category())
	}

	if cmd := m.goBack(); cmd == nil {
		t.Fatalf("expected unconsumed back at home default to quit")
	}
}

func TestOverlayExclusivityThroughModel(t *testing.T) {
	m := newTestModel()
	_ = m.openCreatePost()
	if m.createForm == nil {
		t.Fatalf("expected create form after open")
	}
	_ = m.openLogin()
	if m.overlays.Current() != state.OverlayLogin {
		t.Fatalf("expected login overlay on top, got %s", m.overlays.Current())
	}
	if m.createForm != nil {
		t.Fatalf("expected create form cleared by its dismiss callback")
	}
}

func TestCreatePostValidationKeepsOverlayOpen(t *testing.T) {
	m := newTestModel()
	_ = m.openCreatePost()
	m.createForm.inputs[cpTitle].SetValue("   ")
	m.createForm.inputs[cpPrice].SetValue("$5")
	if cmd := m.submitCreatePost(); cmd != nil {
		t.Fatalf("expected no command on rejected submission")
	}
	if m.overlays.Current() != state.OverlayCreatePost {
		t.Fatalf("expected overlay kept open, got %s", m.overlays.Current())
	}
	if m.createForm.err == "" {
		t.Fatalf("expected inline validation error")
	}
}

func TestCreatePostPrependsAndCloses(t *testing.T) {
	m := newTestModel()
	before := len(m.listings.UserEntries())
	_ = m.openCreatePost()
	m.createForm.inputs[cpTitle].SetValue("Mini fridge")
	m.createForm.inputs[cpPrice].SetValue("$40")
	m.createForm.inputs[cpCategory].SetValue("Items")
	if cmd := m.submitCreatePost(); cmd != nil {
		t.Fatalf("expected synchronous finalize without an image source")
	}
	if m.overlays.Current() != state.OverlayNone {
		t.Fatalf("expected overlay closed after posting")
	}
	mine := m.listings.UserEntries()
	if len(mine) != before+1 {
		t.Fatalf("expected %d user listings, got %d", before+1, len(mine))
	}
	if mine[0].Title != "Mini fridge" {
		t.Fatalf("expected newest listing first, got %q", mine[0].Title)
	}
	if m.grid.IndexOf(mine[0].ID) != 0 {
		t.Fatalf("expected new listing at the top of the grid")
	}
}

func TestSaveToggleDrivesWatchlist(t *testing.T) {
	m := newTestModel()
	current, ok := m.grid.Current()
	if !ok {
		t.Fatalf("expected a listing under the cursor")
	}
	m.toggleSave(current.ID)
	saved := m.savedListings()
	if len(saved) != 1 || saved[0].ID != current.ID {
		t.Fatalf("expected one saved listing, got %#v", saved)
	}
	m.toggleSave(current.ID)
	if len(m.savedListings()) != 0 {
		t.Fatalf("expected empty watchlist after second toggle")
	}
	if got := m.saves.Get(current.ID).Count; got != 0 {
		t.Fatalf("expected count back to 0, got %d", got)
	}
}

func TestAdDetailSaveFromOverlay(t *testing.T) {
	m := newTestModel()
	current, _ := m.grid.Current()
	m.openAdDetail(current)
	h := NewHarness(m)
	h.Send(key("ctrl+s"))
	if !m.saves.Get(current.ID).Saved {
		t.Fatalf("expected payload listing saved from the overlay")
	}
	h.Send(key("enter"))
	if m.overlays.Current() != state.OverlayNone {
		t.Fatalf("expected overlay closed by enter")
	}
}

func TestProfileEditMergeKeepsBlankFields(t *testing.T) {
	m := newTestModel()
	m.profile.Name = "Sam"
	m.profile.Bio = "hi there"
	m.selectSection(state.SectionProfile)
	_ = m.openEditProfile()
	if m.editForm == nil {
		t.Fatalf("expected edit form")
	}
	m.editForm.inputs[epName].SetValue("Alex")
	m.editForm.inputs[epBio].SetValue("")
	if cmd := m.submitEditProfile(); cmd != nil {
		t.Fatalf("expected synchronous commit without an avatar source")
	}
	if m.profile.Name != "Alex" {
		t.Fatalf("expected name updated, got %q", m.profile.Name)
	}
	if m.profile.Bio != "hi there" {
		t.Fatalf("expected blank bio to keep the old value, got %q", m.profile.Bio)
	}
	if m.nav.Profile() != state.ProfileRoot {
		t.Fatalf("expected profile back at root after commit, got %s", m.nav.Profile())
	}
}

func TestProfileSettingsTreeNavigation(t *testing.T) {
	m := newTestModel()
	m.selectSection(state.SectionProfile)
	m.pushProfile(state.ProfileSettings)
	m.pushProfile(state.ProfileDarkMode)
	if m.nav.Profile() != state.ProfileDarkMode {
		t.Fatalf("expected dark-mode state, got %s", m.nav.Profile())
	}
	h := NewHarness(m)
	h.Send(key("enter"))
	if !m.darkMode {
		t.Fatalf("expected dark mode toggled on")
	}
	if cmd := m.goBack(); cmd != nil {
		t.Fatalf("expected back consumed inside the profile tree")
	}
	if m.nav.Profile() != state.ProfileSettings {
		t.Fatalf("expected pop to settings, got %s", m.nav.Profile())
	}
}

func TestLocationPickerSetsMeetingSpot(t *testing.T) {
	m := newTestModel()
	m.openLocationPicker()
	h := NewHarness(m)
	h.Send(key("down"))
	h.Send(key("enter"))
	if m.corner != campusCorners[1] {
		t.Fatalf("expected corner %q, got %q", campusCorners[1], m.corner)
	}
	if m.overlays.Current() != state.OverlayNone {
		t.Fatalf("expected picker closed after choosing")
	}
}

func TestLoginSetsIdentity(t *testing.T) {
	m := newTestModel()
	_ = m.openLogin()
	m.loginForm.inputs[liUsername].SetValue("casey")
	m.submitLogin()
	if m.profile.Handle != "@casey" {
		t.Fatalf("expected handle @casey, got %q", m.profile.Handle)
	}
	if m.overlays.Current() != state.OverlayNone {
		t.Fatalf("expected login overlay closed")
	}
}

func TestFilterNarrowsGrid(t *testing.T) {
	m := newTestModel()
	target := m.grid.Full[0].Title
	m.grid.SetFilter(target, len([]rune(target)))
	if len(m.grid.Items) == 0 {
		t.Fatalf("expected at least one match for %q", target)
	}
	if m.grid.Items[0].Title != target {
		t.Fatalf("expected best match %q first, got %q", target, m.grid.Items[0].Title)
	}
	m.grid.SetFilter("", 0)
	if len(m.grid.Items) != len(m.grid.Full) {
		t.Fatalf("expected full grid after clearing the filter")
	}
}

func TestSectionTabCycling(t *testing.T) {
	m := newTestModel()
	h := NewHarness(m)
	h.Send(key("tab"))
	if m.nav.Section() != state.SectionWatchlist {
		t.Fatalf("expected watchlist after tab, got %s", m.nav.Section())
	}
	h.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.nav.Section() != state.SectionHome {
		t.Fatalf("expected home after shift+tab, got %s", m.nav.Section())
	}
}

func TestViewRendersHeaderAndTabs(t *testing.T) {
	m := newTestModel()
	view := m.View()
	if !strings.Contains(view, appTitle) {
		t.Fatalf("expected app title in view")
	}
	if !strings.Contains(view, "home") {
		t.Fatalf("expected section name in view")
	}
}
