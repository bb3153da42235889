package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unibazaar/unibazaar-tui/internal/account"
	"github.com/unibazaar/unibazaar-tui/internal/backend"
	"github.com/unibazaar/unibazaar-tui/internal/category"
	"github.com/unibazaar/unibazaar-tui/internal/data/dispatcher"
	"github.com/unibazaar/unibazaar-tui/internal/imagecap"
	"github.com/unibazaar/unibazaar-tui/internal/listing"
	"github.com/unibazaar/unibazaar-tui/internal/state"
	"github.com/unibazaar/unibazaar-tui/internal/theme"
	"github.com/unibazaar/unibazaar-tui/internal/ui/command"
	uistate "github.com/unibazaar/unibazaar-tui/internal/ui/state"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// campusCorners lists the meeting spots offered by the location
// picker overlay.
var campusCorners = []string{
	"North Quad",
	"South Commons",
	"Library steps",
	"West Dorms",
	"Student union",
}

// Options bundles the collaborators and presentation settings the
// model needs.
type Options struct {
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	Strict       bool
	StartSection string
	Persister    *backend.Persister
	Images       imagecap.Capability
}

// imageTarget marks which flow is waiting for an image capability
// result.
type imageTarget int

const (
	imageTargetPost imageTarget = iota
	imageTargetAvatar
)

// imageAttachedMsg reports the outcome of an image capability request
// back to the waiting flow.
type imageAttachedMsg struct {
	target imageTarget
	handle imagecap.Handle
	ok     bool
}

// Model is the application state orchestrator: the sole writer of the
// navigation machine, overlay stack, save store, scroll cache, and
// listing store. Rendering reads snapshots; mutations all happen in
// Update on the program goroutine.
type Model struct {
	nav        *state.Navigator
	overlays   *state.OverlayStack
	saves      state.SaveStore
	scroll     state.ScrollCache
	listings   state.ListingStore
	categories *category.Registry
	dispatcher *dispatcher.Dispatcher
	persister  *backend.Persister
	images     imagecap.Capability
	bus        *command.Bus

	grid *uistate.Grid

	profile   account.Profile
	darkMode  bool
	largeText bool
	corner    string

	createForm *form
	editForm   *form
	loginForm  *form

	// pending state while an image capability result is outstanding
	pendingPost    *listing.Listing
	pendingProfile *account.Profile

	watchCursor    int
	profileCursor  int
	settingsCursor int
	pickerCursor   int

	loading     bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the home grid and all
// orchestrated stores.
func NewModel(opts Options) *Model {
	registry := category.NewRegistry()
	listings := state.NewListingStore(listing.Samples())
	m := &Model{
		nav:        state.NewNavigator(opts.Strict),
		overlays:   state.NewOverlayStack(),
		saves:      state.NewSaveStore(),
		scroll:     state.NewScrollCache(),
		listings:   listings,
		categories: registry,
		dispatcher: dispatcher.New(listings),
		persister:  opts.Persister,
		images:     opts.Images,
		bus:        command.New(),
		profile:    account.Default(),
		corner:     campusCorners[0],
		loading:    true,
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
	}
	m.nav.OnSectionSwitch(m.clearSectionHighlights)
	m.grid = uistate.NewGrid(category.DefaultID, m.listingsFor(category.DefaultID))
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.applyStartSection(opts.StartSection)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.persister != nil {
		cmds = append(cmds, waitForBackendEvent(m.persister))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
		reflect.TypeOf(imageAttachedMsg{}):  m.handleImageAttachedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// applyStartSection honours the -section override.
func (m *Model) applyStartSection(requested string) {
	switch requested {
	case "", "home":
	case "watchlist":
		m.nav.SelectSection(state.SectionWatchlist)
	case "profile":
		m.nav.SelectSection(state.SectionProfile)
	case "messenger":
		m.nav.SelectSection(state.SectionMessenger)
	case "notification":
		m.nav.SelectSection(state.SectionNotification)
	}
}

// clearSectionHighlights drops sub-selection state tied to the section
// being left.
func (m *Model) clearSectionHighlights(prev state.Section) {
	switch prev {
	case state.SectionWatchlist:
		m.watchCursor = 0
	case state.SectionProfile:
		m.profileCursor = 0
		m.settingsCursor = 0
	}
}

// listingsFor returns the merged listings visible under a category.
func (m *Model) listingsFor(categoryID string) []listing.Listing {
	entries := m.listings.Entries()
	if categoryID == category.DefaultID {
		return entries
	}
	label := m.categories.Label(categoryID)
	out := make([]listing.Listing, 0, len(entries))
	for _, l := range entries {
		if l.Category == label {
			out = append(out, l)
		}
	}
	return out
}

// refreshGrid re-derives the current grid from the listing store,
// keeping cursor and filter.
func (m *Model) refreshGrid() {
	m.grid.UpdateItems(m.listingsFor(m.grid.CategoryID))
	m.grid.EnsureCursorVisible(m.maxVisibleRows())
}

// savedListings resolves the watchlist entries in first-saved order.
func (m *Model) savedListings() []listing.Listing {
	ids := m.saves.SavedIDs()
	out := make([]listing.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := m.listings.Find(id); ok {
			out = append(out, l)
		}
	}
	return out
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
