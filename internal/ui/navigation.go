package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unibazaar/unibazaar-tui/internal/account"
	"github.com/unibazaar/unibazaar-tui/internal/category"
	"github.com/unibazaar/unibazaar-tui/internal/imagecap"
	"github.com/unibazaar/unibazaar-tui/internal/listing"
	"github.com/unibazaar/unibazaar-tui/internal/logging/events"
	"github.com/unibazaar/unibazaar-tui/internal/state"
	"github.com/unibazaar/unibazaar-tui/internal/ui/command"
	uistate "github.com/unibazaar/unibazaar-tui/internal/ui/state"
)

// storeScroll snapshots the home grid position into the per-category
// scroll cache. Called before anything that moves away from the
// current grid.
func (m *Model) storeScroll() {
	if m.grid == nil {
		return
	}
	index, offset := m.grid.Position()
	m.scroll.Store(m.grid.CategoryID, state.Position{Index: index, Offset: offset})
}

// rebuildGrid swaps in the grid for a category and restores its cached
// scroll position, clamped against the current item count.
func (m *Model) rebuildGrid(categoryID string) {
	m.grid = uistate.NewGrid(categoryID, m.listingsFor(categoryID))
	if pos, ok := m.scroll.Restore(categoryID); ok {
		m.grid.SetPosition(pos.Index, pos.Offset, m.maxVisibleRows())
	}
}

func (m *Model) selectSection(target state.Section) {
	if m.nav.Section() == target {
		return
	}
	if m.nav.Section() == state.SectionHome {
		m.storeScroll()
	}
	m.nav.SelectSection(target)
	events.Nav.Section(target.String())
	if target == state.SectionHome {
		m.rebuildGrid(m.nav.Category())
	}
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) selectCategory(id string) {
	if m.nav.Category() == id {
		return
	}
	m.storeScroll()
	prev, err := m.nav.SelectCategory(id)
	if err != nil {
		events.Nav.Violation(err)
		m.errMsg = err.Error()
		return
	}
	events.Nav.Category(prev, id)
	m.rebuildGrid(id)
}

// cycleCategory moves the active home category left or right through
// the registry order.
func (m *Model) cycleCategory(delta int) {
	if m.nav.Section() != state.SectionHome {
		return
	}
	current := m.nav.Category()
	next := current
	if delta < 0 {
		next = m.categories.Prev(current)
	} else {
		next = m.categories.Next(current)
	}
	m.selectCategory(next)
}

// goBack applies the system back contract: dismiss the overlay first,
// then pop navigation, and only quit once the machine reports the
// signal unconsumed at the home default.
func (m *Model) goBack() tea.Cmd {
	if m.overlays.Current() != state.OverlayNone {
		m.closeOverlay()
		return nil
	}
	prevSection := m.nav.Section()
	prevCat := m.nav.Category()
	if prevSection == state.SectionHome {
		m.storeScroll()
	}
	consumed := m.nav.Back()
	events.Nav.Back(consumed)
	if !consumed {
		return tea.Quit
	}
	if m.nav.Section() == state.SectionHome && (prevSection != state.SectionHome || prevCat != m.nav.Category()) {
		m.rebuildGrid(m.nav.Category())
	}
	return nil
}

func (m *Model) pushProfile(next state.ProfileState) {
	if err := m.nav.PushProfile(next); err != nil {
		events.Nav.Violation(err)
		m.errMsg = err.Error()
		return
	}
	events.Nav.ProfilePush(next.String())
}

// toggleSave flips the bookmark for a listing and persists the change.
func (m *Model) toggleSave(id int64) {
	entry := m.saves.Toggle(id)
	events.Post.SaveToggled(id, entry.Saved, entry.Count)
	if entry.Saved {
		m.setInfo("added to watchlist")
	} else {
		m.setInfo("removed from watchlist")
	}
	m.persistListings()
}

func (m *Model) openOverlay(kind state.OverlayKind, payload *listing.Listing, onDismiss func()) bool {
	prev := m.overlays.Current()
	if err := m.overlays.Open(kind, payload, onDismiss); err != nil {
		events.Overlay.Violation(err)
		m.errMsg = err.Error()
		return false
	}
	if prev != state.OverlayNone {
		events.Overlay.Replace(prev.String(), kind.String())
	} else {
		events.Overlay.Open(kind.String())
	}
	m.errMsg = ""
	m.forceClearInfo()
	return true
}

func (m *Model) closeOverlay() {
	kind := m.overlays.Current()
	if kind == state.OverlayNone {
		return
	}
	m.overlays.Close()
	events.Overlay.Close(kind.String())
}

func (m *Model) openAdDetail(l listing.Listing) {
	m.openOverlay(state.OverlayAdDetail, &l, nil)
}

func (m *Model) openCreatePost() tea.Cmd {
	form := newCreatePostForm(m.categories.Label(m.nav.Category()), m.corner)
	if !m.openOverlay(state.OverlayCreatePost, nil, func() {
		m.createForm = nil
		m.pendingPost = nil
	}) {
		return nil
	}
	m.createForm = form
	return form.Focus()
}

func (m *Model) openLogin() tea.Cmd {
	form := newLoginForm()
	if !m.openOverlay(state.OverlayLogin, nil, func() { m.loginForm = nil }) {
		return nil
	}
	m.loginForm = form
	return form.Focus()
}

func (m *Model) openEditProfile() tea.Cmd {
	m.pushProfile(state.ProfileEditProfile)
	if m.nav.Profile() != state.ProfileEditProfile {
		return nil
	}
	m.editForm = newEditProfileForm(m.profile)
	return m.editForm.Focus()
}

func (m *Model) openLocationPicker() {
	cursor := 0
	for i, corner := range campusCorners {
		if corner == m.corner {
			cursor = i
			break
		}
	}
	if m.openOverlay(state.OverlayLocationPicker, nil, nil) {
		m.pickerCursor = cursor
	}
}

// submitCreatePost validates the form and either finalises the listing
// or defers to the image capability first. A validation failure keeps
// the overlay open with an inline error.
func (m *Model) submitCreatePost() tea.Cmd {
	f := m.createForm
	if f == nil {
		return nil
	}
	draft := listing.Listing{
		ID:          listing.NewID(),
		Title:       f.Value(cpTitle),
		Price:       f.Value(cpPrice),
		Description: f.Value(cpDescription),
		Category:    f.Value(cpCategory),
		Location:    f.Value(cpLocation),
		AuthorName:  m.profile.Name,
		CreatedAt:   time.Now(),
	}
	if draft.Location == "" {
		draft.Location = m.corner
	}
	if draft.Category == "" || !m.categories.ValidLabel(draft.Category) {
		draft.Category = m.categories.Label(category.DefaultID)
	}
	if err := listing.Validate(draft); err != nil {
		events.Post.Rejected(err.Error())
		f.SetError(err.Error())
		return nil
	}
	source := strings.TrimSpace(f.Value(cpImage))
	if source != "" && m.images != nil {
		m.pendingPost = &draft
		return m.attachImage(imageTargetPost, source)
	}
	m.finalizePost(draft)
	return nil
}

// finalizePost commits a validated listing: prepend to the store,
// refresh the visible grid, queue a save, and dismiss the overlay.
func (m *Model) finalizePost(draft listing.Listing) {
	m.listings.Prepend(listing.Normalize(draft))
	m.refreshGrid()
	m.persistListings()
	events.Post.Created(draft.ID, draft.Category)
	m.pendingPost = nil
	m.closeOverlay()
	m.setInfo(fmt.Sprintf("posted %q", draft.Title))
}

// attachImage runs the platform image capability off the UI goroutine
// through the command bus. Denial or failure resolves to ok=false and
// the flow proceeds without an image.
func (m *Model) attachImage(target imageTarget, source string) tea.Cmd {
	images := m.images
	return m.bus.Execute(command.Request{
		ID:    "image:attach",
		Label: source,
		Handler: func() tea.Msg {
			handle, ok := images.Attach(context.Background(), source, imagecap.CropRequest{Square: true, Size: 512})
			return imageAttachedMsg{target: target, handle: handle, ok: ok}
		},
	})
}

func (m *Model) handleImageAttachedMsg(msg tea.Msg) tea.Cmd {
	attached, ok := msg.(imageAttachedMsg)
	if !ok {
		return nil
	}
	if attached.ok {
		events.Post.ImageAttached(string(attached.handle))
	} else {
		events.Post.ImageDeclined()
	}
	switch attached.target {
	case imageTargetPost:
		if m.pendingPost == nil {
			return nil
		}
		draft := *m.pendingPost
		if attached.ok && len(draft.ImageHandles) < listing.MaxImages {
			draft.ImageHandles = append(draft.ImageHandles, string(attached.handle))
		}
		m.finalizePost(draft)
	case imageTargetAvatar:
		if m.pendingProfile == nil {
			return nil
		}
		profile := *m.pendingProfile
		if attached.ok {
			profile.Avatar = string(attached.handle)
		}
		m.pendingProfile = nil
		m.commitProfile(profile)
	}
	return nil
}

// submitEditProfile merges the form into the profile, keeping existing
// values for fields left blank.
func (m *Model) submitEditProfile() tea.Cmd {
	f := m.editForm
	if f == nil {
		return nil
	}
	edit := account.Profile{
		Name:   f.Value(epName),
		Handle: f.Value(epHandle),
		Bio:    f.Value(epBio),
	}
	merged := account.Merge(m.profile, edit)
	avatarSource := strings.TrimSpace(f.Value(epAvatar))
	if avatarSource != "" && avatarSource != m.profile.Avatar && m.images != nil {
		m.pendingProfile = &merged
		return m.attachImage(imageTargetAvatar, avatarSource)
	}
	m.commitProfile(merged)
	return nil
}

func (m *Model) commitProfile(p account.Profile) {
	m.profile = p
	m.editForm = nil
	events.Post.ProfileEdited(p.Handle)
	if m.nav.Profile() == state.ProfileEditProfile {
		m.nav.Back()
	}
	m.setInfo("profile updated")
}

// submitLogin is a local identity switch; there is no network auth.
func (m *Model) submitLogin() {
	f := m.loginForm
	if f == nil {
		return
	}
	username := f.Value(liUsername)
	if username == "" {
		f.SetError("username is required")
		return
	}
	m.profile.Name = username
	m.profile.Handle = "@" + strings.TrimPrefix(username, "@")
	m.closeOverlay()
	m.setInfo(fmt.Sprintf("signed in as %s", m.profile.Handle))
}

// chooseCorner commits the location-picker selection as the default
// meeting spot for new posts.
func (m *Model) chooseCorner() {
	if m.pickerCursor < 0 || m.pickerCursor >= len(campusCorners) {
		return
	}
	m.corner = campusCorners[m.pickerCursor]
	m.closeOverlay()
	m.setInfo(fmt.Sprintf("meeting spot set to %s", m.corner))
}
