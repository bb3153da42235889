package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unibazaar/unibazaar-tui/internal/logging/events"
	"github.com/unibazaar/unibazaar-tui/internal/state"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if m.grid == nil {
		return
	}
	if before != m.grid.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleActiveForm routes messages to whichever form is on screen.
// Backend and resize messages always fall through to the handler map
// so async loads keep flowing while a form is open.
func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch msg.(type) {
	case backendEventMsg, backendDoneMsg, imageAttachedMsg, tea.WindowSizeMsg:
		return false, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return false, nil
	}
	switch {
	case m.overlays.IsOpen(state.OverlayCreatePost) && m.createForm != nil:
		return m.handleCreatePostForm(msg)
	case m.overlays.IsOpen(state.OverlayLogin) && m.loginForm != nil:
		return m.handleLoginForm(msg)
	case m.editFormActive():
		return m.handleEditProfileForm(msg)
	default:
		return false, nil
	}
}

func (m *Model) editFormActive() bool {
	return m.overlays.Current() == state.OverlayNone &&
		m.nav.Section() == state.SectionProfile &&
		m.nav.Profile() == state.ProfileEditProfile &&
		m.editForm != nil
}

func (m *Model) handleCreatePostForm(msg tea.Msg) (bool, tea.Cmd) {
	cmd, done, cancel := m.createForm.Update(msg)
	if cancel {
		m.closeOverlay()
		return true, cmd
	}
	if done {
		if submitCmd := m.submitCreatePost(); submitCmd != nil {
			return true, submitCmd
		}
		return true, cmd
	}
	return true, cmd
}

func (m *Model) handleLoginForm(msg tea.Msg) (bool, tea.Cmd) {
	cmd, done, cancel := m.loginForm.Update(msg)
	if cancel {
		m.closeOverlay()
		return true, cmd
	}
	if done {
		m.submitLogin()
	}
	return true, cmd
}

func (m *Model) handleEditProfileForm(msg tea.Msg) (bool, tea.Cmd) {
	cmd, done, cancel := m.editForm.Update(msg)
	if cancel {
		m.editForm = nil
		return true, m.goBack()
	}
	if done {
		if submitCmd := m.submitEditProfile(); submitCmd != nil {
			return true, submitCmd
		}
		return true, cmd
	}
	return true, cmd
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.goBack()
	}
	if m.overlays.Current() != state.OverlayNone {
		return m.handleOverlayKey(keyMsg)
	}
	switch keyMsg.String() {
	case "tab":
		m.selectSection(nextSection(m.nav.Section(), 1))
		return nil
	case "shift+tab":
		m.selectSection(nextSection(m.nav.Section(), -1))
		return nil
	case "ctrl+n":
		return m.openCreatePost()
	case "ctrl+o":
		return m.openLogin()
	case "ctrl+g":
		m.openLocationPicker()
		return nil
	}
	switch m.nav.Section() {
	case state.SectionHome:
		return m.handleHomeKey(keyMsg)
	case state.SectionWatchlist:
		return m.handleWatchlistKey(keyMsg)
	case state.SectionProfile:
		return m.handleProfileKey(keyMsg)
	}
	return nil
}

func nextSection(s state.Section, delta int) state.Section {
	order := []state.Section{
		state.SectionHome,
		state.SectionWatchlist,
		state.SectionProfile,
		state.SectionMessenger,
		state.SectionNotification,
	}
	for i, candidate := range order {
		if candidate == s {
			return order[(i+delta+len(order))%len(order)]
		}
	}
	return state.SectionHome
}

func (m *Model) handleOverlayKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch m.overlays.Current() {
	case state.OverlayAdDetail:
		switch keyMsg.String() {
		case "ctrl+s", "s":
			if payload := m.overlays.Payload(); payload != nil {
				m.toggleSave(payload.ID)
			}
		case "enter", "q":
			m.closeOverlay()
		}
	case state.OverlayLocationPicker:
		switch keyMsg.String() {
		case "up":
			if m.pickerCursor > 0 {
				m.pickerCursor--
			} else {
				m.pickerCursor = len(campusCorners) - 1
			}
		case "down":
			if m.pickerCursor < len(campusCorners)-1 {
				m.pickerCursor++
			} else {
				m.pickerCursor = 0
			}
		case "enter":
			m.chooseCorner()
		}
	}
	return nil
}

func (m *Model) handleHomeKey(keyMsg tea.KeyMsg) tea.Cmd {
	if m.handleFilterInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "enter":
		if current, ok := m.grid.Current(); ok {
			m.openAdDetail(current)
		}
		return nil
	case "ctrl+s":
		if current, ok := m.grid.Current(); ok {
			m.toggleSave(current.ID)
		}
		return nil
	case "left":
		m.cycleCategory(-1)
		return nil
	case "right":
		m.cycleCategory(1)
		return nil
	case "up":
		if m.grid.MoveCursorUp() {
			m.syncViewport()
		}
		return nil
	case "down":
		if m.grid.MoveCursorDown() {
			m.syncViewport()
		}
		return nil
	case "pgup":
		m.grid.MoveCursorPageUp(m.maxVisibleRows())
		m.syncViewport()
		return nil
	case "pgdown":
		m.grid.MoveCursorPageDown(m.maxVisibleRows())
		m.syncViewport()
		return nil
	case "home":
		m.grid.MoveCursorHome()
		m.syncViewport()
		return nil
	case "end":
		m.grid.MoveCursorEnd()
		m.syncViewport()
		return nil
	}
	return nil
}

func (m *Model) syncViewport() {
	if m.grid == nil {
		return
	}
	m.grid.EnsureCursorVisible(m.maxVisibleRows())
}

func (m *Model) handleWatchlistKey(keyMsg tea.KeyMsg) tea.Cmd {
	saved := m.savedListings()
	if m.watchCursor > len(saved)-1 {
		m.watchCursor = len(saved) - 1
	}
	if m.watchCursor < 0 {
		m.watchCursor = 0
	}
	switch keyMsg.String() {
	case "up":
		if m.watchCursor > 0 {
			m.watchCursor--
		}
	case "down":
		if m.watchCursor < len(saved)-1 {
			m.watchCursor++
		}
	case "enter":
		if m.watchCursor < len(saved) {
			m.openAdDetail(saved[m.watchCursor])
		}
	case "ctrl+s", "s":
		if m.watchCursor < len(saved) {
			m.toggleSave(saved[m.watchCursor].ID)
		}
	}
	return nil
}

func (m *Model) handleProfileKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch m.nav.Profile() {
	case state.ProfileRoot:
		return m.handleProfileRootKey(keyMsg)
	case state.ProfileSettings:
		return m.handleProfileSettingsKey(keyMsg)
	case state.ProfileAccessibility:
		if keyMsg.String() == "enter" || keyMsg.String() == " " {
			m.largeText = !m.largeText
			m.setInfo(boolToggleMessage("large text", m.largeText))
		}
	case state.ProfileDarkMode:
		if keyMsg.String() == "enter" || keyMsg.String() == " " {
			m.darkMode = !m.darkMode
			m.setInfo(boolToggleMessage("dark mode", m.darkMode))
		}
	case state.ProfileAdDetail:
		return m.handleMyListingsKey(keyMsg)
	}
	return nil
}

func boolToggleMessage(name string, on bool) string {
	if on {
		return name + " on"
	}
	return name + " off"
}

func (m *Model) handleProfileRootKey(keyMsg tea.KeyMsg) tea.Cmd {
	items := profileRootItems()
	switch keyMsg.String() {
	case "up":
		if m.profileCursor > 0 {
			m.profileCursor--
		}
	case "down":
		if m.profileCursor < len(items)-1 {
			m.profileCursor++
		}
	case "enter":
		switch items[m.profileCursor] {
		case profileItemListings:
			m.pushProfile(state.ProfileAdDetail)
		case profileItemEdit:
			return m.openEditProfile()
		case profileItemSettings:
			m.pushProfile(state.ProfileSettings)
			m.settingsCursor = 0
		}
	}
	return nil
}

func (m *Model) handleProfileSettingsKey(keyMsg tea.KeyMsg) tea.Cmd {
	items := profileSettingsItems()
	switch keyMsg.String() {
	case "up":
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case "down":
		if m.settingsCursor < len(items)-1 {
			m.settingsCursor++
		}
	case "enter":
		switch items[m.settingsCursor] {
		case settingsItemAccessibility:
			m.pushProfile(state.ProfileAccessibility)
		case settingsItemDarkMode:
			m.pushProfile(state.ProfileDarkMode)
		}
	}
	return nil
}

func (m *Model) handleMyListingsKey(keyMsg tea.KeyMsg) tea.Cmd {
	mine := m.listings.UserEntries()
	if m.profileCursor > len(mine)-1 {
		m.profileCursor = len(mine) - 1
	}
	if m.profileCursor < 0 {
		m.profileCursor = 0
	}
	switch keyMsg.String() {
	case "up":
		if m.profileCursor > 0 {
			m.profileCursor--
		}
	case "down":
		if m.profileCursor < len(mine)-1 {
			m.profileCursor++
		}
	case "enter":
		if m.profileCursor < len(mine) {
			m.openAdDetail(mine[m.profileCursor])
		}
	}
	return nil
}

// handleFilterInput applies typed characters to the home grid filter,
// keeping search interactive while the grid has focus.
func (m *Model) handleFilterInput(msg tea.KeyMsg) bool {
	if m.loading || m.grid == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if m.grid.Filter == "" {
			return false
		}
		before := m.grid.FilterCursorPos()
		m.grid.SetFilter("", 0)
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.Cleared(m.grid.CategoryID)
		m.syncViewport()
		return true
	case "ctrl+w":
		before := m.grid.FilterCursorPos()
		if !m.grid.DeleteFilterWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.WordBackspace(m.grid.CategoryID, m.grid.Filter)
		m.syncViewport()
		return true
	case "ctrl+a":
		before := m.grid.FilterCursorPos()
		if !m.grid.MoveFilterCursorStart() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.grid.CategoryID, m.grid.FilterCursor)
		return true
	case "ctrl+e":
		before := m.grid.FilterCursorPos()
		if !m.grid.MoveFilterCursorEnd() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.grid.CategoryID, m.grid.FilterCursor)
		return true
	case "alt+b":
		before := m.grid.FilterCursorPos()
		if !m.grid.MoveFilterCursorWordBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(m.grid.CategoryID, m.grid.FilterCursor)
		return true
	case "alt+f":
		before := m.grid.FilterCursorPos()
		if !m.grid.MoveFilterCursorWordForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.CursorWord(m.grid.CategoryID, m.grid.FilterCursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune()
	case tea.KeyRunes:
		if msg.Alt {
			return false
		}
		if len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
			if unicode.IsSpace(r) {
				// allow the dedicated space handler to manage spaces
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyLeft:
		if m.grid.Filter == "" {
			// bare left/right cycle categories instead
			return false
		}
		before := m.grid.FilterCursorPos()
		if !m.grid.MoveFilterCursorRuneBackward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.grid.CategoryID, m.grid.FilterCursor)
		return true
	case tea.KeyRight:
		if m.grid.Filter == "" {
			return false
		}
		before := m.grid.FilterCursorPos()
		if !m.grid.MoveFilterCursorRuneForward() {
			return false
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.grid.CategoryID, m.grid.FilterCursor)
		return true
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	if text == "" || m.grid == nil {
		return false
	}
	before := m.grid.FilterCursorPos()
	if !m.grid.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(m.grid.CategoryID, m.grid.Filter)
	m.syncViewport()
	return true
}

func (m *Model) removeFilterRune() bool {
	if m.grid == nil {
		return false
	}
	before := m.grid.FilterCursorPos()
	if !m.grid.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Backspace(m.grid.CategoryID, m.grid.Filter)
	m.syncViewport()
	return true
}
