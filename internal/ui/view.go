package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/unibazaar/unibazaar-tui/internal/format/table"
	"github.com/unibazaar/unibazaar-tui/internal/listing"
	"github.com/unibazaar/unibazaar-tui/internal/state"
)

const (
	headerSeparator = " → "
	appTitle        = "unibazaar"

	detailPanelMinWidth = 40  // minimum cols for the detail panel; below this no split
	detailPanelFraction = 0.6 // fraction of total width given to the detail panel
)

const (
	profileItemListings = "My listings"
	profileItemEdit     = "Edit profile"
	profileItemSettings = "Settings"

	settingsItemAccessibility = "Accessibility"
	settingsItemDarkMode      = "Dark mode"
)

func profileRootItems() []string {
	return []string{profileItemListings, profileItemEdit, profileItemSettings}
}

func profileSettingsItems() []string {
	return []string{settingsItemAccessibility, settingsItemDarkMode}
}

var detailBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.header()
	switch m.overlays.Current() {
	case state.OverlayCreatePost:
		if m.createForm != nil {
			return m.viewFormWithHeader(header, m.createForm)
		}
	case state.OverlayLogin:
		if m.loginForm != nil {
			return m.viewFormWithHeader(header, m.loginForm)
		}
	case state.OverlayLocationPicker:
		return m.viewLocationPicker(header)
	case state.OverlayAdDetail:
		if payload := m.overlays.Payload(); payload != nil {
			if m.detailPanelWidth() > 0 && m.nav.Section() == state.SectionHome {
				return m.viewSideBySide(header, *payload)
			}
			return m.viewAdDetail(header, *payload)
		}
	}
	if m.editFormActive() {
		return m.viewFormWithHeader(header, m.editForm)
	}
	switch m.nav.Section() {
	case state.SectionHome:
		return m.viewHome(header)
	case state.SectionWatchlist:
		return m.viewWatchlist(header)
	case state.SectionProfile:
		return m.viewProfile(header)
	default:
		return m.viewPlaceholder(header)
	}
}

// header builds the breadcrumb for the current navigation position.
func (m *Model) header() string {
	segments := []string{appTitle, m.nav.Section().String()}
	if m.nav.Section() == state.SectionHome {
		segments = append(segments, strings.ToLower(m.categories.Label(m.nav.Category())))
	}
	if m.nav.Section() == state.SectionProfile && m.nav.Profile() != state.ProfileRoot {
		segments = append(segments, m.nav.Profile().String())
	}
	if kind := m.overlays.Current(); kind != state.OverlayNone {
		segments = append(segments, kind.String())
	}
	return strings.Join(segments, headerSeparator)
}

// sectionTabs renders the bottom-navigation analog: one tab per
// section with the active one highlighted.
func (m *Model) sectionTabs() string {
	sections := []state.Section{
		state.SectionHome,
		state.SectionWatchlist,
		state.SectionProfile,
		state.SectionMessenger,
		state.SectionNotification,
	}
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		label := s.String()
		if s == m.nav.Section() {
			parts = append(parts, styles.ActiveTab.Render(label))
		} else {
			parts = append(parts, styles.Tab.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

// categoryTabs renders the home category row.
func (m *Model) categoryTabs() string {
	parts := make([]string, 0, 8)
	for _, c := range m.categories.All() {
		label := c.Label
		if c.ID == m.nav.Category() {
			parts = append(parts, styles.ActiveTab.Render(label))
		} else {
			badge := styles.Badge(c.StyleToken)
			parts = append(parts, badge.Render(label))
		}
	}
	return strings.Join(parts, " | ")
}

func (m *Model) viewHome(header string) string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: header, style: styles.Header})
	lines = append(lines, styledLine{text: m.sectionTabs()})
	lines = append(lines, styledLine{text: m.categoryTabs()})
	lines = append(lines, m.gridLines(m.width)...)
	lines = m.appendStatusLines(lines)
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	promptText := m.filterPrompt()
	bottomLines := []styledLine{
		statusLine,
		{text: promptText},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// gridLines renders the visible window of the home grid.
func (m *Model) gridLines(width int) []styledLine {
	lines := make([]styledLine, 0, 16)
	if m.loading && len(m.grid.Items) == 0 {
		lines = append(lines, styledLine{text: "Loading listings…", style: styles.Loading})
		return lines
	}
	m.syncViewport()
	start := 0
	displayItems := m.grid.Items
	if maxItems := m.maxVisibleRows(); maxItems > 0 && len(displayItems) > maxItems {
		start = m.grid.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(displayItems) {
			start = len(displayItems) - maxItems
			if start < 0 {
				start = 0
			}
			m.grid.ViewportOffset = start
		}
		displayItems = displayItems[start : start+maxItems]
	}
	if len(m.grid.Items) == 0 {
		msg := "(no listings yet)"
		if m.grid.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.grid.Filter)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
		return lines
	}
	for i, l := range displayItems {
		idx := start + i
		lines = append(lines, m.buildListingLine(l, idx == m.grid.Cursor, width))
	}
	return lines
}

// buildListingLine constructs a single styledLine for a grid row.
func (m *Model) buildListingLine(l listing.Listing, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItem
		lineStyle = styles.SelectedItem
	}
	marker := "  "
	if m.saves.Get(l.ID).Saved {
		marker = "♥ "
	}
	meta := fmt.Sprintf("%s · %s", l.Category, humanize.Time(l.CreatedAt))
	fullText := fmt.Sprintf("%s %s%s  %s  %s", indicator, marker, l.Title, l.Price, meta)
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) viewWatchlist(header string) string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: header, style: styles.Header})
	lines = append(lines, styledLine{text: m.sectionTabs()})
	saved := m.savedListings()
	if len(saved) == 0 {
		lines = append(lines, styledLine{text: "(nothing saved yet — press ctrl+s on a listing)", style: styles.Info})
	}
	for i, l := range saved {
		lines = append(lines, m.buildListingLine(l, i == m.watchCursor, m.width))
	}
	return m.finishView(lines)
}

func (m *Model) viewProfile(header string) string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: header, style: styles.Header})
	lines = append(lines, styledLine{text: m.sectionTabs()})
	switch m.nav.Profile() {
	case state.ProfileRoot:
		lines = append(lines, m.profileSummaryLines()...)
		lines = append(lines, styledLine{})
		for i, item := range profileRootItems() {
			lines = append(lines, m.buildMenuLine(item, i == m.profileCursor, m.width))
		}
	case state.ProfileSettings:
		for i, item := range profileSettingsItems() {
			lines = append(lines, m.buildMenuLine(item, i == m.settingsCursor, m.width))
		}
	case state.ProfileAccessibility:
		lines = append(lines, styledLine{text: "Accessibility", style: styles.DetailTitle})
		lines = append(lines, styledLine{text: fmt.Sprintf("Large text: %s (enter toggles)", onOff(m.largeText)), style: styles.DetailBody})
	case state.ProfileDarkMode:
		lines = append(lines, styledLine{text: "Dark mode", style: styles.DetailTitle})
		lines = append(lines, styledLine{text: fmt.Sprintf("Dark mode: %s (enter toggles)", onOff(m.darkMode)), style: styles.DetailBody})
	case state.ProfileAdDetail:
		mine := m.listings.UserEntries()
		if len(mine) == 0 {
			lines = append(lines, styledLine{text: "(you haven't posted anything yet)", style: styles.Info})
		}
		for i, l := range mine {
			lines = append(lines, m.buildListingLine(l, i == m.profileCursor, m.width))
		}
	}
	return m.finishView(lines)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m *Model) profileSummaryLines() []styledLine {
	rows := [][2]string{
		{"Name", m.profile.Name},
		{"Handle", m.profile.Handle},
	}
	if m.profile.Bio != "" {
		rows = append(rows, [2]string{"Bio", m.profile.Bio})
	}
	if m.profile.Avatar != "" {
		rows = append(rows, [2]string{"Avatar", m.profile.Avatar})
	}
	rows = append(rows, [2]string{"Posted", fmt.Sprintf("%d", len(m.listings.UserEntries()))})
	rows = append(rows, [2]string{"Saved", fmt.Sprintf("%d", len(m.saves.SavedIDs()))})
	lines := make([]styledLine, 0, len(rows))
	for _, row := range table.KeyValues(rows) {
		lines = append(lines, styledLine{text: row, style: styles.DetailBody})
	}
	return lines
}

func (m *Model) buildMenuLine(label string, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItem
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{text: fullText, style: lineStyle, prefixStyle: indicatorStyle, highlightFrom: 1}
}

func (m *Model) viewPlaceholder(header string) string {
	lines := []styledLine{
		{text: header, style: styles.Header},
		{text: m.sectionTabs()},
		{},
		{text: fmt.Sprintf("%s isn't wired up yet — check back soon.", m.nav.Section()), style: styles.Info},
	}
	return m.finishView(lines)
}

func (m *Model) viewLocationPicker(header string) string {
	lines := make([]styledLine, 0, 12)
	lines = append(lines, styledLine{text: header, style: styles.Header})
	lines = append(lines, styledLine{text: "Pick a meeting spot", style: styles.OverlayTitle})
	lines = append(lines, styledLine{})
	for i, corner := range campusCorners {
		lines = append(lines, m.buildMenuLine(corner, i == m.pickerCursor, m.width))
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: "↑/↓ move  enter choose  esc cancel", style: styles.Footer})
	return m.finishView(lines)
}

func (m *Model) viewFormWithHeader(header string, f *form) string {
	lines := []styledLine{{text: header, style: styles.Header}, {}}
	lines = applyWidth(lines, m.width)
	body := f.View()
	out := renderLines(lines) + "\n" + body
	if m.errMsg != "" {
		out += "\n" + styles.Error.Render(fmt.Sprintf("Error: %s", m.errMsg))
	}
	return out
}

// detailLines renders a listing in full for the ad-detail overlay.
func (m *Model) detailLines(l listing.Listing, width int) []styledLine {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: l.Title, style: styles.DetailTitle})
	lines = append(lines, styledLine{text: l.Price, style: styles.Price})
	lines = append(lines, styledLine{})
	rows := [][2]string{
		{"Category", l.Category},
		{"Location", l.Location},
		{"Seller", l.AuthorName},
		{"Posted", humanize.Time(l.CreatedAt)},
	}
	if len(l.ImageHandles) > 0 {
		rows = append(rows, [2]string{"Photos", fmt.Sprintf("%d attached", len(l.ImageHandles))})
	}
	for _, row := range table.KeyValues(rows) {
		lines = append(lines, styledLine{text: row, style: styles.DetailBody})
	}
	if l.Description != "" {
		lines = append(lines, styledLine{})
		wrapWidth := width
		if wrapWidth <= 0 {
			wrapWidth = 72
		}
		for _, line := range strings.Split(wordwrap.String(l.Description, wrapWidth), "\n") {
			lines = append(lines, styledLine{text: line, style: styles.DetailBody})
		}
	}
	entry := m.saves.Get(l.ID)
	lines = append(lines, styledLine{})
	if entry.Saved {
		lines = append(lines, styledLine{text: "♥ on your watchlist", style: styles.SavedMarker})
	}
	lines = append(lines, styledLine{text: "ctrl+s save  enter close  esc back", style: styles.Footer})
	return lines
}

func (m *Model) viewAdDetail(header string, l listing.Listing) string {
	lines := make([]styledLine, 0, 20)
	lines = append(lines, styledLine{text: header, style: styles.Header})
	lines = append(lines, styledLine{})
	lines = append(lines, m.detailLines(l, m.width)...)
	return m.finishView(lines)
}

// detailPanelWidth returns the width in columns for the right-hand
// detail panel, 0 when the terminal is too narrow to split.
func (m *Model) detailPanelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * detailPanelFraction)
	if w < detailPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) gridColumnWidth() int {
	return m.width - m.detailPanelWidth()
}

// viewSideBySide renders the grid on the left with the ad detail panel
// on the right, for terminals wide enough to split.
func (m *Model) viewSideBySide(header string, l listing.Listing) string {
	gridW := m.gridColumnWidth()
	panelW := m.detailPanelWidth()

	contentLines := make([]styledLine, 0, 16)
	contentLines = append(contentLines, styledLine{text: header, style: styles.Header})
	contentLines = append(contentLines, styledLine{text: m.sectionTabs()})
	contentLines = append(contentLines, styledLine{text: m.categoryTabs()})
	contentLines = append(contentLines, m.gridLines(gridW)...)

	panelH := m.height - 1
	if panelH < 1 {
		panelH = 1
	}
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}

	contentLines = applyWidth(contentLines, gridW)
	leftStr := renderLines(contentLines)

	// Pad every rendered row to exactly gridW visible columns so
	// JoinHorizontal keeps the panel flush to the right edge.
	leftRows := strings.Split(leftStr, "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > gridW {
			leftRows[i] = truncate.StringWithTail(row, uint(gridW-1), "…")
		} else if w < gridW {
			leftRows[i] = row + strings.Repeat(" ", gridW-w)
		}
	}
	leftStr = strings.Join(leftRows, "\n")

	rightStr := m.renderDetailPanel(l, panelW, panelH)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)
}

// renderDetailPanel draws the bordered detail box with exactly height
// rows and totalWidth columns.
func (m *Model) renderDetailPanel(l listing.Listing, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	titleSeg := " " + truncateText(l.Title, innerW-2) + " "
	dashes := totalWidth - 4 - len([]rune(titleSeg))
	if dashes < 0 {
		titleSeg = " … "
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	topLine := detailBorderStyle.Render(tlc+hz) +
		styles.DetailTitle.Render(titleSeg) +
		detailBorderStyle.Render(strings.Repeat(hz, dashes)+hz+trc)
	bottomLine := detailBorderStyle.Render(blc + strings.Repeat(hz, innerW) + brc)

	body := m.detailLines(l, innerW)
	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		var style *lipgloss.Style
		if i+1 < len(body) { // body[0] is the title, already in the border
			content = body[i+1].text
			style = body[i+1].style
		}
		content = truncateText(content, innerW)
		if pad := innerW - len([]rune(content)); pad > 0 {
			content += strings.Repeat(" ", pad)
		}
		if style != nil {
			content = style.Render(content)
		}
		rows = append(rows, detailBorderStyle.Render(vt)+content+detailBorderStyle.Render(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// appendStatusLines adds the transient info message and footer.
func (m *Model) appendStatusLines(lines []styledLine) []styledLine {
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  ←/→ category  enter open  ctrl+s save  ctrl+n post  tab section  esc back  ctrl+c quit", style: styles.Footer})
	}
	return lines
}

// finishView applies the shared status/footer/error trailer used by
// the non-grid sections.
func (m *Model) finishView(lines []styledLine) string {
	lines = m.appendStatusLines(lines)
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottom := applyWidth([]styledLine{statusLine}, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.grid.Filter
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.grid.FilterCursorPos()
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before := render(styles.Filter, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

// maxVisibleRows reports how many grid rows fit between the header
// block and the bottom bar.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	used += 3 // header + section tabs + category tabs
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{
			text:          truncateText(line.text, width),
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
