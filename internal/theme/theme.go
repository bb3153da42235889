package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading           *lipgloss.Style
	Item              *lipgloss.Style
	ItemIndicator     *lipgloss.Style
	SelectedItem      *lipgloss.Style
	SavedMarker       *lipgloss.Style
	Price             *lipgloss.Style
	Meta              *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Tab               *lipgloss.Style
	ActiveTab         *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	DetailTitle       *lipgloss.Style
	DetailBody        *lipgloss.Style
	OverlayTitle      *lipgloss.Style
	FormLabel         *lipgloss.Style
	FormFocused       *lipgloss.Style

	badges map[string]*lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SavedMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Price: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
	),
	Meta: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	DetailTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	DetailBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	OverlayTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	FormLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FormFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	badges: map[string]*lipgloss.Style{
		"neutral":   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("250"))),
		"items":     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		"sublets":   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("135"))),
		"rescues":   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("203"))),
		"textbooks": ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("178"))),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Badge resolves a category style token to its badge style, falling
// back to the neutral badge for unknown tokens.
func (s *Styles) Badge(token string) *lipgloss.Style {
	if style, ok := s.badges[token]; ok {
		return style
	}
	return s.badges["neutral"]
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
