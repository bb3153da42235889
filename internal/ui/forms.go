package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unibazaar/unibazaar-tui/internal/account"
)

// form is a vertical stack of labelled text inputs with one focused
// field. Enter on the last field submits; esc cancels.
type form struct {
	title  string
	help   string
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
}

type fieldSpec struct {
	label       string
	placeholder string
	initial     string
	secret      bool
	limit       int
}

func newForm(title, help string, specs []fieldSpec) *form {
	f := &form{title: title, help: help}
	for i, spec := range specs {
		in := textinput.New()
		in.Placeholder = spec.placeholder
		in.SetValue(spec.initial)
		in.Prompt = "> "
		if spec.secret {
			in.EchoMode = textinput.EchoPassword
		}
		if spec.limit > 0 {
			in.CharLimit = spec.limit
		}
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, spec.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

// Update feeds a message to the form. done reports submission, cancel
// reports dismissal; both leave the form inert afterwards.
func (f *form) Update(msg tea.Msg) (cmd tea.Cmd, done, cancel bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg), false, false
	}
	switch keyMsg.String() {
	case "esc":
		return nil, false, true
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return nil, true, false
		}
		return f.setFocus(f.focus + 1), false, false
	case "tab", "down":
		return f.setFocus((f.focus + 1) % len(f.inputs)), false, false
	case "shift+tab", "up":
		return f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs)), false, false
	}
	return f.updateFocused(msg), false, false
}

func (f *form) updateFocused(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) setFocus(i int) tea.Cmd {
	if i < 0 || i >= len(f.inputs) {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

// Focus arms the cursor blink on the focused field.
func (f *form) Focus() tea.Cmd {
	if f.focus < 0 || f.focus >= len(f.inputs) {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

// Value returns the trimmed content of field i.
func (f *form) Value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) SetError(err string) {
	f.err = err
}

// View renders the form body: title, fields, error, help.
func (f *form) View() string {
	lines := []string{styles.OverlayTitle.Render(f.title), ""}
	for i := range f.inputs {
		label := styles.FormLabel.Render(f.labels[i])
		if i == f.focus {
			label = styles.FormFocused.Render(f.labels[i])
		}
		lines = append(lines, label, f.inputs[i].View())
	}
	if f.err != "" {
		lines = append(lines, "", styles.Error.Render(f.err))
	}
	lines = append(lines, "", styles.Footer.Render(f.help))
	return strings.Join(lines, "\n")
}

// Field order of the create-post form.
const (
	cpTitle = iota
	cpPrice
	cpDescription
	cpCategory
	cpLocation
	cpImage
)

func newCreatePostForm(defaultCategory, defaultLocation string) *form {
	return newForm(
		"New listing",
		"enter: next field · enter on last: post · esc: cancel",
		[]fieldSpec{
			{label: "Title", placeholder: "What are you offering?", limit: 80},
			{label: "Price", placeholder: "$0 or Free"},
			{label: "Description", placeholder: "Details buyers should know"},
			{label: "Category", initial: defaultCategory},
			{label: "Location", initial: defaultLocation, placeholder: "Where to meet"},
			{label: "Image path", placeholder: "optional: path to a photo"},
		},
	)
}

// Field order of the edit-profile form.
const (
	epName = iota
	epHandle
	epBio
	epAvatar
)

func newEditProfileForm(p account.Profile) *form {
	return newForm(
		"Edit profile",
		"enter: next field · enter on last: save · esc: cancel",
		[]fieldSpec{
			{label: "Name", initial: p.Name, limit: 60},
			{label: "Handle", initial: p.Handle, limit: 30},
			{label: "Bio", initial: p.Bio},
			{label: "Avatar path", placeholder: "optional: path to an image"},
		},
	)
}

// Field order of the login form.
const (
	liUsername = iota
	liPassword
)

func newLoginForm() *form {
	return newForm(
		"Sign in",
		"enter: next field · enter on last: sign in · esc: cancel",
		[]fieldSpec{
			{label: "Username", placeholder: "you@campus"},
			{label: "Password", secret: true},
		},
	)
}
