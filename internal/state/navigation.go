package state

import (
	"fmt"

	"github.com/unibazaar/unibazaar-tui/internal/category"
)

// Section is a top-level navigational destination.
type Section int

const (
	SectionHome Section = iota
	SectionWatchlist
	SectionProfile
	SectionMessenger
	SectionNotification
)

func (s Section) String() string {
	switch s {
	case SectionHome:
		return "home"
	case SectionWatchlist:
		return "watchlist"
	case SectionProfile:
		return "profile"
	case SectionMessenger:
		return "messenger"
	case SectionNotification:
		return "notification"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// ProfileState is the inner sub-state of the profile section.
type ProfileState int

const (
	ProfileRoot ProfileState = iota
	ProfileSettings
	ProfileAccessibility
	ProfileDarkMode
	ProfileEditProfile
	ProfileAdDetail
)

func (p ProfileState) String() string {
	switch p {
	case ProfileRoot:
		return "profile"
	case ProfileSettings:
		return "settings"
	case ProfileAccessibility:
		return "accessibility"
	case ProfileDarkMode:
		return "dark-mode"
	case ProfileEditProfile:
		return "edit-profile"
	case ProfileAdDetail:
		return "ad-detail"
	default:
		return fmt.Sprintf("profile-state(%d)", int(p))
	}
}

// profileParent encodes the sub-state tree rooted at ProfileRoot, so
// Back is a table lookup rather than a case ladder.
var profileParent = map[ProfileState]ProfileState{
	ProfileSettings:      ProfileRoot,
	ProfileAccessibility: ProfileSettings,
	ProfileDarkMode:      ProfileSettings,
	ProfileEditProfile:   ProfileRoot,
	ProfileAdDetail:      ProfileRoot,
}

// ErrInvalidTransition marks a navigation call made outside its valid
// context. These are programming errors: logged no-ops in production,
// panics in strict mode.
type ErrInvalidTransition struct {
	Op     string
	Detail string
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid navigation transition %s: %s", e.Op, e.Detail)
}

// Navigator tracks the active section, the home sub-category, and the
// profile sub-state. It is owned by the orchestrator and mutated only
// from the UI goroutine.
type Navigator struct {
	section  Section
	cat      string
	profile  ProfileState
	strict   bool
	onSwitch func(prev Section)
}

// NewNavigator returns the initial machine: home, default category,
// profile root.
func NewNavigator(strict bool) *Navigator {
	return &Navigator{section: SectionHome, cat: category.DefaultID, profile: ProfileRoot, strict: strict}
}

// OnSectionSwitch registers a hook run after every section change,
// used to clear highlight state tied to the previous section.
func (n *Navigator) OnSectionSwitch(fn func(prev Section)) {
	n.onSwitch = fn
}

// Section returns the active top-level section.
func (n *Navigator) Section() Section { return n.section }

// Category returns the active home sub-category ID.
func (n *Navigator) Category() string { return n.cat }

// Profile returns the current profile sub-state.
func (n *Navigator) Profile() ProfileState { return n.profile }

// SelectSection activates a top-level section. Entering home via the
// bottom navigation resets the sub-category to the default sentinel;
// leaving profile resets the sub-state to the root.
func (n *Navigator) SelectSection(s Section) {
	prev := n.section
	n.section = s
	if s == SectionHome {
		n.cat = category.DefaultID
	}
	if s != SectionProfile {
		n.profile = ProfileRoot
	}
	if n.onSwitch != nil && prev != s {
		n.onSwitch(prev)
	}
}

// SelectCategory switches the home sub-category and returns the
// previous one so the caller can save its scroll slot before
// restoring the new one. Valid only while home is active.
func (n *Navigator) SelectCategory(id string) (prev string, err error) {
	if n.section != SectionHome {
		return n.cat, n.violation("selectSubSection", fmt.Sprintf("top section is %s", n.section))
	}
	prev = n.cat
	n.cat = id
	return prev, nil
}

// PushProfile descends the profile sub-state tree. Valid only while
// the profile section is active and only along tree edges.
func (n *Navigator) PushProfile(next ProfileState) error {
	if n.section != SectionProfile {
		return n.violation("pushProfileSubState", fmt.Sprintf("top section is %s", n.section))
	}
	parent, ok := profileParent[next]
	if !ok {
		return n.violation("pushProfileSubState", fmt.Sprintf("%s is not reachable", next))
	}
	if parent != n.profile {
		return n.violation("pushProfileSubState", fmt.Sprintf("%s is not a child of %s", next, n.profile))
	}
	n.profile = next
	return nil
}

// Back applies the system back contract: pop the profile tree first,
// then fall back to home, then no-op. The return value reports
// whether the signal was consumed; false means the platform default
// (exit) applies.
func (n *Navigator) Back() bool {
	if n.section == SectionProfile && n.profile != ProfileRoot {
		n.profile = profileParent[n.profile]
		return true
	}
	if n.section != SectionHome {
		n.SelectSection(SectionHome)
		return true
	}
	if n.cat != category.DefaultID {
		n.cat = category.DefaultID
		return true
	}
	return false
}

// BackEnabled reports whether the back interceptor should be armed:
// anywhere other than home with the default category.
func (n *Navigator) BackEnabled() bool {
	return n.section != SectionHome || n.cat != category.DefaultID
}

func (n *Navigator) violation(op, detail string) error {
	err := &ErrInvalidTransition{Op: op, Detail: detail}
	if n.strict {
		panic(err)
	}
	return err
}
