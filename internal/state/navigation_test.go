package state

import (
	"errors"
	"testing"

	"github.com/unibazaar/unibazaar-tui/internal/category"
)

func TestNavigatorInitialState(t *testing.T) {
	n := NewNavigator(false)
	if n.Section() != SectionHome {
		t.Fatalf("expected home, got %s", n.Section())
	}
	if n.Category() != category.DefaultID {
		t.Fatalf("expected default category, got %q", n.Category())
	}
	if n.Profile() != ProfileRoot {
		t.Fatalf("expected profile root, got %s", n.Profile())
	}
}

func TestSelectSectionResetsCategoryAndProfile(t *testing.T) {
	n := NewNavigator(false)
	if _, err := n.SelectCategory("sublets"); err != nil {
		t.Fatalf("select category failed: %v", err)
	}
	n.SelectSection(SectionProfile)
	if err := n.PushProfile(ProfileEditProfile); err != nil {
		t.Fatalf("push edit-profile failed: %v", err)
	}

	n.SelectSection(SectionWatchlist)
	if n.Profile() != ProfileRoot {
		t.Fatalf("leaving profile must reset sub-state, got %s", n.Profile())
	}

	n.SelectSection(SectionProfile)
	if n.Profile() != ProfileRoot {
		t.Fatalf("re-entering profile must start at root, got %s", n.Profile())
	}

	n.SelectSection(SectionHome)
	if n.Category() != category.DefaultID {
		t.Fatalf("entering home must reset category, got %q", n.Category())
	}
}

func TestSelectCategoryReturnsPrevious(t *testing.T) {
	n := NewNavigator(false)
	prev, err := n.SelectCategory("items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != category.DefaultID {
		t.Fatalf("expected previous default, got %q", prev)
	}
	prev, err = n.SelectCategory("textbooks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != "items" {
		t.Fatalf("expected previous items, got %q", prev)
	}
}

func TestSelectCategoryOutsideHomeIsAnError(t *testing.T) {
	n := NewNavigator(false)
	n.SelectSection(SectionMessenger)
	if _, err := n.SelectCategory("items"); err == nil {
		t.Fatalf("expected invalid transition error")
	} else {
		var inv *ErrInvalidTransition
		if !errors.As(err, &inv) {
			t.Fatalf("expected ErrInvalidTransition, got %T", err)
		}
	}
}

func TestPushProfileFollowsTree(t *testing.T) {
	n := NewNavigator(false)
	n.SelectSection(SectionProfile)
	if err := n.PushProfile(ProfileSettings); err != nil {
		t.Fatalf("profile→settings failed: %v", err)
	}
	if err := n.PushProfile(ProfileDarkMode); err != nil {
		t.Fatalf("settings→dark-mode failed: %v", err)
	}
	if err := n.PushProfile(ProfileEditProfile); err == nil {
		t.Fatalf("dark-mode→edit-profile must be rejected")
	}
	if n.Profile() != ProfileDarkMode {
		t.Fatalf("rejected transition must not change state, got %s", n.Profile())
	}
}

func TestPushProfileOutsideProfileSection(t *testing.T) {
	n := NewNavigator(false)
	if err := n.PushProfile(ProfileSettings); err == nil {
		t.Fatalf("expected error pushing profile state from home")
	}
}

func TestStrictModePanicsOnViolation(t *testing.T) {
	n := NewNavigator(true)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic in strict mode")
		}
	}()
	_ = n.PushProfile(ProfileSettings)
}

func TestBackScenario(t *testing.T) {
	n := NewNavigator(false)
	n.SelectSection(SectionProfile)
	if err := n.PushProfile(ProfileSettings); err != nil {
		t.Fatalf("push settings failed: %v", err)
	}

	if !n.Back() {
		t.Fatalf("first back must be consumed")
	}
	if n.Section() != SectionProfile || n.Profile() != ProfileRoot {
		t.Fatalf("expected {profile, root}, got {%s, %s}", n.Section(), n.Profile())
	}

	if !n.Back() {
		t.Fatalf("second back must be consumed")
	}
	if n.Section() != SectionHome || n.Category() != category.DefaultID {
		t.Fatalf("expected {home, default}, got {%s, %q}", n.Section(), n.Category())
	}

	if n.Back() {
		t.Fatalf("third back must be a no-op")
	}
}

func TestBackResetsNonDefaultCategory(t *testing.T) {
	n := NewNavigator(false)
	if _, err := n.SelectCategory("rescues"); err != nil {
		t.Fatalf("select category failed: %v", err)
	}
	if !n.BackEnabled() {
		t.Fatalf("back interceptor must be armed for non-default category")
	}
	if !n.Back() {
		t.Fatalf("back must be consumed while category is non-default")
	}
	if n.Category() != category.DefaultID {
		t.Fatalf("expected default category after back, got %q", n.Category())
	}
	if n.BackEnabled() {
		t.Fatalf("back interceptor must disarm at home/default")
	}
}

func TestSectionSwitchHookFires(t *testing.T) {
	n := NewNavigator(false)
	var got []Section
	n.OnSectionSwitch(func(prev Section) { got = append(got, prev) })
	n.SelectSection(SectionWatchlist)
	n.SelectSection(SectionWatchlist) // same section, no hook
	n.SelectSection(SectionHome)
	if len(got) != 2 || got[0] != SectionHome || got[1] != SectionWatchlist {
		t.Fatalf("unexpected hook calls: %v", got)
	}
}
