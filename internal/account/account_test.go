package account

import "testing"

func TestMergeKeepsBaseForBlankFields(t *testing.T) {
	base := Profile{Name: "Maya", Handle: "@maya", Bio: "hi", Avatar: "img-1"}
	got := Merge(base, Profile{Name: "  ", Bio: "new bio"})
	if got.Name != "Maya" {
		t.Fatalf("blank name must not overwrite, got %q", got.Name)
	}
	if got.Bio != "new bio" {
		t.Fatalf("expected bio update, got %q", got.Bio)
	}
	if got.Avatar != "img-1" {
		t.Fatalf("missing avatar must keep previous, got %q", got.Avatar)
	}
}

func TestMergeReplacesAvatarWhenPresent(t *testing.T) {
	got := Merge(Profile{Avatar: "img-1"}, Profile{Avatar: "img-2"})
	if got.Avatar != "img-2" {
		t.Fatalf("expected avatar replacement, got %q", got.Avatar)
	}
}
