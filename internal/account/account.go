package account

import "strings"

// Profile is the local user record edited through the profile flow.
type Profile struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"` // persisted image handle, may be empty
}

// Default returns the profile shown before any edit has been made.
func Default() Profile {
	return Profile{Name: "Guest", Handle: "@guest"}
}

// Merge applies the non-blank fields of edit onto base. The avatar is
// replaced only when the edit carries one, so cancelling the image
// picker keeps the existing avatar.
func Merge(base, edit Profile) Profile {
	if strings.TrimSpace(edit.Name) != "" {
		base.Name = edit.Name
	}
	if strings.TrimSpace(edit.Handle) != "" {
		base.Handle = edit.Handle
	}
	if strings.TrimSpace(edit.Bio) != "" {
		base.Bio = edit.Bio
	}
	if edit.Avatar != "" {
		base.Avatar = edit.Avatar
	}
	return base
}
