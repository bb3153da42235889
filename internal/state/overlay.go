package state

import (
	"fmt"

	"github.com/unibazaar/unibazaar-tui/internal/listing"
)

// OverlayKind identifies a modal surface. At most one overlay is ever
// visible; opening a new one closes the previous one first.
type OverlayKind int

const (
	OverlayNone OverlayKind = iota
	OverlayLogin
	OverlayCreatePost
	OverlayLocationPicker
	OverlayAdDetail
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayNone:
		return "none"
	case OverlayLogin:
		return "login"
	case OverlayCreatePost:
		return "create-post"
	case OverlayLocationPicker:
		return "location-picker"
	case OverlayAdDetail:
		return "ad-detail"
	default:
		return fmt.Sprintf("overlay(%d)", int(k))
	}
}

// OverlayStack enforces the at-most-one-visible overlay invariant and
// the replace semantics: open runs the dismiss callback of whatever
// was showing before the new overlay appears.
type OverlayStack struct {
	current   OverlayKind
	payload   *listing.Listing
	onDismiss func()
}

// NewOverlayStack starts with no overlay visible.
func NewOverlayStack() *OverlayStack {
	return &OverlayStack{current: OverlayNone}
}

// Current returns the visible overlay kind.
func (o *OverlayStack) Current() OverlayKind { return o.current }

// IsOpen reports whether the given kind is the visible overlay.
func (o *OverlayStack) IsOpen(kind OverlayKind) bool { return o.current == kind }

// Payload returns the listing attached to an ad-detail overlay, nil
// otherwise.
func (o *OverlayStack) Payload() *listing.Listing { return o.payload }

// Open replaces the visible overlay. Ad-detail requires a listing
// payload; opening it without one is a contract violation reported as
// an error with no state change.
func (o *OverlayStack) Open(kind OverlayKind, payload *listing.Listing, onDismiss func()) error {
	if kind == OverlayNone {
		return fmt.Errorf("open(none) is not a valid overlay transition; use Close")
	}
	if kind == OverlayAdDetail && payload == nil {
		return fmt.Errorf("ad-detail overlay requires a listing payload")
	}
	if o.current != OverlayNone {
		o.Close()
	}
	o.current = kind
	if kind == OverlayAdDetail {
		dup := listing.Clone(*payload)
		o.payload = &dup
	} else {
		o.payload = nil
	}
	o.onDismiss = onDismiss
	return nil
}

// Close clears the visible overlay, running its dismiss callback.
func (o *OverlayStack) Close() {
	dismiss := o.onDismiss
	o.current = OverlayNone
	o.payload = nil
	o.onDismiss = nil
	if dismiss != nil {
		dismiss()
	}
}
