package state

import (
	"testing"

	"github.com/unibazaar/unibazaar-tui/internal/listing"
)

func TestOverlayExclusivity(t *testing.T) {
	o := NewOverlayStack()
	loginDismissed := 0
	if err := o.Open(OverlayLogin, nil, func() { loginDismissed++ }); err != nil {
		t.Fatalf("open login failed: %v", err)
	}
	if err := o.Open(OverlayCreatePost, nil, nil); err != nil {
		t.Fatalf("open create-post failed: %v", err)
	}
	if !o.IsOpen(OverlayCreatePost) || o.IsOpen(OverlayLogin) {
		t.Fatalf("expected exactly create-post visible, got %s", o.Current())
	}
	if loginDismissed != 1 {
		t.Fatalf("expected login dismiss callback once, got %d", loginDismissed)
	}
}

func TestOverlayAdDetailRequiresPayload(t *testing.T) {
	o := NewOverlayStack()
	if err := o.Open(OverlayAdDetail, nil, nil); err == nil {
		t.Fatalf("expected error opening ad-detail without a listing")
	}
	if o.Current() != OverlayNone {
		t.Fatalf("failed open must not change state, got %s", o.Current())
	}

	l := listing.Listing{ID: 7, Title: "Bike"}
	if err := o.Open(OverlayAdDetail, &l, nil); err != nil {
		t.Fatalf("open ad-detail failed: %v", err)
	}
	got := o.Payload()
	if got == nil || got.ID != 7 {
		t.Fatalf("expected payload listing 7, got %#v", got)
	}
}

func TestOverlayCloseRunsDismissOnce(t *testing.T) {
	o := NewOverlayStack()
	dismissed := 0
	if err := o.Open(OverlayLocationPicker, nil, func() { dismissed++ }); err != nil {
		t.Fatalf("open failed: %v", err)
	}
	o.Close()
	o.Close()
	if dismissed != 1 {
		t.Fatalf("expected one dismiss, got %d", dismissed)
	}
	if o.Current() != OverlayNone || o.Payload() != nil {
		t.Fatalf("close must clear state")
	}
}

func TestOverlayOpenNoneRejected(t *testing.T) {
	o := NewOverlayStack()
	if err := o.Open(OverlayNone, nil, nil); err == nil {
		t.Fatalf("open(none) must be rejected")
	}
}
