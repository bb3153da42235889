package state

import "testing"

func TestScrollCacheRoundTrip(t *testing.T) {
	c := NewScrollCache()
	c.Store("items", Position{Index: 5, Offset: 40})
	got, ok := c.Restore("items")
	if !ok || got.Index != 5 || got.Offset != 40 {
		t.Fatalf("expected (5, 40), got %#v (ok=%v)", got, ok)
	}
}

func TestScrollCacheMissingCategory(t *testing.T) {
	c := NewScrollCache()
	if _, ok := c.Restore("sublets"); ok {
		t.Fatalf("expected miss for unseen category")
	}
}

func TestScrollCacheClampsNegative(t *testing.T) {
	c := NewScrollCache()
	c.Store("items", Position{Index: -3, Offset: -1})
	got, _ := c.Restore("items")
	if got.Index != 0 || got.Offset != 0 {
		t.Fatalf("expected clamped (0, 0), got %#v", got)
	}
}

func TestScrollCacheOverwrite(t *testing.T) {
	c := NewScrollCache()
	c.Store("items", Position{Index: 1, Offset: 0})
	c.Store("items", Position{Index: 8, Offset: 3})
	got, _ := c.Restore("items")
	if got.Index != 8 || got.Offset != 3 {
		t.Fatalf("expected latest position, got %#v", got)
	}
}
