package category

import "testing"

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	c, ok := r.Lookup("textbooks")
	if !ok || c.Label != "Textbooks" {
		t.Fatalf("expected textbooks category, got %#v (ok=%v)", c, ok)
	}
	if _, ok := r.Lookup("vehicles"); ok {
		t.Fatalf("expected lookup miss for unknown id")
	}
}

func TestRegistryByLabel(t *testing.T) {
	r := NewRegistry()
	c, ok := r.ByLabel("Sublets")
	if !ok || c.ID != "sublets" {
		t.Fatalf("expected sublets id, got %#v (ok=%v)", c, ok)
	}
}

func TestRegistryLabelFallsBackToID(t *testing.T) {
	r := NewRegistry()
	if got := r.Label("mystery"); got != "mystery" {
		t.Fatalf("expected fallback label, got %q", got)
	}
	if got := r.Label(DefaultID); got != "All" {
		t.Fatalf("expected All, got %q", got)
	}
}

func TestValidLabelExcludesDefault(t *testing.T) {
	r := NewRegistry()
	if r.ValidLabel("All") {
		t.Fatalf("default tab must not be a declarable category")
	}
	if !r.ValidLabel("Items") {
		t.Fatalf("expected Items to be declarable")
	}
}

func TestNextPrevWrap(t *testing.T) {
	r := NewRegistry()
	if got := r.Next("textbooks"); got != DefaultID {
		t.Fatalf("expected wrap to default, got %q", got)
	}
	if got := r.Prev(DefaultID); got != "textbooks" {
		t.Fatalf("expected wrap to textbooks, got %q", got)
	}
	if got := r.Next("bogus"); got != DefaultID {
		t.Fatalf("expected default for unknown id, got %q", got)
	}
}
