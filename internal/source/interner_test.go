package source

import (
	"testing"
)

func TestInternerRoundTrip(t *testing.T) {
	in := NewInterner()

	id := in.Intern("pad_before")
	if id == NoStringID {
		t.Fatal("expected a non-zero ID")
	}
	if again := in.Intern("pad_before"); again != id {
		t.Errorf("re-intern returned %d, want %d", again, id)
	}

	s, ok := in.Lookup(id)
	if !ok || s != "pad_before" {
		t.Errorf("Lookup = %q, %v", s, ok)
	}
}

func TestInternerEmptyString(t *testing.T) {
	in := NewInterner()
	if in.Intern("") != NoStringID {
		t.Error("empty string must map to NoStringID")
	}
	if in.Len() != 1 {
		t.Errorf("fresh interner Len = %d, want 1", in.Len())
	}
}

func TestInternerUnknownID(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Error("expected lookup of unknown ID to fail")
	}
}
