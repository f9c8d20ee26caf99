package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans merge to hull",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span leaves outer unchanged",
			span:     Span{File: 1, Start: 10, End: 40},
			other:    Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "other extends start",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 2, End: 12},
			expected: Span{File: 1, Start: 2, End: 20},
		},
		{
			name:     "different file is ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "empty span covered by itself",
			span:     Span{File: 1, Start: 5, End: 5},
			other:    Span{File: 1, Start: 5, End: 5},
			expected: Span{File: 1, Start: 5, End: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Cover(tt.other)
			if got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	outer := Span{File: 1, Start: 10, End: 20}

	if !outer.Contains(Span{File: 1, Start: 12, End: 18}) {
		t.Error("expected inner span to be contained")
	}
	if !outer.Contains(outer) {
		t.Error("expected span to contain itself")
	}
	if outer.Contains(Span{File: 1, Start: 5, End: 15}) {
		t.Error("expected overlapping-left span to not be contained")
	}
	if outer.Contains(Span{File: 2, Start: 12, End: 18}) {
		t.Error("expected span from another file to not be contained")
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	s := Span{File: 1, Start: 7, End: 7}
	if !s.Empty() {
		t.Error("expected zero-length span to be empty")
	}
	if s.Len() != 0 {
		t.Errorf("expected Len 0, got %d", s.Len())
	}

	s = Span{File: 1, Start: 3, End: 9}
	if s.Empty() {
		t.Error("expected non-empty span")
	}
	if s.Len() != 6 {
		t.Errorf("expected Len 6, got %d", s.Len())
	}
}
