package source

import (
	"testing"
)

func TestSpan_ShiftRight(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{
			name:     "shift normal span right by 5",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    5,
			expected: Span{File: 1, Start: 15, End: 25},
		},
		{
			name:     "shift by 0 keeps span",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    0,
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "shift zero-length span",
			span:     Span{File: 2, Start: 7, End: 7},
			shift:    3,
			expected: Span{File: 2, Start: 10, End: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.ShiftRight(tt.shift)
			if got != tt.expected {
				t.Errorf("ShiftRight(%d) = %v, want %v", tt.shift, got, tt.expected)
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans merge",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span keeps outer",
			span:     Span{File: 1, Start: 10, End: 40},
			other:    Span{File: 1, Start: 20, End: 30},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "different file ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.span.Cover(tt.other)
			if got != tt.expected {
				t.Errorf("Cover(%v) = %v, want %v", tt.other, got, tt.expected)
			}
		})
	}
}

func TestSpan_EmptyLen(t *testing.T) {
	s := Span{File: 0, Start: 5, End: 5}
	if !s.Empty() {
		t.Errorf("expected empty span")
	}
	s.End = 9
	if s.Empty() {
		t.Errorf("expected non-empty span")
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}
