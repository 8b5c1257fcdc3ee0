package textnorm

import (
	"testing"
)

func TestRotateOnce(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"two tokens", []string{"Name", "Customer"}, "CustomerName"},
		{"three tokens", []string{"a", "b", "c"}, "bca"},
		{"single token", []string{"only"}, "only"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateOnce(tt.tokens); got != tt.want {
				t.Errorf("RotateOnce(%v) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestRotatedMatch(t *testing.T) {
	of := NewStopwordSet("of")
	tests := []struct {
		name      string
		content   string
		target    string
		stopwords *StopwordSet
		want      bool
	}{
		{
			name:      "name of customer rotates onto CustomerName",
			content:   "Name of Customer",
			target:    "CustomerName",
			stopwords: of,
			want:      true,
		},
		{
			name:      "single token after stripping never matches",
			content:   "Name",
			target:    "Name",
			stopwords: of,
			want:      false,
		},
		{
			name:      "single token with stopword removed never matches",
			content:   "the amount",
			target:    "amount",
			stopwords: NewStopwordSet("the"),
			want:      false,
		},
		{
			name:      "unrelated words do not match",
			content:   "completely different text",
			target:    "CustomerName",
			stopwords: of,
			want:      false,
		},
		{
			name:      "comment markers are ignored",
			content:   "/// Name of Customer",
			target:    "customername",
			stopwords: of,
			want:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotatedMatch(tt.content, tt.target, tt.stopwords); got != tt.want {
				t.Errorf("RotatedMatch(%q, %q) = %v, want %v", tt.content, tt.target, got, tt.want)
			}
		})
	}
}

func TestTrivialMatch(t *testing.T) {
	stops := NewStopwordSet("of", "from", "the", "a", "an")
	tests := []struct {
		name    string
		content string
		target  string
		want    bool
	}{
		{
			name:    "direct match after normalization",
			content: "/// the amount.",
			target:  "amount",
			want:    true,
		},
		{
			name:    "rotated match",
			content: "Name of the Customer",
			target:  "CustomerName",
			want:    true,
		},
		{
			name:    "informative text is not trivial",
			content: "Total number of retries before giving up",
			target:  "retries",
			want:    false,
		},
		{
			name:    "empty content matches empty target only",
			content: "",
			target:  "amount",
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrivialMatch(tt.content, tt.target, stops); got != tt.want {
				t.Errorf("TrivialMatch(%q, %q) = %v, want %v", tt.content, tt.target, got, tt.want)
			}
		})
	}
}
