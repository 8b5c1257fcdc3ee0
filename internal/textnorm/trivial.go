package textnorm

import (
	"strings"
)

// RotateOnce moves the first token to the end and joins the result with no
// separator. This is a single left rotation, not a permutation search: it is
// exactly enough to catch "Name of customer" against "CustomerName".
func RotateOnce(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, t := range tokens[1:] {
		b.WriteString(t)
	}
	b.WriteString(tokens[0])
	return b.String()
}

// RotatedMatch is the shared second pass of the trivial-content check: strip
// markers and stop-words, re-tokenize by whitespace, and compare the
// single-rotated, identifier-only text against target. Content that reduces
// to fewer than two tokens never matches on this pass.
func RotatedMatch(content, target string, stopwords *StopwordSet) bool {
	stripped := StripStopwords(StripMarkers(content), stopwords)
	tokens := strings.Fields(stripped)
	if len(tokens) < 2 {
		return false
	}
	return FoldEqual(StripNonIdent(RotateOnce(tokens)), target)
}

// TrivialMatch is the full two-pass heuristic: first compare the fully
// normalized content (markers, stop-words, whitespace and non-identifier
// characters removed) against target; on mismatch fall back to RotatedMatch.
func TrivialMatch(content, target string, stopwords *StopwordSet) bool {
	normalized := StripNonIdent(StripWhitespace(StripStopwords(StripMarkers(content), stopwords)))
	if FoldEqual(normalized, target) {
		return true
	}
	return RotatedMatch(content, target, stopwords)
}
