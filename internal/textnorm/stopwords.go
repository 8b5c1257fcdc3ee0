package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StopwordSet is an immutable case-insensitive word set. Rule packages build
// their sets once at process start.
type StopwordSet struct {
	words map[string]struct{}
}

func NewStopwordSet(words ...string) *StopwordSet {
	set := &StopwordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		set.words[foldKey(w)] = struct{}{}
	}
	return set
}

func (s *StopwordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[foldKey(word)]
	return ok
}

func (s *StopwordSet) Empty() bool {
	return s == nil || len(s.words) == 0
}

func foldKey(w string) string {
	return Fold(w)
}

// Fold returns the invariant case-folded form of s, suitable as a
// case-insensitive map key.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
