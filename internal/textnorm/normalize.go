package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// markerReplacer erases documentation comment delimiter tokens. Tokens are
// replaced with a space so the words around them stay separate; longer
// tokens are listed first so "///" is not consumed as "//" + "/".
var markerReplacer = strings.NewReplacer(
	"///", " ",
	"/**", " ",
	"/*", " ",
	"*/", " ",
	"//", " ",
)

// StripMarkers removes line and block comment delimiters, including the
// decorative leading "*" of block comment continuation lines.
func StripMarkers(s string) string {
	s = markerReplacer.Replace(s)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "*") {
			indent := line[:len(line)-len(trimmed)]
			lines[i] = indent + " " + trimmed[1:]
		}
	}
	return strings.Join(lines, "\n")
}

// StripWhitespace removes every whitespace rune.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// StripNonIdent removes every rune that is not a letter, digit or underscore.
func StripNonIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if isIdentRune(r) {
			return r
		}
		return -1
	}, s)
}

// StripStopwords removes whole-word, case-insensitive occurrences of the
// configured stop-words. Words are maximal identifier-rune runs, so
// stop-words embedded inside identifiers are left untouched.
func StripStopwords(s string, set *StopwordSet) string {
	if set == nil || set.Empty() {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); {
		if !isIdentRune(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && isIdentRune(runes[j]) {
			j++
		}
		word := string(runes[i:j])
		if !set.Contains(word) {
			b.WriteString(word)
		}
		i = j
	}
	return b.String()
}

// FoldEqual compares two strings case-insensitively with invariant
// semantics: both sides are NFC-normalized first, so composed and decomposed
// spellings of the same text compare equal.
func FoldEqual(a, b string) bool {
	return strings.EqualFold(norm.NFC.String(a), norm.NFC.String(b))
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
