package rules

import (
	"doclint/internal/textnorm"
)

// Config carries the host-tunable part of the rule set. Rule IDs, severities
// and stop-word sets are compiled-in constants; only the exemption markers
// come from the host, since the engine must not hard-code a particular test
// framework's attribute names.
type Config struct {
	// ExemptMarkers lists attribute names whose presence on a method
	// exempts it from every declaration-gated rule.
	ExemptMarkers []string
}

// DefaultConfig mirrors the historical behavior of exempting the two MSTest
// attributes.
func DefaultConfig() Config {
	return Config{ExemptMarkers: []string{"TestMethod", "TestInitialize"}}
}

// Per-rule stop-word sets, fixed at process start.
var (
	// paramNameStopwords feeds the rotation pass of the by-name param check.
	paramNameStopwords = textnorm.NewStopwordSet("of", "from", "the")

	// paramTypeStopwords feeds both passes of the by-type param check.
	paramTypeStopwords = textnorm.NewStopwordSet("of", "from", "the", "a", "an")

	// propertySummaryStopwords feeds both passes of the gets/sets summary
	// check.
	propertySummaryStopwords = textnorm.NewStopwordSet(
		"gets", "get", "sets", "set", "and", "or", "the", "of", "from",
	)
)
