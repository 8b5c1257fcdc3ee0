// Package diagfmt renders diagnostic bags for the CLI: a human-readable
// pretty form with source context, a machine-readable JSON form, and the
// one-line short form shared with golden tests.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shows paths relative to the batch directory when that
	// is shorter, absolute otherwise.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses the stored path.
	PathModeAbsolute
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// NoSource suppresses the source context line and underline.
	NoSource bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int // output truncation, leaves the Bag alone
	IncludeNotes     bool
}
