package diagfmt

import (
	"fmt"
	"io"

	"doclint/internal/diag"
	"doclint/internal/source"
)

// Short writes one line per diagnostic in the golden format.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) {
	out := diag.FormatShort(bag.Items(), fs, includeNotes)
	if out == "" {
		return
	}
	fmt.Fprintln(w, out)
}
