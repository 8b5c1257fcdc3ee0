package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"doclint/internal/diag"
	"doclint/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.FgWhite, color.Bold)
	noteColor    = color.New(color.FgBlue)
	markerColor  = color.New(color.FgGreen, color.Bold)
)

// Pretty renders diagnostics for humans:
//
//	<path>:<line>:<col>: <severity> <CODE>: <message>
//	    <source line>
//	    ^~~~~
//
// followed by indented notes. The bag is expected to be sorted already.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, d, fs, opts)
	}
}

func writePretty(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := severityText(d.Severity)
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = codeColor.Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(f, fs, opts.PathMode), start.Line, start.Col, sev, code, d.Message)

	if !opts.NoSource {
		writeSourceContext(w, f, start, end, opts.Color)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			nstart, _ := fs.Resolve(n.Span)
			label := "note"
			if opts.Color {
				label = noteColor.Sprint(label)
			}
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				label, displayPath(nf, fs, opts.PathMode), nstart.Line, nstart.Col, n.Msg)
		}
	}
}

// writeSourceContext prints the first line the span touches with a caret
// under its start and tildes under the rest of the span on that line.
func writeSourceContext(w io.Writer, f *source.File, start, end source.LineCol, colored bool) {
	line := f.Line(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(line[:col]))

	// Multi-line spans underline to the end of the first line.
	endCol := len(line)
	if end.Line == start.Line && int(end.Col)-1 <= len(line) {
		endCol = int(end.Col) - 1
	}
	width := runewidth.StringWidth(line[col:max(col, endCol)])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if colored {
		marker = markerColor.Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", pad, marker)
}

func severityText(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}
