package rules

import (
	"fmt"

	"doclint/internal/decl"
	"doclint/internal/diag"
	"doclint/internal/doctree"
)

// MissingDoc reports declarations with no documentation comment at all: no
// leading comment block, an empty one, or one made of free-form text with no
// tags. This is the only error-severity rule; everything else warns.
type MissingDoc struct {
	exempt []string
}

func NewMissingDoc(cfg Config) *MissingDoc {
	return &MissingDoc{exempt: cfg.ExemptMarkers}
}

func (r *MissingDoc) Code() diag.Code {
	return diag.CodeMissing
}

func (r *MissingDoc) CheckDecl(d *decl.Declaration, tree *doctree.Tree, rep diag.Reporter) {
	if !shouldCheck(d, r.exempt) {
		return
	}
	if d.Comment != nil && tree != nil && len(tree.Nodes) > 0 && !tree.PlainTextOnly() {
		return
	}
	diag.Report(rep, r.Code(), d.Anchor(),
		fmt.Sprintf("%s '%s' has no documentation comment", d.Kind, d.ElementName()))
}
