package rules

import (
	"fmt"

	"doclint/internal/decl"
	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/textnorm"
)

// SummaryTrivial flags summary tags whose text is nothing but the declared
// name with whitespace sprinkled in. The comparison is strict: no stop-word
// removal and no rotation, so "Gets the customer name" never trips it.
type SummaryTrivial struct {
	exempt []string
}

func NewSummaryTrivial(cfg Config) *SummaryTrivial {
	return &SummaryTrivial{exempt: cfg.ExemptMarkers}
}

func (r *SummaryTrivial) Code() diag.Code {
	return diag.CodeSummaryTrivial
}

func (r *SummaryTrivial) CheckDecl(d *decl.Declaration, tree *doctree.Tree, rep diag.Reporter) {
	if !shouldCheck(d, r.exempt) {
		return
	}
	if d.Comment == nil || tree.PlainTextOnly() {
		return
	}
	sum := tree.FirstElement("summary")
	if sum == nil {
		return
	}
	bare := textnorm.StripWhitespace(textnorm.StripMarkers(sum.ChildText()))
	if !textnorm.FoldEqual(bare, d.ElementName()) {
		return
	}
	diag.Report(rep, r.Code(), sum.Span,
		fmt.Sprintf("<summary> only repeats the declared name '%s'", d.ElementName()))
}
