package rules

import (
	"fmt"

	"doclint/internal/decl"
	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/textnorm"
)

// PropertySummary flags property and field summaries that boil down to
// "Gets or sets the <name>". This is the looser sibling of SummaryTrivial:
// accessor verbs and filler words are stripped before comparing, and the
// rotation pass applies.
type PropertySummary struct {
	exempt []string
}

func NewPropertySummary(cfg Config) *PropertySummary {
	return &PropertySummary{exempt: cfg.ExemptMarkers}
}

func (r *PropertySummary) Code() diag.Code {
	return diag.CodePropertySummary
}

func (r *PropertySummary) CheckDecl(d *decl.Declaration, tree *doctree.Tree, rep diag.Reporter) {
	if d.Kind != decl.KindProperty && d.Kind != decl.KindField {
		return
	}
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
	if !textnorm.TrivialMatch(sum.ChildText(), d.ElementName(), propertySummaryStopwords) {
		return
	}
	diag.Report(rep, r.Code(), sum.Span,
		fmt.Sprintf("<summary> adds nothing beyond the member name '%s'", d.ElementName()))
}
