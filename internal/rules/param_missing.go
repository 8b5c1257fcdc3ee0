package rules

import (
	"fmt"
	"strings"

	"doclint/internal/decl"
	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/textnorm"
)

// ParamMissing reports declared parameters that have no matching param tag.
// Comments inheriting their documentation are assumed complete.
type ParamMissing struct {
	exempt []string
}

func NewParamMissing(cfg Config) *ParamMissing {
	return &ParamMissing{exempt: cfg.ExemptMarkers}
}

func (r *ParamMissing) Code() diag.Code {
	return diag.CodeParamMissing
}

func (r *ParamMissing) CheckDecl(d *decl.Declaration, tree *doctree.Tree, rep diag.Reporter) {
	if !d.Kind.HasParameters() || !shouldCheck(d, r.exempt) {
		return
	}
	if d.Comment == nil || tree.PlainTextOnly() || len(d.Params) == 0 {
		return
	}
	if tree.HasElement("inheritdoc") {
		return
	}

	documented := paramTagNames(tree)
	for _, p := range d.Params {
		if _, ok := documented[textnorm.Fold(p.Name)]; ok {
			continue
		}
		diag.Report(rep, r.Code(), p.Span,
			fmt.Sprintf("parameter '%s' has no <param> tag", p.Name))
	}
}

// paramTagNames collects the non-blank name attributes of every param tag,
// case-folded. Blank names are discarded.
func paramTagNames(tree *doctree.Tree) map[string]struct{} {
	names := make(map[string]struct{})
	tree.Walk(func(n *doctree.Node) {
		if !n.Is("param") {
			return
		}
		name, ok := n.Attr("name")
		if !ok || strings.TrimSpace(name) == "" {
			return
		}
		names[textnorm.Fold(name)] = struct{}{}
	})
	return names
}
