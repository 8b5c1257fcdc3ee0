package rules

import (
	"fmt"
	"strings"

	"doclint/internal/decl"
	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/textnorm"
)

// ParamTrivialType flags param tags whose content is nothing but the
// parameter's declared type, as written in source. Unlike the by-name
// variant this needs the declaration, so it goes through the applicability
// filter and joins tags to parameters by name.
type ParamTrivialType struct {
	exempt []string
}

func NewParamTrivialType(cfg Config) *ParamTrivialType {
	return &ParamTrivialType{exempt: cfg.ExemptMarkers}
}

func (r *ParamTrivialType) Code() diag.Code {
	return diag.CodeParamTrivialType
}

func (r *ParamTrivialType) CheckDecl(d *decl.Declaration, tree *doctree.Tree, rep diag.Reporter) {
	if !d.Kind.HasParameters() || !shouldCheck(d, r.exempt) {
		return
	}
	if d.Comment == nil || tree.PlainTextOnly() || len(d.Params) == 0 {
		return
	}
	if tree.HasElement("inheritdoc") {
		return
	}

	byName := make(map[string]*decl.Param, len(d.Params))
	for i := range d.Params {
		byName[textnorm.Fold(d.Params[i].Name)] = &d.Params[i]
	}

	tree.Walk(func(n *doctree.Node) {
		if !n.Is("param") {
			return
		}
		name, ok := n.Attr("name")
		if !ok || strings.TrimSpace(name) == "" {
			return
		}
		param, ok := byName[textnorm.Fold(name)]
		if !ok {
			return
		}
		if !textnorm.TrivialMatch(n.InnerText(), param.Type, paramTypeStopwords) {
			return
		}
		diag.Report(rep, r.Code(), n.Span,
			fmt.Sprintf("<param name=%q> only repeats the parameter type '%s'", name, param.Type))
	})
}
