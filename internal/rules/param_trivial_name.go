package rules

import (
	"fmt"
	"strings"

	"doclint/internal/diag"
	"doclint/internal/doctree"
	"doclint/internal/textnorm"
)

// ParamTrivialName flags param tags whose content is nothing but the
// parameter's own name. Like EmptyTag it scans every documentation comment
// directly, with no declaration gating: the tag's name attribute alone is
// enough to judge the content.
type ParamTrivialName struct{}

func NewParamTrivialName() *ParamTrivialName {
	return &ParamTrivialName{}
}

func (r *ParamTrivialName) Code() diag.Code {
	return diag.CodeParamTrivialName
}

func (r *ParamTrivialName) CheckComment(tree *doctree.Tree, rep diag.Reporter) {
	tree.Walk(func(n *doctree.Node) {
		if !n.Is("param") {
			return
		}
		name, ok := n.Attr("name")
		if !ok || strings.TrimSpace(name) == "" {
			return
		}
		content := n.InnerText()
		// First pass strips markers and whitespace only; the rotation pass
		// additionally drops stop-words and non-identifier characters.
		bare := textnorm.StripWhitespace(textnorm.StripMarkers(content))
		if !textnorm.FoldEqual(bare, name) &&
			!textnorm.RotatedMatch(content, name, paramNameStopwords) {
			return
		}
		diag.Report(rep, r.Code(), n.Span,
			fmt.Sprintf("<param name=%q> only repeats the parameter name", name))
	})
}
