package rules

import (
	"fmt"

	"doclint/internal/diag"
	"doclint/internal/doctree"
)

// EmptyTag flags tags that carry no content. It scans every documentation
// comment in the unit, with no declaration gating at all. Self-closing
// inheritdoc and seealso tags are legitimate by convention and skipped.
type EmptyTag struct{}

func NewEmptyTag() *EmptyTag {
	return &EmptyTag{}
}

func (r *EmptyTag) Code() diag.Code {
	return diag.CodeTagEmpty
}

func (r *EmptyTag) CheckComment(tree *doctree.Tree, rep diag.Reporter) {
	tree.Walk(func(n *doctree.Node) {
		switch n.Kind {
		case doctree.NodeEmptyElement:
			if n.Is("inheritdoc") || n.Is("seealso") {
				return
			}
			diag.Report(rep, r.Code(), n.Span,
				fmt.Sprintf("documentation tag <%s/> is empty", n.Name))
		case doctree.NodeElement:
			if n.ContentEmpty() {
				diag.Report(rep, r.Code(), n.Span,
					fmt.Sprintf("documentation tag <%s> has no content", n.Name))
			}
		}
	})
}
