package rules

import (
	"doclint/internal/decl"
	"doclint/internal/diag"
	"doclint/internal/doctree"
)

// InheritdocNoCref flags classes whose documentation carries an
// <inheritdoc/> without cref while the class has exactly one interface and
// no real base class to inherit from. Without a cref the tag resolves
// against System.Object and documents nothing, wherever it sits in the
// comment.
type InheritdocNoCref struct{}

func NewInheritdocNoCref() *InheritdocNoCref {
	return &InheritdocNoCref{}
}

func (r *InheritdocNoCref) Code() diag.Code {
	return diag.CodeInheritdocNoCref
}

// rootBase reports whether the recorded base type is the implicit object
// root, in any of the spellings hosts emit.
func rootBase(base string) bool {
	switch base {
	case "", "object", "System.Object":
		return true
	}
	return false
}

func (r *InheritdocNoCref) CheckDecl(d *decl.Declaration, tree *doctree.Tree, rep diag.Reporter) {
	if d.Kind != decl.KindClass {
		return
	}
	if d.InterfaceCount != 1 || !rootBase(d.BaseType) {
		return
	}
	if d.Comment == nil || tree.PlainTextOnly() {
		return
	}
	var hit *doctree.Node
	tree.Walk(func(n *doctree.Node) {
		if hit != nil || n.Kind != doctree.NodeEmptyElement || !n.Is("inheritdoc") {
			return
		}
		if _, ok := n.Attr("cref"); !ok {
			hit = n
		}
	})
	if hit != nil {
		diag.Report(rep, r.Code(), hit.Span,
			"<inheritdoc/> without cref inherits nothing here; document the class or name a cref")
	}
}
