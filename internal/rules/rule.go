package rules

import (
	"doclint/internal/decl"
	"doclint/internal/diag"
	"doclint/internal/doctree"
)

// DeclRule checks one declaration together with its parsed doc tree. tree is
// nil when the declaration carries no comment; rules that need one treat nil
// and plain-text-only trees alike.
type DeclRule interface {
	Code() diag.Code
	CheckDecl(d *decl.Declaration, tree *doctree.Tree, rep diag.Reporter)
}

// CommentRule checks one raw documentation comment block, independent of any
// declaration gating.
type CommentRule interface {
	Code() diag.Code
	CheckComment(tree *doctree.Tree, rep diag.Reporter)
}

// Set is the full rule set, built once from a Config.
type Set struct {
	Decl    []DeclRule
	Comment []CommentRule
}

func NewSet(cfg Config) *Set {
	return &Set{
		Decl: []DeclRule{
			NewMissingDoc(cfg),
			NewParamMissing(cfg),
			NewParamTrivialType(cfg),
			NewSummaryTrivial(cfg),
			NewPropertySummary(cfg),
			NewInheritdocNoCref(),
		},
		Comment: []CommentRule{
			NewEmptyTag(),
			NewParamTrivialName(),
		},
	}
}
