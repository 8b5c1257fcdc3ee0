package decl

import (
	"strings"

	"doclint/internal/source"
)

// Ident is one declared identifier with the span of its token.
type Ident struct {
	Text string
	Span source.Span
}

// Param is one declared parameter. Type is the type text exactly as written
// in source; nothing is resolved semantically.
type Param struct {
	Name string
	Type string
	Span source.Span
}

// Comment is the raw documentation comment block directly above the
// declaration, captured verbatim by the host before any rule runs. Span
// covers the whole block including comment markers; offsets into Text map
// to Span.Start + offset.
type Comment struct {
	Text string
	Span source.Span
}

// Declaration is one documentable syntax construct. Field declarations may
// carry several identifiers sharing one comment.
type Declaration struct {
	Kind      Kind
	Modifiers Modifiers
	Names     []Ident
	Params    []Param

	// Inheritance shape, used only by the inheritdoc rule.
	BaseType       string
	InterfaceCount int

	// Attributes lists the attribute names present on the declaration;
	// matched against the configured exemption markers.
	Attributes []string

	EnclosingKind Kind
	Comment       *Comment
}

// ElementName returns the identifier the summary rules compare against: the
// single name, or the comma-joined list for multi-variable fields.
func (d *Declaration) ElementName() string {
	switch len(d.Names) {
	case 0:
		return ""
	case 1:
		return d.Names[0].Text
	}
	parts := make([]string, len(d.Names))
	for i, n := range d.Names {
		parts[i] = n.Text
	}
	return strings.Join(parts, ",")
}

// Anchor returns the span diagnostics without a better target attach to: the
// primary identifier token (the first identifier for multi-variable fields,
// the keyword token for indexers and operators, which the host supplies as
// the sole name).
func (d *Declaration) Anchor() source.Span {
	if len(d.Names) == 0 {
		return source.Span{}
	}
	return d.Names[0].Span
}

// HasAttribute reports whether any of the given marker names is present,
// case-sensitively, on the declaration.
func (d *Declaration) HasAttribute(markers []string) bool {
	for _, attr := range d.Attributes {
		for _, m := range markers {
			if attr == m {
				return true
			}
		}
	}
	return false
}

// InInterface reports whether the declaration is a member of an interface.
func (d *Declaration) InInterface() bool {
	return d.EnclosingKind == KindInterface
}
