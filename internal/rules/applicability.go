package rules

import (
	"doclint/internal/decl"
)

// checkedVisibility is the modifier mask that puts a member in scope even
// when its kind alone would not.
const checkedVisibility = decl.ModPublic |
	decl.ModProtected |
	decl.ModInternal |
	decl.ModProtectedInternal |
	decl.ModPrivateProtected

// isExempt reports whether an exemption marker takes the declaration out of
// scope. Markers only ever apply to methods.
func isExempt(d *decl.Declaration, markers []string) bool {
	return d.Kind == decl.KindMethod && d.HasAttribute(markers)
}

// shouldCheck is the shared applicability gate: type declarations, enum
// members and destructors are always in scope; other members need a
// non-private visibility modifier, or interface membership (interface
// members default to public semantics and carry no modifier tokens).
func shouldCheck(d *decl.Declaration, markers []string) bool {
	if isExempt(d, markers) {
		return false
	}
	switch {
	case d.Kind.IsType():
		return true
	case d.Kind == decl.KindEnumMember, d.Kind == decl.KindDestructor:
		return true
	case d.Modifiers.Any(checkedVisibility):
		return true
	case d.InInterface():
		return true
	}
	return false
}
