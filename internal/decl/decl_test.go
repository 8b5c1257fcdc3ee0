package decl

import (
	"testing"

	"doclint/internal/source"
)

func TestKindFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"class", KindClass, true},
		{"enum-member", KindEnumMember, true},
		{"operator", KindOperator, true},
		{"none", KindNone, false},
		{"record", KindNone, false},
		{"", KindNone, false},
	}
	for _, tt := range tests {
		got, ok := KindFromString(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("KindFromString(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	for _, k := range []Kind{KindClass, KindStruct, KindInterface, KindEnum} {
		if !k.IsType() {
			t.Errorf("%v.IsType() = false, want true", k)
		}
	}
	if KindField.IsType() {
		t.Errorf("field must not be a type kind")
	}
	for _, k := range []Kind{KindMethod, KindConstructor, KindIndexer, KindOperator} {
		if !k.HasParameters() {
			t.Errorf("%v.HasParameters() = false, want true", k)
		}
	}
	if KindProperty.HasParameters() {
		t.Errorf("property must not carry parameters")
	}
}

func TestModifierFromString(t *testing.T) {
	tests := []struct {
		in   string
		want Modifiers
		ok   bool
	}{
		{"public", ModPublic, true},
		{"protected internal", ModProtectedInternal, true},
		{"protected-internal", ModProtectedInternal, true},
		{"private-protected", ModPrivateProtected, true},
		{"static", 0, false},
	}
	for _, tt := range tests {
		got, ok := ModifierFromString(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ModifierFromString(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDeclaration_ElementName(t *testing.T) {
	tests := []struct {
		name  string
		names []Ident
		want  string
	}{
		{"single name", []Ident{{Text: "Name"}}, "Name"},
		{"multi-variable field", []Ident{{Text: "first"}, {Text: "second"}}, "first,second"},
		{"no names", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Declaration{Names: tt.names}
			if got := d.ElementName(); got != tt.want {
				t.Errorf("ElementName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeclaration_AnchorIsFirstName(t *testing.T) {
	d := Declaration{Names: []Ident{
		{Text: "a", Span: source.Span{Start: 10, End: 11}},
		{Text: "b", Span: source.Span{Start: 13, End: 14}},
	}}
	if got := d.Anchor(); got.Start != 10 || got.End != 11 {
		t.Errorf("Anchor() = %v, want 10-11", got)
	}
}

func TestDeclaration_HasAttribute(t *testing.T) {
	d := Declaration{Attributes: []string{"TestMethod", "Obsolete"}}
	if !d.HasAttribute([]string{"Fact", "TestMethod"}) {
		t.Errorf("expected marker match")
	}
	if d.HasAttribute([]string{"testmethod"}) {
		t.Errorf("marker match must be case-sensitive")
	}
	if d.HasAttribute(nil) {
		t.Errorf("empty marker set matches nothing")
	}
}
