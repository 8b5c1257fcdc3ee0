package diag

import (
	"testing"

	"doclint/internal/source"
)

func TestBag_AddRespectsCap(t *testing.T) {
	b := NewBag(2)
	d := Diagnostic{Code: CodeTagEmpty, Severity: SevWarning}
	if !b.Add(d) || !b.Add(d) {
		t.Fatalf("first two adds must succeed")
	}
	if b.Add(d) {
		t.Errorf("third add must be rejected at cap 2")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Code: CodeTagEmpty, Severity: SevWarning})
	if b.HasErrors() {
		t.Errorf("no errors expected yet")
	}
	if !b.HasWarnings() {
		t.Errorf("warning expected")
	}
	b.Add(Diagnostic{Code: CodeMissing, Severity: SevError})
	if !b.HasErrors() {
		t.Errorf("error expected")
	}
}

func TestBag_SortIsDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(Diagnostic{Code: CodeTagEmpty, Severity: SevWarning, Primary: source.Span{File: 0, Start: 30, End: 40}})
	b.Add(Diagnostic{Code: CodeMissing, Severity: SevError, Primary: source.Span{File: 0, Start: 10, End: 20}})
	b.Add(Diagnostic{Code: CodeSummaryTrivial, Severity: SevWarning, Primary: source.Span{File: 0, Start: 10, End: 20}})
	b.Sort()

	items := b.Items()
	if items[0].Code != CodeMissing {
		t.Errorf("error at same span must sort before warning, got %v", items[0].Code)
	}
	if items[1].Code != CodeSummaryTrivial {
		t.Errorf("expected summary warning second, got %v", items[1].Code)
	}
	if items[2].Code != CodeTagEmpty {
		t.Errorf("expected later span last, got %v", items[2].Code)
	}
}

func TestBag_Dedup(t *testing.T) {
	b := NewBag(10)
	span := source.Span{File: 0, Start: 5, End: 9}
	b.Add(Diagnostic{Code: CodeTagEmpty, Severity: SevWarning, Primary: span})
	b.Add(Diagnostic{Code: CodeTagEmpty, Severity: SevWarning, Primary: span})
	b.Add(Diagnostic{Code: CodeParamMissing, Severity: SevWarning, Primary: span})
	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("Len() after Dedup = %d, want 2", b.Len())
	}
}

func TestBag_MergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Code: CodeMissing})
	other := NewBag(2)
	other.Add(Diagnostic{Code: CodeTagEmpty})
	other.Add(Diagnostic{Code: CodeParamMissing})
	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len() after Merge = %d, want 3", a.Len())
	}
}

func TestCode_IDsAreStable(t *testing.T) {
	tests := []struct {
		code Code
		id   string
		sev  Severity
	}{
		{CodeMissing, "XmlMissing", SevError},
		{CodeTagEmpty, "XmlTagEmpty100", SevWarning},
		{CodeParamMissing, "XmlParamMissing100", SevWarning},
		{CodeParamTrivialName, "XmlParameterTagTooSimple100", SevWarning},
		{CodeParamTrivialType, "XmlParameterTagTooSimpleByType100", SevWarning},
		{CodeSummaryTrivial, "XmlSummaryTagTooSimple100", SevWarning},
		{CodePropertySummary, "XmlPropertySummaryTooSimple100", SevWarning},
		{CodeInheritdocNoCref, "XmlClassInheritdocEmpty100", SevWarning},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.id)
		}
		if got := tt.code.DefaultSeverity(); got != tt.sev {
			t.Errorf("DefaultSeverity(%s) = %v, want %v", tt.id, got, tt.sev)
		}
	}
	if len(Codes()) != len(tests) {
		t.Errorf("Codes() lists %d codes, want %d", len(Codes()), len(tests))
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevInfo, "INFO"},
		{SevWarning, "WARNING"},
		{SevError, "ERROR"},
		{Severity(9), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}
