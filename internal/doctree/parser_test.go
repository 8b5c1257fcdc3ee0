package doctree

import (
	"testing"

	"doclint/internal/source"
)

func parse(t *testing.T, text string) *Tree {
	t.Helper()
	return Parse(text, source.Span{File: 0, Start: 0, End: uint32(len(text))})
}

func TestParse_SimpleSummary(t *testing.T) {
	text := `/// <summary>Gets the name.</summary>`
	tree := parse(t, text)

	if tree.PlainTextOnly() {
		t.Fatalf("expected a tag tree, got plain text")
	}
	sum := tree.FirstElement("summary")
	if sum == nil {
		t.Fatalf("summary element not found")
	}
	if sum.Kind != NodeElement {
		t.Errorf("Kind = %v, want NodeElement", sum.Kind)
	}
	if got := sum.ChildText(); got != "Gets the name." {
		t.Errorf("ChildText() = %q", got)
	}
	// span covers the element including delimiters
	wantStart := uint32(4)
	wantEnd := uint32(len(text))
	if sum.Span.Start != wantStart || sum.Span.End != wantEnd {
		t.Errorf("Span = %v, want %d-%d", sum.Span, wantStart, wantEnd)
	}
}

func TestParse_SpansShiftWithBase(t *testing.T) {
	text := `<x/>`
	tree := Parse(text, source.Span{File: 3, Start: 100, End: 104})
	n := tree.FirstElement("x")
	if n == nil {
		t.Fatalf("element not found")
	}
	if n.Span.File != 3 || n.Span.Start != 100 || n.Span.End != 104 {
		t.Errorf("Span = %v, want 3:100-104", n.Span)
	}
}

func TestParse_EmptyElementWithAttributes(t *testing.T) {
	tree := parse(t, `/// <inheritdoc cref="IThing" />`)
	n := tree.FirstElement("inheritdoc")
	if n == nil {
		t.Fatalf("inheritdoc not found")
	}
	if n.Kind != NodeEmptyElement {
		t.Errorf("Kind = %v, want NodeEmptyElement", n.Kind)
	}
	val, ok := n.Attr("cref")
	if !ok || val != "IThing" {
		t.Errorf("Attr(cref) = (%q, %v), want (IThing, true)", val, ok)
	}
	if _, ok := n.Attr("name"); ok {
		t.Errorf("unexpected name attribute")
	}
}

func TestParse_AttrMatchingIsCaseInsensitive(t *testing.T) {
	tree := parse(t, `<param NAME="amount">x</param>`)
	n := tree.FirstElement("PARAM")
	if n == nil {
		t.Fatalf("param not found")
	}
	if val, ok := n.Attr("name"); !ok || val != "amount" {
		t.Errorf("Attr(name) = (%q, %v)", val, ok)
	}
}

func TestParse_MultilineParamTags(t *testing.T) {
	text := "/// <param name=\"first\">the first</param>\n/// <param name=\"second\">the second</param>"
	tree := parse(t, text)

	var params []*Node
	tree.Walk(func(n *Node) {
		if n.Is("param") {
			params = append(params, n)
		}
	})
	if len(params) != 2 {
		t.Fatalf("found %d param tags, want 2", len(params))
	}
	if v, _ := params[0].Attr("name"); v != "first" {
		t.Errorf("first param name = %q", v)
	}
	if v, _ := params[1].Attr("name"); v != "second" {
		t.Errorf("second param name = %q", v)
	}
}

func TestParse_PlainTextOnly(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"free-form text", "/// just words, no tags", true},
		{"lone angle bracket", "/// a < b", true},
		{"one tag", "/// <summary>x</summary>", false},
		{"self-closing tag", "/// <inheritdoc/>", false},
		{"empty comment", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parse(t, tt.text).PlainTextOnly(); got != tt.want {
				t.Errorf("PlainTextOnly() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_UnmatchedClosingTagIgnored(t *testing.T) {
	tree := parse(t, `/// </param> <summary>ok</summary>`)
	if tree.FirstElement("summary") == nil {
		t.Fatalf("summary must survive a stray closer")
	}
	if tree.HasElement("param") {
		t.Errorf("stray closer must not produce a param element")
	}
}

func TestParse_UnterminatedElementClosesAtEnd(t *testing.T) {
	text := `/// <summary>runs off`
	tree := parse(t, text)
	sum := tree.FirstElement("summary")
	if sum == nil {
		t.Fatalf("summary not found")
	}
	if sum.Span.End != uint32(len(text)) {
		t.Errorf("Span.End = %d, want %d", sum.Span.End, len(text))
	}
	if got := sum.ChildText(); got != "runs off" {
		t.Errorf("ChildText() = %q", got)
	}
}

func TestParse_NestedElements(t *testing.T) {
	tree := parse(t, `<summary>see <see cref="T"/> for details</summary>`)
	sum := tree.FirstElement("summary")
	if sum == nil {
		t.Fatalf("summary not found")
	}
	if sum.ContentEmpty() {
		t.Errorf("summary with nested element is not empty")
	}
	if !tree.HasElement("see") {
		t.Errorf("nested see element not found")
	}
	if got := sum.InnerText(); got != "see  for details" {
		t.Errorf("InnerText() = %q", got)
	}
}

func TestNode_ContentEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
		elem string
		want bool
	}{
		{"no children", "<summary></summary>", "summary", true},
		{"whitespace only", "<summary>   </summary>", "summary", true},
		{"gutter only across lines", "/// <summary>\n/// </summary>", "summary", true},
		{"real content", "<summary>x</summary>", "summary", false},
		{"nested element", "<summary><see cref=\"T\"/></summary>", "summary", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := parse(t, tt.text).FirstElement(tt.elem)
			if n == nil {
				t.Fatalf("element %q not found", tt.elem)
			}
			if got := n.ContentEmpty(); got != tt.want {
				t.Errorf("ContentEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_SingleQuotedAttr(t *testing.T) {
	tree := parse(t, `<param name='n'>v</param>`)
	n := tree.FirstElement("param")
	if n == nil {
		t.Fatalf("param not found")
	}
	if v, ok := n.Attr("name"); !ok || v != "n" {
		t.Errorf("Attr(name) = (%q, %v)", v, ok)
	}
}
