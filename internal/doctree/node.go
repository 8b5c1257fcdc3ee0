package doctree

import (
	"strings"

	"doclint/internal/source"
)

// NodeKind discriminates the node variants of a tag tree.
type NodeKind uint8

const (
	// NodeText is plain text between tags.
	NodeText NodeKind = iota
	// NodeElement is an open/close tag pair with children.
	NodeElement
	// NodeEmptyElement is a self-closing tag.
	NodeEmptyElement
)

// Attr is one attribute of an element, value captured as the raw string
// between the quotes.
type Attr struct {
	Name  string
	Value string
	Span  source.Span
}

// Node is one node of the tag tree. Span covers the node's exact source
// range including delimiters.
type Node struct {
	Kind     NodeKind
	Content  string // NodeText only
	Name     string // element nodes only
	Attrs    []Attr
	Children []Node // NodeElement only
	Span     source.Span
}

// Attr returns the value of the named attribute, matching case-insensitively.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// Is reports whether the node is an element (of either variant) with the
// given name, case-insensitively.
func (n *Node) Is(name string) bool {
	return n.Kind != NodeText && strings.EqualFold(n.Name, name)
}

// ChildText concatenates the text of the node's direct text children.
func (n *Node) ChildText() string {
	var b strings.Builder
	for i := range n.Children {
		if n.Children[i].Kind == NodeText {
			b.WriteString(n.Children[i].Content)
		}
	}
	return b.String()
}

// InnerText concatenates the text of every descendant text node.
func (n *Node) InnerText() string {
	var b strings.Builder
	n.appendInnerText(&b)
	return b.String()
}

func (n *Node) appendInnerText(b *strings.Builder) {
	if n.Kind == NodeText {
		b.WriteString(n.Content)
		return
	}
	for i := range n.Children {
		n.Children[i].appendInnerText(b)
	}
}

// ContentEmpty reports whether an element carries no content: no children at
// all, or only text children that are pure whitespace. A nested element
// counts as content.
func (n *Node) ContentEmpty() bool {
	for i := range n.Children {
		c := &n.Children[i]
		if c.Kind != NodeText {
			return false
		}
		if strings.TrimSpace(stripGutter(c.Content)) != "" {
			return false
		}
	}
	return true
}

// stripGutter drops the comment continuation markers that end up inside
// multi-line text content, so "\n/// " between two tags still counts as
// whitespace.
func stripGutter(s string) string {
	return strings.NewReplacer("///", "", "//", "", "/*", "", "*/", "", "*", "").Replace(s)
}

// Tree is the parsed tag tree of one documentation comment.
type Tree struct {
	Nodes []Node
}

// PlainTextOnly reports whether parsing found no tags at all. Rules treat
// such comments the same as absent ones.
func (t *Tree) PlainTextOnly() bool {
	if t == nil {
		return true
	}
	for i := range t.Nodes {
		if t.Nodes[i].Kind != NodeText {
			return false
		}
	}
	return true
}

// FirstElement returns the first element with the given name in document
// order, descending into children, or nil.
func (t *Tree) FirstElement(name string) *Node {
	if t == nil {
		return nil
	}
	var found *Node
	t.Walk(func(n *Node) {
		if found == nil && n.Is(name) {
			found = n
		}
	})
	return found
}

// HasElement reports whether any node in the tree is an element with the
// given name.
func (t *Tree) HasElement(name string) bool {
	return t.FirstElement(name) != nil
}

// Walk visits every node of the tree in document order, parents before
// children.
func (t *Tree) Walk(visit func(*Node)) {
	if t == nil {
		return
	}
	for i := range t.Nodes {
		walkNode(&t.Nodes[i], visit)
	}
}

func walkNode(n *Node, visit func(*Node)) {
	visit(n)
	for i := range n.Children {
		walkNode(&n.Children[i], visit)
	}
}
