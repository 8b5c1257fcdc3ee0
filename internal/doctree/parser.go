package doctree

import (
	"strings"

	"doclint/internal/source"
)

// Parse builds the tag tree of one raw comment. base is the span of the
// whole comment block; node spans are absolute, computed as base.Start plus
// the in-text offset. Parse never fails.
func Parse(text string, base source.Span) *Tree {
	p := &parser{text: text, base: base}
	nodes, _ := p.parseNodes("")
	return &Tree{Nodes: nodes}
}

type parser struct {
	text string
	base source.Span
	off  int
}

func (p *parser) span(start, end int) source.Span {
	return source.Span{
		File:  p.base.File,
		Start: p.base.Start + uint32(start),
		End:   p.base.Start + uint32(end),
	}
}

func (p *parser) eof() bool {
	return p.off >= len(p.text)
}

// parseNodes consumes nodes until EOF or a closing tag matching closing.
// Returns the nodes and whether the matching closer was consumed.
func (p *parser) parseNodes(closing string) ([]Node, bool) {
	var nodes []Node
	textStart := p.off

	flushText := func(end int) {
		if end > textStart {
			nodes = append(nodes, Node{
				Kind:    NodeText,
				Content: p.text[textStart:end],
				Span:    p.span(textStart, end),
			})
		}
	}

	for !p.eof() {
		lt := strings.IndexByte(p.text[p.off:], '<')
		if lt < 0 {
			p.off = len(p.text)
			break
		}
		tagStart := p.off + lt

		if closer, ok := p.tryClosingTag(tagStart); ok {
			if closing != "" && strings.EqualFold(closer.name, closing) {
				flushText(tagStart)
				p.off = closer.end
				return nodes, true
			}
			// Unmatched closing tag: dropped, never fatal.
			flushText(tagStart)
			p.off = closer.end
			textStart = p.off
			continue
		}

		node, ok := p.tryOpenTag(tagStart)
		if !ok {
			// Not a tag. The '<' stays part of the surrounding text.
			p.off = tagStart + 1
			continue
		}
		flushText(tagStart)
		nodes = append(nodes, node)
		textStart = p.off
	}

	flushText(min(p.off, len(p.text)))
	return nodes, false
}

type closingTag struct {
	name string
	end  int
}

// tryClosingTag reads "</name>" at start.
func (p *parser) tryClosingTag(start int) (closingTag, bool) {
	i := start + 1
	if i >= len(p.text) || p.text[i] != '/' {
		return closingTag{}, false
	}
	i++
	name, i := scanName(p.text, i)
	if name == "" {
		return closingTag{}, false
	}
	i = skipSpace(p.text, i)
	if i >= len(p.text) || p.text[i] != '>' {
		return closingTag{}, false
	}
	return closingTag{name: name, end: i + 1}, true
}

// tryOpenTag reads "<name attr="v" ...>" or "<name ... />" at start. On the
// open variant it recursively parses children until the matching closer or
// the end of the comment.
func (p *parser) tryOpenTag(start int) (Node, bool) {
	i := start + 1
	name, i := scanName(p.text, i)
	if name == "" {
		return Node{}, false
	}

	var attrs []Attr
	for {
		i = skipSpace(p.text, i)
		if i >= len(p.text) {
			// Unterminated tag: treat as text.
			return Node{}, false
		}
		switch {
		case p.text[i] == '>':
			p.off = i + 1
			children, _ := p.parseNodes(name)
			return Node{
				Kind:     NodeElement,
				Name:     name,
				Attrs:    attrs,
				Children: children,
				Span:     p.span(start, p.off),
			}, true

		case p.text[i] == '/' && i+1 < len(p.text) && p.text[i+1] == '>':
			p.off = i + 2
			return Node{
				Kind:  NodeEmptyElement,
				Name:  name,
				Attrs: attrs,
				Span:  p.span(start, p.off),
			}, true

		default:
			attr, next, ok := p.scanAttr(i)
			if !ok {
				return Node{}, false
			}
			attrs = append(attrs, attr)
			i = next
		}
	}
}

// scanAttr reads one name="value" pair. Values may use single or double
// quotes; unquoted values run until whitespace or the end of the tag.
func (p *parser) scanAttr(start int) (Attr, int, bool) {
	name, i := scanName(p.text, start)
	if name == "" {
		return Attr{}, 0, false
	}
	i = skipSpace(p.text, i)
	if i >= len(p.text) || p.text[i] != '=' {
		// Attribute without value.
		return Attr{Name: name, Span: p.span(start, i)}, i, true
	}
	i = skipSpace(p.text, i+1)
	if i >= len(p.text) {
		return Attr{}, 0, false
	}
	if q := p.text[i]; q == '"' || q == '\'' {
		valStart := i + 1
		rel := strings.IndexByte(p.text[valStart:], q)
		if rel < 0 {
			return Attr{}, 0, false
		}
		end := valStart + rel + 1
		return Attr{
			Name:  name,
			Value: p.text[valStart : end-1],
			Span:  p.span(start, end),
		}, end, true
	}
	valStart := i
	for i < len(p.text) && p.text[i] != '>' && p.text[i] != '/' && !isSpaceByte(p.text[i]) {
		i++
	}
	return Attr{
		Name:  name,
		Value: p.text[valStart:i],
		Span:  p.span(start, i),
	}, i, true
}

// scanName reads an XML-ish tag or attribute name: letters, digits,
// underscore, dot, dash, colon; must start with a letter or underscore.
func scanName(s string, i int) (string, int) {
	start := i
	if i >= len(s) || !isNameStartByte(s[i]) {
		return "", i
	}
	for i < len(s) && isNameByte(s[i]) {
		i++
	}
	return s[start:i], i
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpaceByte(s[i]) {
		i++
	}
	return i
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isNameStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isNameStartByte(b) || (b >= '0' && b <= '9') || b == '.' || b == '-' || b == ':'
}
