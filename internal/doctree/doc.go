// Package doctree parses the raw text of a documentation comment into a tag
// tree: an ordered sequence of text, element and self-closing element nodes,
// each carrying the absolute source span of the range it was parsed from.
//
// The parser is deliberately permissive. Malformed nesting never fails:
// unmatched closing tags are dropped, unterminated elements close at the end
// of the comment, and anything that cannot be read as a tag stays plain text.
package doctree
