// Package rules implements the documentation comment lint rules. Each rule
// is an independent pure check over a declaration and its parsed tag tree
// (or over a raw comment block for the rules that scan every doc comment
// regardless of what it documents). Rules share the applicability filter and
// the textnorm trivial-content heuristics but never share state.
package rules
