// Package textnorm implements the text normalization primitives the trivial
// content rules are built from: comment marker stripping, whitespace and
// stop-word removal, non-identifier filtering and the single-rotation
// word-order heuristic.
package textnorm
