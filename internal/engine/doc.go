// Package engine orchestrates a lint run: it fans declarations out across
// workers, feeds comment trivia to the comment-stream rules, and merges the
// per-declaration diagnostic bags back into one deterministic result.
package engine
