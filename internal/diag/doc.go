// Package diag defines the diagnostic model shared by every lint rule:
// severities, stable rule codes, the Diagnostic value, the Reporter contract
// and the Bag accumulator.
package diag
