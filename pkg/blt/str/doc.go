// Package str provides validation utilities for strings.
//
// Highlights:
// - RequireNotEmpty: pass a string through, failing when it is empty
package str
