// Package ex provides utilities for transforming and raising errors around
// operations.
//
// Highlights:
// - TransformErrors/TransformErrorsRun: run an operation and rewrite its error
// - FailIf/FailUnless: turn a predicate violation into an error
// - Errors: flatten a joined error into its components
//
// Panics are never recovered by this package; an operation that panics is
// treated as unrecoverable and the panic propagates to the caller.
package ex
