package ex

import (
	"github.com/michaelcowan/blt-core/pkg/blt"
)

// TransformErrors runs op and passes any error it returns through transform,
// typically to wrap it in a domain error. On error the zero value is
// returned. Panics from op are not recovered.
func TransformErrors[R any](op func() (R, error), transform func(err error) error) (R, error) {
	v, err := op()
	if err != nil {
		var zero R
		return zero, transform(err)
	}
	return v, nil
}

// TransformErrorsRun is [TransformErrors] for operations with no result.
func TransformErrorsRun(op func() error, transform func(err error) error) error {
	if err := op(); err != nil {
		return transform(err)
	}
	return nil
}

// FailIf returns value, unless predicate holds for it, in which case the zero
// value and the error built by errFn are returned.
func FailIf[T any](value T, predicate func(value T) bool, errFn func() error) (T, error) {
	if predicate(value) {
		var zero T
		return zero, errFn()
	}
	return value, nil
}

// FailUnless is the negation of [FailIf]: value passes through only when
// predicate holds for it.
func FailUnless[T any](value T, predicate func(value T) bool, errFn func() error) (T, error) {
	return FailIf(value, func(v T) bool { return !predicate(v) }, errFn)
}

// Errors flattens err into its component errors: nil yields an empty slice,
// a joined error (anything implementing Unwrap() []error) yields its parts
// and any other error yields itself as the single element.
func Errors(err error) []error {
	if blt.IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
