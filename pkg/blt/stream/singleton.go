package stream

import (
	"errors"
	"iter"

	"github.com/michaelcowan/blt-core/pkg/blt"
)

// ErrTooManyElements is returned by [SingletonCollector.Collect] when the
// sequence yields a second element.
var ErrTooManyElements = errors.New("expected stream to contain exactly 0 or 1 elements")

// SingletonCollector reduces a sequence expected to contain at most one
// element to a result of type R. A collector holds only its finishing
// strategy; the per-run state lives in a fresh accumulator created by each
// [SingletonCollector.Collect] call, so one collector may be reused and
// shared between goroutines.
//
// Construct collectors with [ToOptional] or [ToNullable].
type SingletonCollector[T, R any] struct {
	finish func(acc accumulator[T]) R
}

// accumulator holds the reduction state of a single Collect run. The set
// flag, not the value, guards the slot: a zero first element occupies it and
// a second element still fails.
type accumulator[T any] struct {
	value T
	set   bool
}

func (a *accumulator[T]) accept(v T) error {
	if a.set {
		return ErrTooManyElements
	}
	a.value = v
	a.set = true
	return nil
}

// ToOptional returns a collector reducing to a [blt.Optional]: absent for an
// empty sequence, present for a single element. A present zero value stays
// distinguishable from absence, so prefer this variant when zero or nil
// elements are possible.
func ToOptional[T any]() SingletonCollector[T, blt.Optional[T]] {
	return SingletonCollector[T, blt.Optional[T]]{
		finish: func(acc accumulator[T]) blt.Optional[T] {
			if !acc.set {
				return blt.None[T]()
			}
			return blt.Some(acc.value)
		},
	}
}

// ToNullable returns a collector reducing to the bare element, or to the zero
// value of T for an empty sequence. A collected zero value is therefore
// indistinguishable from an empty sequence; use [ToOptional] when that
// distinction matters.
func ToNullable[T any]() SingletonCollector[T, T] {
	return SingletonCollector[T, T]{
		finish: func(acc accumulator[T]) T {
			return acc.value
		},
	}
}

// Collect drains seq and renders the result. It fails with
// [ErrTooManyElements] the moment a second element is yielded, whatever the
// element values; the producer is stopped immediately and remaining elements
// are never pulled. On error the result is the zero value of R.
func (c SingletonCollector[T, R]) Collect(seq iter.Seq[T]) (R, error) {
	var acc accumulator[T]
	for v := range seq {
		if err := acc.accept(v); err != nil {
			var zero R
			return zero, err
		}
	}
	return c.finish(acc), nil
}
