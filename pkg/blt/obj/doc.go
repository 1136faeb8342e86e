// Package obj provides construction and fallback utilities that operate on
// values of any type.
//
// Highlights:
// - Poke/Tap: mutate an instance (optionally building it first) and return it
// - OrElseGet: coalesce a possibly-nil value with a computed fallback
// - OrElseOnError/OrEmptyOnError: recover a failing computation with a
//   default or an absent Optional
// - NewInstanceOf: construct an empty instance of a value's dynamic type
package obj
