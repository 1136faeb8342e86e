// Package stream provides reductions over sequences that are expected to
// contain at most one element, such as the matches of a filter that must be
// unique.
//
// Highlights:
// - ToOptional: reduce to a blt.Optional, keeping absence and a present
//   zero value distinguishable
// - ToNullable: reduce to the bare element, zero value when empty
// - SingletonCollector.Collect: drive the reduction over an iter.Seq,
//   failing fast with ErrTooManyElements on the second element
//
// Collectors are stateless descriptors: each Collect call runs on fresh
// state, so descriptors may be stored, shared and used concurrently. The
// reduction is strictly sequential; there is deliberately no way to merge
// partial reductions.
package stream
