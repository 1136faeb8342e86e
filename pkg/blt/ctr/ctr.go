package ctr

import (
	"iter"

	"github.com/michaelcowan/blt-core/pkg/blt"
)

// TransformValues returns a new map of the same type as source with every
// value replaced by the result of transform. Keys are untouched. The first
// transform error is returned and no map is exposed. A nil source yields a
// nil result.
func TransformValues[M ~map[K]V, K comparable, V any](source M, transform func(value V) (V, error)) (M, error) {
	if source == nil {
		return nil, nil
	}

	result := make(M, len(source))
	for k, v := range source {
		t, err := transform(v)
		if err != nil {
			return nil, err
		}
		result[k] = t
	}
	return result, nil
}

// TransformValuesTo is [TransformValues] for transforms that change the value
// type. The container type cannot follow the new value type, so the result is
// a plain map.
func TransformValuesTo[K comparable, V, R any](source map[K]V, transform func(value V) (R, error)) (map[K]R, error) {
	if source == nil {
		return nil, nil
	}

	result := make(map[K]R, len(source))
	for k, v := range source {
		t, err := transform(v)
		if err != nil {
			return nil, err
		}
		result[k] = t
	}
	return result, nil
}

// ComputeIfAbsent returns the value stored in m under key, computing and
// storing it first when the key is missing or holds a nil value. When compute
// fails, or its result is itself nil, m is left unmodified. Writing to a nil
// map panics, as any Go map write does.
func ComputeIfAbsent[M ~map[K]V, K comparable, V any](m M, key K, compute func(key K) (V, error)) (V, error) {
	if v, ok := m[key]; ok && !blt.IsNil(v) {
		return v, nil
	}

	v, err := compute(key)
	if err != nil {
		var zero V
		return zero, err
	}
	if blt.IsNil(v) {
		return v, nil
	}

	m[key] = v
	return v, nil
}

// HasSize reports whether s has exactly size elements. A nil slice has size 0.
func HasSize[S ~[]E, E any](s S, size int) bool {
	return len(s) == size
}

// HasSizeMap reports whether m has exactly size entries. A nil map has size 0.
func HasSizeMap[M ~map[K]V, K comparable, V any](m M, size int) bool {
	return len(m) == size
}

// HasSizeSeq reports whether seq yields exactly size elements. It stops
// pulling elements as soon as the count exceeds size, so it terminates even
// on endless sequences.
func HasSizeSeq[T any](seq iter.Seq[T], size int) bool {
	if size < 0 {
		return false
	}

	count := 0
	for range seq {
		count++
		if count > size {
			return false
		}
	}
	return count == size
}
