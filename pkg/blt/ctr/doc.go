// Package ctr provides transformation and interrogation utilities for
// containers: maps, slices and sequences.
//
// Highlights:
// - TransformValues/TransformValuesTo: rebuild a map with transformed values
// - ComputeIfAbsent: memoizing map lookup
// - HasSize/HasSizeMap/HasSizeSeq: exact size checks, lazy for sequences
//
// Operations that accept a transform or compute function stop at the first
// error and never expose a partially transformed container.
package ctr
