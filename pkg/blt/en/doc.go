// Package en provides lookup utilities for enum-like types: named types with
// a fixed set of constant values and a String method.
//
// Highlights:
// - Of: case-sensitive lookup of a candidate by its String() name
// - OfIgnoreCase: case-insensitive variant
//
// Both return an absent Optional for unmatched names rather than failing,
// making them safe for probing user input.
package en
