// Package blt provides the core value types shared by the blt utility
// subpackages.
//
// Highlights:
// - Some/None/FromPtr: construct Optional[T] values
// - Optional[T]: container distinguishing a present value from absence
// - Map: transform a present value, preserving absence
// - IsNil: nil check that sees through interfaces wrapping nil values
//
// The subpackages obj, ctr, ex, en, str and stream build on these types;
// see their package docs for the operations they offer.
package blt
