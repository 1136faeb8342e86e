package blt

// Optional is a value container that distinguishes a present value from
// absence. The zero Optional is absent. A present zero value (including a
// nil pointer) is not the same as an absent Optional.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{
		value:   value,
		present: true,
	}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr returns an Optional holding *p, or an absent Optional when p is nil.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Value returns the value, or the zero value of T when absent.
func (o Optional[T]) Value() T {
	return o.value
}

// OrElse returns the value when present, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Map transforms a present value, returning an absent Optional when o is
// absent.
func Map[T, U any](o Optional[T], transform func(value T) U) Optional[U] {
	if !o.present {
		return None[U]()
	}
	return Some(transform(o.value))
}
