package obj

import (
	"reflect"

	"github.com/michaelcowan/blt-core/pkg/blt"
)

// Poke applies mutate to instance and returns the same instance. When mutate
// returns an error, the zero value is returned with it; the instance may have
// been partially mutated by then.
func Poke[T any](instance T, mutate func(instance T) error) (T, error) {
	if err := mutate(instance); err != nil {
		var zero T
		return zero, err
	}
	return instance, nil
}

// Tap builds an instance via create, then mutates and returns it via [Poke].
func Tap[T any](create func() T, mutate func(instance T) error) (T, error) {
	return Poke(create(), mutate)
}

// OrElseGet returns *value when value is non-nil, otherwise the result of
// supplier. The supplier is only invoked when needed and its error is
// returned as-is.
func OrElseGet[T any](value *T, supplier func() (T, error)) (T, error) {
	if value != nil {
		return *value, nil
	}
	return supplier()
}

// OrElseOnError returns the result of supplier, or defaultValue when the
// supplier fails. Panics from the supplier are not recovered.
func OrElseOnError[T any](supplier func() (T, error), defaultValue T) T {
	v, err := supplier()
	if err != nil {
		return defaultValue
	}
	return v
}

// OrEmptyOnError returns the result of supplier as a present Optional, or an
// absent Optional when the supplier fails.
func OrEmptyOnError[T any](supplier func() (T, error)) blt.Optional[T] {
	v, err := supplier()
	if err != nil {
		return blt.None[T]()
	}
	return blt.Some(v)
}

// NewInstanceOf returns an empty instance of v's dynamic type: maps and
// slices are made empty, pointers point at a fresh zero element and other
// values are zeroed. It returns an absent Optional for untyped nil, funcs and
// channels, which have no meaningful empty instance. A nil map, slice or
// pointer still describes its type and constructs.
func NewInstanceOf[T any](v T) blt.Optional[T] {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return blt.None[T]()
	}

	t := rv.Type()
	var fresh reflect.Value
	switch t.Kind() {
	case reflect.Map:
		fresh = reflect.MakeMap(t)
	case reflect.Slice:
		fresh = reflect.MakeSlice(t, 0, 0)
	case reflect.Pointer:
		fresh = reflect.New(t.Elem())
	case reflect.Func, reflect.Chan:
		return blt.None[T]()
	default:
		fresh = reflect.Zero(t)
	}

	instance, ok := fresh.Interface().(T)
	if !ok {
		return blt.None[T]()
	}
	return blt.Some(instance)
}
