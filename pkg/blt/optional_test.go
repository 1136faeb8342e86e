package blt_test

import (
	"testing"

	"github.com/michaelcowan/blt-core/pkg/blt"
	"github.com/stretchr/testify/assert"
)

func TestSome_HoldsValue(t *testing.T) {
	o := blt.Some("Greg")

	assert.True(t, o.IsPresent())
	assert.False(t, o.IsEmpty())
	assert.Equal(t, "Greg", o.Value())
}

func TestSome_ZeroValueIsStillPresent(t *testing.T) {
	o := blt.Some(0)

	assert.True(t, o.IsPresent())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestNone_IsAbsent(t *testing.T) {
	o := blt.None[string]()

	assert.False(t, o.IsPresent())
	assert.True(t, o.IsEmpty())
	assert.Empty(t, o.Value())

	_, ok := o.Get()
	assert.False(t, ok)
}

func TestZeroOptional_IsAbsent(t *testing.T) {
	var o blt.Optional[int]

	assert.True(t, o.IsEmpty())
}

func TestFromPtr(t *testing.T) {
	t.Run("nil pointer is absent", func(t *testing.T) {
		o := blt.FromPtr[string](nil)

		assert.True(t, o.IsEmpty())
	})

	t.Run("non-nil pointer is present", func(t *testing.T) {
		v := "Worf"

		o := blt.FromPtr(&v)

		assert.True(t, o.IsPresent())
		assert.Equal(t, "Worf", o.Value())
	})

	t.Run("copies the pointee", func(t *testing.T) {
		v := "before"

		o := blt.FromPtr(&v)
		v = "after"

		assert.Equal(t, "before", o.Value())
	})
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, "value", blt.Some("value").OrElse("fallback"))
	assert.Equal(t, "fallback", blt.None[string]().OrElse("fallback"))
}

func TestMap_TransformsPresentValue(t *testing.T) {
	o := blt.Map(blt.Some(21), func(v int) string {
		if v >= 18 {
			return "adult"
		}
		return "minor"
	})

	assert.True(t, o.IsPresent())
	assert.Equal(t, "adult", o.Value())
}

func TestMap_PreservesAbsence(t *testing.T) {
	called := false

	o := blt.Map(blt.None[int](), func(v int) string {
		called = true
		return "never"
	})

	assert.True(t, o.IsEmpty())
	assert.False(t, called)
}
