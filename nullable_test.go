package kova_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovakit/kova"
)

func ptr[T any](v T) *T { return &v }

func TestNotNil(t *testing.T) {
	t.Parallel()

	res := kova.TryValidate(ptr("x"), kova.NotNil[string]())
	assert.True(t, res.IsSuccess())

	res = kova.TryValidate((*string)(nil), kova.NotNil[string]())
	require.True(t, res.IsFailure())
	assert.Equal(t, kova.ConstraintNotNil, res.Messages()[0].ConstraintID)
	assert.Equal(t, "must not be null", res.Messages()[0].Text())
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	assert.True(t, kova.TryValidate((*int)(nil), kova.IsNil[int]()).IsSuccess())

	res := kova.TryValidate(ptr(1), kova.IsNil[int]())
	require.True(t, res.IsFailure())
	assert.Equal(t, "must be null", res.Messages()[0].Text())
}

func TestWhenNotNil(t *testing.T) {
	t.Parallel()

	v := kova.WhenNotNil(minStr(5))

	assert.True(t, kova.TryValidate((*string)(nil), v).IsSuccess(), "vacuous on nil")
	assert.True(t, kova.TryValidate(ptr("hello!"), v).IsSuccess())
	assert.True(t, kova.TryValidate(ptr("abc"), v).IsFailure())
}

func TestNotNilAnd(t *testing.T) {
	t.Parallel()

	v := kova.NotNilAnd(minStr(5))

	res := kova.TryValidate((*string)(nil), v)
	require.True(t, res.IsFailure())
	assert.Equal(t, kova.ConstraintNotNil, res.Messages()[0].ConstraintID)

	assert.True(t, kova.TryValidate(ptr("hello!"), v).IsSuccess())
}

func TestWithDefault(t *testing.T) {
	t.Parallel()

	t.Run("substitutes the default for nil", func(t *testing.T) {
		t.Parallel()
		res := kova.TryValidate((*string)(nil), kova.WithDefault("fallback"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "fallback", res.Value())
	})

	t.Run("downstream validators see the substituted value", func(t *testing.T) {
		t.Parallel()
		v := kova.WithDefaultThen("default!", minStr(5))
		res := kova.TryValidate((*string)(nil), v)
		require.True(t, res.IsSuccess())
		assert.Equal(t, "default!", res.Value())

		res = kova.TryValidate(ptr("abc"), v)
		assert.True(t, res.IsFailure(), "a present but short value still fails")
	})
}

func TestNonNil(t *testing.T) {
	t.Parallel()

	v := kova.NonNil(minStr(5))

	t.Run("the conversion itself is the null check", func(t *testing.T) {
		t.Parallel()
		res := kova.TryValidate((*string)(nil), v)
		require.True(t, res.IsFailure())
		require.Len(t, res.Messages(), 1)
		assert.Equal(t, kova.ConstraintNotNil, res.Messages()[0].ConstraintID)
	})

	t.Run("non-nil inputs flow into the wrapped validator", func(t *testing.T) {
		t.Parallel()
		res := kova.TryValidate(ptr("hello!"), v)
		require.True(t, res.IsSuccess())
		assert.Equal(t, "hello!", res.Value())
	})
}

func TestAsNillable(t *testing.T) {
	t.Parallel()

	v := kova.AsNillable(minStr(5))

	res := kova.TryValidate((*string)(nil), v)
	require.True(t, res.IsSuccess())
	assert.Nil(t, res.Value())

	res = kova.TryValidate(ptr("hello!"), v)
	require.True(t, res.IsSuccess())
	require.NotNil(t, res.Value())
	assert.Equal(t, "hello!", *res.Value())

	assert.True(t, kova.TryValidate(ptr("abc"), v).IsFailure())
}
