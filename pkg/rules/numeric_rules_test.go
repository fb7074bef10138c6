package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovakit/kova"
	"github.com/kovakit/kova/pkg/rules"
)

func TestMin(t *testing.T) {
	t.Parallel()

	assert.True(t, kova.TryValidate(3, rules.Min(3)).IsSuccess())
	assert.True(t, kova.TryValidate(4, rules.Min(3)).IsSuccess())

	res := kova.TryValidate(2, rules.Min(3))
	require.True(t, res.IsFailure())
	assert.Equal(t, "must be greater than or equal to 3", res.Messages()[0].Text())
}

func TestMax(t *testing.T) {
	t.Parallel()

	assert.True(t, kova.TryValidate(10, rules.Max(10)).IsSuccess())

	res := kova.TryValidate(11, rules.Max(10))
	require.True(t, res.IsFailure())
	assert.Equal(t, "must be less than or equal to 10", res.Messages()[0].Text())
}

func TestStrictBounds(t *testing.T) {
	t.Parallel()

	assert.True(t, kova.TryValidate(4, rules.GreaterThan(3)).IsSuccess())
	assert.True(t, kova.TryValidate(3, rules.GreaterThan(3)).IsFailure())

	assert.True(t, kova.TryValidate(2, rules.LessThan(3)).IsSuccess())
	assert.True(t, kova.TryValidate(3, rules.LessThan(3)).IsFailure())
}

func TestSigns(t *testing.T) {
	t.Parallel()

	assert.True(t, kova.TryValidate(1, rules.Positive[int]()).IsSuccess())
	assert.True(t, kova.TryValidate(0, rules.Positive[int]()).IsFailure())

	assert.True(t, kova.TryValidate(-1, rules.Negative[int]()).IsSuccess())
	assert.True(t, kova.TryValidate(0, rules.Negative[int]()).IsFailure())
}

func TestBetween(t *testing.T) {
	t.Parallel()

	assert.True(t, kova.TryValidate(3.5, rules.Between(1.0, 5.0)).IsSuccess())

	res := kova.TryValidate(6.0, rules.Between(1.0, 5.0))
	require.True(t, res.IsFailure())
	assert.Equal(t, "must be between 1 and 5", res.Messages()[0].Text())
}

func TestFloatAndCustomKinds(t *testing.T) {
	t.Parallel()

	type score float64
	assert.True(t, kova.TryValidate(score(0.5), rules.Min(score(0.1))).IsSuccess())
	assert.True(t, kova.TryValidate(score(0.05), rules.Min(score(0.1))).IsFailure())
}
