package kova_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovakit/kova"
)

func TestOnEach(t *testing.T) {
	t.Parallel()

	t.Run("all elements valid", func(t *testing.T) {
		t.Parallel()
		res := kova.TryValidate([]string{"hello", "world"}, kova.OnEach(minStr(3)))
		assert.True(t, res.IsSuccess())
	})

	t.Run("folds element failures into one summary message", func(t *testing.T) {
		t.Parallel()
		type box struct{ List []string }
		s := kova.NewSchema[*box]("Box")
		kova.Property(s, "list", func(b *box) []string { return b.List }, kova.OnEach(minStr(3)))

		res := kova.TryValidate(&box{List: []string{"long enough", "no", "fine!"}}, s.Validator())
		require.True(t, res.IsFailure())
		require.Len(t, res.Messages(), 1)

		summary := res.Messages()[0]
		assert.Equal(t, kova.ConstraintElements, summary.ConstraintID)
		assert.Contains(t, summary.Text(), "Some elements do not satisfy the constraint: [")

		// Full per-element diagnostics stay reachable through the args.
		require.Len(t, summary.Args, 1)
		inner, ok := summary.Args[0].(kova.Message)
		require.True(t, ok)
		assert.Equal(t, "list[1]<iterable element>", inner.Path.FullName())
		assert.Equal(t, "no", inner.Input)
	})
}

func TestOnEachValue(t *testing.T) {
	t.Parallel()

	in := map[string]string{"a": "long enough", "b": "no"}
	res := kova.TryValidate(in, kova.OnEachValue[string](minStr(3)))

	require.True(t, res.IsFailure())
	require.Len(t, res.Messages(), 1)
	summary := res.Messages()[0]
	require.Len(t, summary.Args, 1)
	inner := summary.Args[0].(kova.Message)
	assert.Equal(t, "[b]<map value>", inner.Path.FullName())
}

func TestOnEachKey(t *testing.T) {
	t.Parallel()

	in := map[string]int{"ok": 1, "x": 2}
	res := kova.TryValidate(in, kova.OnEachKey[string, int](minStr(2)))

	require.True(t, res.IsFailure())
	summary := res.Messages()[0]
	require.Len(t, summary.Args, 1)
	inner := summary.Args[0].(kova.Message)
	assert.Equal(t, "[x]<map key>", inner.Path.FullName())
	assert.Equal(t, "x", inner.Input)
}

func TestOnEachDeterministicOrder(t *testing.T) {
	t.Parallel()

	in := map[string]string{"c": "", "a": "", "b": ""}
	res := kova.TryValidate(in, kova.OnEachValue[string](minStr(1)))

	require.Len(t, res.Messages(), 1)
	args := res.Messages()[0].Args
	require.Len(t, args, 3)
	assert.Equal(t, "[a]<map value>", args[0].(kova.Message).Path.FullName())
	assert.Equal(t, "[b]<map value>", args[1].(kova.Message).Path.FullName())
	assert.Equal(t, "[c]<map value>", args[2].(kova.Message).Path.FullName())
}
