package i18n_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kovakit/kova"
	"github.com/kovakit/kova/pkg/i18n"
	"github.com/kovakit/kova/pkg/rules"
)

func mapBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.New(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {"kova": map[string]any{"minLength": "must be at least %{min} characters"}},
		"ja": {"kova": map[string]any{"minLength": "%{min}文字以上でなければなりません"}},
	}})
	require.NoError(t, err)
	return b
}

func TestBundleResolve(t *testing.T) {
	t.Parallel()
	b := mapBundle(t)

	t.Run("resolves an exact locale", func(t *testing.T) {
		t.Parallel()
		tmpl, ok := b.Resolve("kova.minLength", "ja")
		require.True(t, ok)
		assert.Equal(t, "%{min}文字以上でなければなりません", tmpl)
	})

	t.Run("matches regional variants onto loaded languages", func(t *testing.T) {
		t.Parallel()
		tmpl, ok := b.Resolve("kova.minLength", "en-US")
		require.True(t, ok)
		assert.Equal(t, "must be at least %{min} characters", tmpl)
	})

	t.Run("falls back to the default language", func(t *testing.T) {
		t.Parallel()
		tmpl, ok := b.Resolve("kova.minLength", "fr")
		require.True(t, ok)
		assert.Equal(t, "must be at least %{min} characters", tmpl)
	})

	t.Run("reports false for unknown constraints", func(t *testing.T) {
		t.Parallel()
		_, ok := b.Resolve("kova.unknown", "en")
		assert.False(t, ok)
	})

	t.Run("lists loaded languages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"en", "ja"}, b.Languages())
	})
}

func TestBundleConstruction(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
			"": {"x": "y"},
		}})
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)
	})
}

func TestBundleFromFS(t *testing.T) {
	t.Parallel()

	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), os.DirFS("testdata"), "locales")
	require.NotNil(t, adapter)

	b, err := i18n.New(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ja"}, b.Languages())

	tmpl, ok := b.Resolve("kova.elements", "ja")
	require.True(t, ok)
	assert.Equal(t, "制約を満たさない要素があります", tmpl)
}

// TestAmbientLocaleIntegration exercises the full contract: a message
// produced before a locale switch renders in the new locale afterwards.
func TestAmbientLocaleIntegration(t *testing.T) {
	b := mapBundle(t)
	kova.SetResolver(b.Resolve)
	t.Cleanup(func() {
		kova.SetResolver(nil)
		kova.SetLocale(kova.DefaultLocale)
	})

	res := kova.TryValidate("abc", rules.MinLen(5))
	require.True(t, res.IsFailure())
	m := res.Messages()[0]

	kova.SetLocale("en")
	assert.Equal(t, "must be at least 5 characters", m.Text())

	kova.SetLocale("ja")
	assert.Equal(t, "5文字以上でなければなりません", m.Text())
}
