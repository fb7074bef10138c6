package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when a requested locale has no templates.
const DefaultLanguage = "en"

// Bundle holds locale-keyed constraint templates loaded through an Adapter
// and resolves them for the kova core. Install it with
// kova.SetResolver(bundle.Resolve).
type Bundle struct {
	templates   map[string]map[string]any
	defaultLang string
	logger      *slog.Logger

	// matcher maps requested locales like "en-US" onto loaded languages.
	matcher language.Matcher
	langs   []string

	mu sync.RWMutex
}

// Option configures a Bundle.
type Option func(*Bundle)

// WithDefaultLanguage sets the language used when the requested locale has
// no templates.
func WithDefaultLanguage(lang string) Option {
	return func(b *Bundle) {
		if lang != "" {
			b.defaultLang = lang
		}
	}
}

// WithLogger provides a logger for missing-template diagnostics. A discard
// logger is used by default.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bundle) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New loads templates from the adapter and builds a Bundle.
func New(ctx context.Context, adapter Adapter, options ...Option) (*Bundle, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	b := &Bundle{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(b)
	}

	templates, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, tmpls := range templates {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if tmpls == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilLanguageTemplates, lang)
		}
	}

	b.templates = templates
	b.rebuildMatcher()
	b.logger.InfoContext(ctx, "constraint templates loaded", "languages", b.langs)
	return b, nil
}

func (b *Bundle) rebuildMatcher() {
	langs := make([]string, 0, len(b.templates))
	for lang := range b.templates {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tags[i] = language.Make(lang)
	}
	b.langs = langs
	if len(tags) > 0 {
		b.matcher = language.NewMatcher(tags)
	}
}

// Languages returns the loaded language codes in sorted order.
func (b *Bundle) Languages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.langs))
	copy(out, b.langs)
	return out
}

// Resolve returns the template registered for a constraint identifier in
// the given locale. The locale is matched against the loaded languages
// (en-US resolves to en) and falls back to the default language. It reports
// false when neither holds a template, letting the message fall back to its
// built-in English text.
func (b *Bundle) Resolve(constraintID, locale string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if lang, ok := b.match(locale); ok {
		if tmpl, ok := lookup(b.templates[lang], constraintID); ok {
			return tmpl, true
		}
	}
	if tmpl, ok := lookup(b.templates[b.defaultLang], constraintID); ok {
		return tmpl, true
	}
	b.logger.Debug("no template for constraint", "constraint", constraintID, "locale", locale)
	return "", false
}

// match maps a requested locale onto a loaded language code.
func (b *Bundle) match(locale string) (string, bool) {
	if _, ok := b.templates[locale]; ok {
		return locale, true
	}
	if b.matcher == nil || locale == "" {
		return "", false
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", false
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return b.langs[idx], true
}

// lookup traverses a nested template map using dot-separated keys, so the
// identifier "kova.minLength" addresses m["kova"]["minLength"].
func lookup(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			if !ok {
				return "", false
			}
			s, ok := val.(string)
			return s, ok
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}
