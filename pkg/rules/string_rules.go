package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kovakit/kova"
)

// MinLen validates that a string has at least min characters (runes).
func MinLen(min int) kova.Validator[string, string] {
	return kova.Constraint[string]{
		ID: "kova.minLength",
		Test: func(c kova.ConstraintContext[string]) bool {
			return utf8.RuneCountInString(c.Input) >= min
		},
		Fallback: "must be at least %{min} characters",
		Params:   map[string]any{"min": min},
		Args:     []any{min},
	}.Validator()
}

// MaxLen validates that a string has at most max characters (runes).
func MaxLen(max int) kova.Validator[string, string] {
	return kova.Constraint[string]{
		ID: "kova.maxLength",
		Test: func(c kova.ConstraintContext[string]) bool {
			return utf8.RuneCountInString(c.Input) <= max
		},
		Fallback: "must be at most %{max} characters",
		Params:   map[string]any{"max": max},
		Args:     []any{max},
	}.Validator()
}

// Length validates that a string has exactly the given number of characters.
func Length(exact int) kova.Validator[string, string] {
	return kova.Constraint[string]{
		ID: "kova.length",
		Test: func(c kova.ConstraintContext[string]) bool {
			return utf8.RuneCountInString(c.Input) == exact
		},
		Fallback: "must be exactly %{length} characters",
		Params:   map[string]any{"length": exact},
		Args:     []any{exact},
	}.Validator()
}

// NotBlank validates that a string is not empty after trimming whitespace.
func NotBlank() kova.Validator[string, string] {
	return kova.Constraint[string]{
		ID: "kova.notBlank",
		Test: func(c kova.ConstraintContext[string]) bool {
			return strings.TrimSpace(c.Input) != ""
		},
		Fallback: "must not be blank",
	}.Validator()
}

// Pattern validates that a string matches the regular expression.
func Pattern(re *regexp.Regexp) kova.Validator[string, string] {
	return kova.Constraint[string]{
		ID: "kova.pattern",
		Test: func(c kova.ConstraintContext[string]) bool {
			return re.MatchString(c.Input)
		},
		Fallback: "must match the expected pattern %{pattern}",
		Params:   map[string]any{"pattern": re.String()},
		Args:     []any{re.String()},
	}.Validator()
}

// StartsWith validates that a string begins with the given prefix.
func StartsWith(prefix string) kova.Validator[string, string] {
	return kova.Constraint[string]{
		ID: "kova.startsWith",
		Test: func(c kova.ConstraintContext[string]) bool {
			return strings.HasPrefix(c.Input, prefix)
		},
		Fallback: "must start with %{prefix}",
		Params:   map[string]any{"prefix": prefix},
		Args:     []any{prefix},
	}.Validator()
}

// EndsWith validates that a string ends with the given suffix.
func EndsWith(suffix string) kova.Validator[string, string] {
	return kova.Constraint[string]{
		ID: "kova.endsWith",
		Test: func(c kova.ConstraintContext[string]) bool {
			return strings.HasSuffix(c.Input, suffix)
		},
		Fallback: "must end with %{suffix}",
		Params:   map[string]any{"suffix": suffix},
		Args:     []any{suffix},
	}.Validator()
}
