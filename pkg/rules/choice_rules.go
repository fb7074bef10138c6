package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kovakit/kova"
)

// OneOf validates that the input equals one of the allowed values.
func OneOf[T comparable](allowed ...T) kova.Validator[T, T] {
	choices := make([]string, len(allowed))
	for i, a := range allowed {
		choices[i] = fmt.Sprint(a)
	}
	rendered := strings.Join(choices, ", ")
	return kova.Constraint[T]{
		ID: "kova.oneOf",
		Test: func(c kova.ConstraintContext[T]) bool {
			for _, a := range allowed {
				if c.Input == a {
					return true
				}
			}
			return false
		},
		Fallback: "must be one of [%{choices}]",
		Params:   map[string]any{"choices": rendered},
		Args:     []any{rendered},
	}.Validator()
}

// Enum parses a string into an enum value through the given name table. The
// validator's output is the parsed value, so it composes with downstream
// validators over the enum type.
func Enum[E any](values map[string]E) kova.Validator[string, E] {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	rendered := strings.Join(names, ", ")

	member := kova.Constraint[string]{
		ID: "kova.enum",
		Test: func(c kova.ConstraintContext[string]) bool {
			_, ok := values[c.Input]
			return ok
		},
		Fallback: "must be one of [%{choices}]",
		Params:   map[string]any{"choices": rendered},
		Args:     []any{rendered},
	}.Validator()

	return kova.Map(member, func(name string) E { return values[name] })
}
