package rules

import "github.com/kovakit/kova"

// Numeric constrains the numeric rule helpers to Go's built-in number kinds.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min validates that a number is greater than or equal to min.
func Min[T Numeric](min T) kova.Validator[T, T] {
	return kova.Constraint[T]{
		ID: "kova.min",
		Test: func(c kova.ConstraintContext[T]) bool {
			return c.Input >= min
		},
		Fallback: "must be greater than or equal to %{min}",
		Params:   map[string]any{"min": min},
		Args:     []any{min},
	}.Validator()
}

// Max validates that a number is less than or equal to max.
func Max[T Numeric](max T) kova.Validator[T, T] {
	return kova.Constraint[T]{
		ID: "kova.max",
		Test: func(c kova.ConstraintContext[T]) bool {
			return c.Input <= max
		},
		Fallback: "must be less than or equal to %{max}",
		Params:   map[string]any{"max": max},
		Args:     []any{max},
	}.Validator()
}

// GreaterThan validates a strict lower bound.
func GreaterThan[T Numeric](bound T) kova.Validator[T, T] {
	return kova.Constraint[T]{
		ID: "kova.greaterThan",
		Test: func(c kova.ConstraintContext[T]) bool {
			return c.Input > bound
		},
		Fallback: "must be greater than %{bound}",
		Params:   map[string]any{"bound": bound},
		Args:     []any{bound},
	}.Validator()
}

// LessThan validates a strict upper bound.
func LessThan[T Numeric](bound T) kova.Validator[T, T] {
	return kova.Constraint[T]{
		ID: "kova.lessThan",
		Test: func(c kova.ConstraintContext[T]) bool {
			return c.Input < bound
		},
		Fallback: "must be less than %{bound}",
		Params:   map[string]any{"bound": bound},
		Args:     []any{bound},
	}.Validator()
}

// Positive validates that a number is greater than zero.
func Positive[T Numeric]() kova.Validator[T, T] {
	return kova.Constraint[T]{
		ID: "kova.positive",
		Test: func(c kova.ConstraintContext[T]) bool {
			return c.Input > 0
		},
		Fallback: "must be positive",
	}.Validator()
}

// Negative validates that a number is less than zero.
func Negative[T Numeric]() kova.Validator[T, T] {
	return kova.Constraint[T]{
		ID: "kova.negative",
		Test: func(c kova.ConstraintContext[T]) bool {
			return c.Input < 0
		},
		Fallback: "must be negative",
	}.Validator()
}

// Between validates an inclusive range.
func Between[T Numeric](min, max T) kova.Validator[T, T] {
	return kova.Constraint[T]{
		ID: "kova.between",
		Test: func(c kova.ConstraintContext[T]) bool {
			return c.Input >= min && c.Input <= max
		},
		Fallback: "must be between %{min} and %{max}",
		Params:   map[string]any{"min": min, "max": max},
		Args:     []any{min, max},
	}.Validator()
}
