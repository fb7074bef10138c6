package rules

import (
	"regexp"
	"time"

	"github.com/kovakit/kova"
)

// StringChain accumulates string constraints fluently. Every method returns
// a new chain; the zero chain accepts everything.
type StringChain struct {
	v kova.Validator[string, string]
}

// String starts an empty string chain.
func String() StringChain {
	return StringChain{v: kova.Pass[string]()}
}

func (c StringChain) and(next kova.Validator[string, string]) StringChain {
	return StringChain{v: kova.And(c.v, next)}
}

// Min appends a minimum-length constraint.
func (c StringChain) Min(min int) StringChain { return c.and(MinLen(min)) }

// Max appends a maximum-length constraint.
func (c StringChain) Max(max int) StringChain { return c.and(MaxLen(max)) }

// Length appends an exact-length constraint.
func (c StringChain) Length(exact int) StringChain { return c.and(Length(exact)) }

// NotBlank appends a not-blank constraint.
func (c StringChain) NotBlank() StringChain { return c.and(NotBlank()) }

// Pattern appends a regular-expression constraint.
func (c StringChain) Pattern(re *regexp.Regexp) StringChain { return c.and(Pattern(re)) }

// Validator returns the accumulated validator.
func (c StringChain) Validator() kova.Validator[string, string] { return c.v }

// NumberChain accumulates numeric constraints fluently.
type NumberChain[T Numeric] struct {
	v kova.Validator[T, T]
}

// Number starts an empty numeric chain.
func Number[T Numeric]() NumberChain[T] {
	return NumberChain[T]{v: kova.Pass[T]()}
}

// Int is an alias of Number for integer-flavoured call sites.
func Int[T Numeric]() NumberChain[T] { return Number[T]() }

func (c NumberChain[T]) and(next kova.Validator[T, T]) NumberChain[T] {
	return NumberChain[T]{v: kova.And(c.v, next)}
}

// Min appends a lower-bound constraint.
func (c NumberChain[T]) Min(min T) NumberChain[T] { return c.and(Min(min)) }

// Max appends an upper-bound constraint.
func (c NumberChain[T]) Max(max T) NumberChain[T] { return c.and(Max(max)) }

// Positive appends a greater-than-zero constraint.
func (c NumberChain[T]) Positive() NumberChain[T] { return c.and(Positive[T]()) }

// Negative appends a less-than-zero constraint.
func (c NumberChain[T]) Negative() NumberChain[T] { return c.and(Negative[T]()) }

// Between appends an inclusive range constraint.
func (c NumberChain[T]) Between(min, max T) NumberChain[T] { return c.and(Between(min, max)) }

// Validator returns the accumulated validator.
func (c NumberChain[T]) Validator() kova.Validator[T, T] { return c.v }

// TimeChain accumulates temporal constraints fluently.
type TimeChain struct {
	v kova.Validator[time.Time, time.Time]
}

// Time starts an empty temporal chain.
func Time() TimeChain {
	return TimeChain{v: kova.Pass[time.Time]()}
}

func (c TimeChain) and(next kova.Validator[time.Time, time.Time]) TimeChain {
	return TimeChain{v: kova.And(c.v, next)}
}

// Past appends a must-be-in-the-past constraint.
func (c TimeChain) Past() TimeChain { return c.and(Past()) }

// Future appends a must-be-in-the-future constraint.
func (c TimeChain) Future() TimeChain { return c.and(Future()) }

// Before appends a strict upper temporal bound.
func (c TimeChain) Before(instant time.Time) TimeChain { return c.and(Before(instant)) }

// After appends a strict lower temporal bound.
func (c TimeChain) After(instant time.Time) TimeChain { return c.and(After(instant)) }

// Validator returns the accumulated validator.
func (c TimeChain) Validator() kova.Validator[time.Time, time.Time] { return c.v }
