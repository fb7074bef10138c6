package rules

import (
	"time"

	"github.com/kovakit/kova"
)

// Temporal rules read the current time through the constraint context, so a
// clock override configured with kova.WithClock makes them deterministic.

// Past validates that a time lies strictly before now.
func Past() kova.Validator[time.Time, time.Time] {
	return kova.Constraint[time.Time]{
		ID: "kova.past",
		Test: func(c kova.ConstraintContext[time.Time]) bool {
			return c.Input.Before(c.Now())
		},
		Fallback: "must be in the past",
	}.Validator()
}

// Future validates that a time lies strictly after now.
func Future() kova.Validator[time.Time, time.Time] {
	return kova.Constraint[time.Time]{
		ID: "kova.future",
		Test: func(c kova.ConstraintContext[time.Time]) bool {
			return c.Input.After(c.Now())
		},
		Fallback: "must be in the future",
	}.Validator()
}

// Before validates that a time lies strictly before the given instant.
func Before(instant time.Time) kova.Validator[time.Time, time.Time] {
	return kova.Constraint[time.Time]{
		ID: "kova.before",
		Test: func(c kova.ConstraintContext[time.Time]) bool {
			return c.Input.Before(instant)
		},
		Fallback: "must be before %{instant}",
		Params:   map[string]any{"instant": instant.Format(time.RFC3339)},
		Args:     []any{instant},
	}.Validator()
}

// After validates that a time lies strictly after the given instant.
func After(instant time.Time) kova.Validator[time.Time, time.Time] {
	return kova.Constraint[time.Time]{
		ID: "kova.after",
		Test: func(c kova.ConstraintContext[time.Time]) bool {
			return c.Input.After(instant)
		},
		Fallback: "must be after %{instant}",
		Params:   map[string]any{"instant": instant.Format(time.RFC3339)},
		Args:     []any{instant},
	}.Validator()
}
