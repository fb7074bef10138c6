package kova

import "time"

// Validator is a composable validation step from an input value to a
// Result-shaped outcome, potentially transforming the value. The zero value
// is not usable; build validators through Constraint, the combinators, or
// NewValidator.
type Validator[I, O any] struct {
	run func(vc *Context, in I) (O, *fault)
}

// NewValidator builds a validator from a plain function. A non-empty message
// list marks the input as violated; the returned value is the validator's
// output either way.
func NewValidator[I, O any](run func(vc *Context, in I) (O, []Message)) Validator[I, O] {
	return Validator[I, O]{run: func(vc *Context, in I) (O, *fault) {
		out, msgs := run(vc, in)
		if len(msgs) == 0 {
			return out, nil
		}
		return out, violation(msgs...)
	}}
}

// Pass returns a validator that accepts every input unchanged.
func Pass[T any]() Validator[T, T] {
	return Validator[T, T]{run: func(_ *Context, in T) (T, *fault) {
		return in, nil
	}}
}

// ConstraintContext is the per-evaluation bundle handed to constraint
// predicates and text providers.
type ConstraintContext[T any] struct {
	// Input is the value under test.
	Input T
	// ConstraintID names the constraint being evaluated.
	ConstraintID string

	args   []any
	params map[string]any
	vc     *Context
}

// Path returns the structural location of the value under test.
func (c ConstraintContext[T]) Path() Path { return c.vc.Path() }

// Root returns the root-type label of the enclosing validation.
func (c ConstraintContext[T]) Root() string { return c.vc.Root() }

// Now returns the configured clock's time, so temporal constraints stay
// deterministic under a clock override.
func (c ConstraintContext[T]) Now() time.Time { return c.vc.Now() }

// Arg returns the positional argument at i, or nil when out of range.
func (c ConstraintContext[T]) Arg(i int) any {
	if i < 0 || i >= len(c.args) {
		return nil
	}
	return c.args[i]
}

// Param returns the named template parameter for key, or nil.
func (c ConstraintContext[T]) Param(key string) any { return c.params[key] }

// Constraint is the lowest-level building block: a named predicate plus the
// message metadata emitted when it fails. Fallback is the default English
// template; a locale bundle may override it by constraint identifier. Text,
// when set, supplies a final string instead and skips template resolution.
type Constraint[T any] struct {
	ID       string
	Test     func(ConstraintContext[T]) bool
	Fallback string
	Args     []any
	Params   map[string]any
	Text     func(ConstraintContext[T]) string
}

// Validator turns the constraint into a validator over its input type.
func (c Constraint[T]) Validator() Validator[T, T] {
	return Validator[T, T]{run: func(vc *Context, in T) (T, *fault) {
		if vc.skipping() {
			// Skipped entirely under fail-fast: no predicate run, no log entry.
			return in, nil
		}
		cc := ConstraintContext[T]{Input: in, ConstraintID: c.ID, args: c.Args, params: c.Params, vc: vc}
		if c.Test(cc) {
			vc.log(LogEntry{Kind: LogSatisfied, ConstraintID: c.ID, Root: vc.root, Path: vc.Path().FullName(), Input: in})
			return in, nil
		}
		msg := Message{
			ConstraintID: c.ID,
			Root:         vc.root,
			Path:         vc.Path(),
			Input:        in,
			Args:         c.Args,
			Params:       c.Params,
			fallback:     c.Fallback,
			kind:         messageResource,
		}
		if c.Text != nil {
			msg.kind = messageText
			msg.explicit = c.Text(cc)
		}
		vc.log(LogEntry{Kind: LogViolated, ConstraintID: c.ID, Root: vc.root, Path: vc.Path().FullName(), Input: in, Args: c.Args})
		vc.halt()
		return in, violation(msg)
	}}
}

// Constrain is shorthand for a predicate-only constraint with a fallback
// template.
func Constrain[T any](id, fallback string, test func(ConstraintContext[T]) bool) Validator[T, T] {
	return Constraint[T]{ID: id, Test: test, Fallback: fallback}.Validator()
}

// And evaluates every validator against the same input, accumulating all
// violations in declaration order. It succeeds only when all succeed, and
// its value is the original input: the validators are independent checks,
// not a pipeline.
func And[T any](vs ...Validator[T, T]) Validator[T, T] {
	return Validator[T, T]{run: func(vc *Context, in T) (T, *fault) {
		var msgs []Message
		for _, v := range vs {
			if vc.skipping() {
				break
			}
			_, f := v.run(vc, in)
			if f != nil {
				if f.cancel != nil {
					return in, f
				}
				msgs = append(msgs, f.msgs...)
			}
		}
		if len(msgs) == 0 {
			return in, nil
		}
		return in, violation(msgs...)
	}}
}

// Then sequences two validators into a pipeline: the first's output feeds
// the second. A failing first stage short-circuits and the second stage is
// never invoked.
func Then[I, M, O any](a Validator[I, M], b Validator[M, O]) Validator[I, O] {
	return Validator[I, O]{run: func(vc *Context, in I) (O, *fault) {
		mid, f := a.run(vc, in)
		if f != nil {
			var zero O
			return zero, f
		}
		return b.run(vc, mid)
	}}
}

// Map applies a pure transform to a validator's output.
func Map[I, M, O any](v Validator[I, M], f func(M) O) Validator[I, O] {
	return Validator[I, O]{run: func(vc *Context, in I) (O, *fault) {
		mid, fl := v.run(vc, in)
		if fl != nil {
			var zero O
			return zero, fl
		}
		return f(mid), nil
	}}
}

// OrElse evaluates the receiver; on success the alternative is never
// evaluated and no log entries are recorded for it. When the receiver fails,
// the alternative runs against the same input and a success discards the
// receiver's messages. When both fail the result is exactly one composite
// message with constraint id "kova.or" whose two args are the branch message
// lists in order. Chains of three or more nest left-associatively.
func (v Validator[I, O]) OrElse(alt Validator[I, O]) Validator[I, O] {
	return Validator[I, O]{run: func(vc *Context, in I) (O, *fault) {
		halted := vc.halted
		out, f := v.run(vc, in)
		if f == nil {
			return out, nil
		}
		if f.cancel != nil {
			return out, f
		}
		// The losing branch must not trip fail-fast for the alternative.
		vc.halted = halted
		altOut, af := alt.run(vc, in)
		if af == nil {
			return altOut, nil
		}
		if af.cancel != nil {
			return altOut, af
		}
		vc.halt()
		return altOut, violation(orMessage(vc, in, f.msgs, af.msgs))
	}}
}

// OnlyIf wraps a validator so it is vacuously satisfied whenever the
// predicate rejects the input.
func OnlyIf[T any](pred func(T) bool, v Validator[T, T]) Validator[T, T] {
	return Validator[T, T]{run: func(vc *Context, in T) (T, *fault) {
		if !pred(in) {
			return in, nil
		}
		return v.run(vc, in)
	}}
}

// WithMessage replaces the messages of a failing sub-validation with exactly
// one consolidated message built by provide. The consolidated message gets
// the constraint id "kova.withMessage" unless provide sets its own, and is
// stamped with the path, root and input active at the failure site.
func (v Validator[I, O]) WithMessage(provide func([]Message) Message) Validator[I, O] {
	return Validator[I, O]{run: func(vc *Context, in I) (O, *fault) {
		out, f := v.run(vc, in)
		if f == nil || f.cancel != nil {
			return out, f
		}
		m := provide(f.msgs)
		if m.ConstraintID == "" {
			m.ConstraintID = ConstraintWithMessage
		}
		m.Root = vc.root
		m.Path = vc.Path()
		if m.Input == nil {
			m.Input = in
		}
		return out, violation(m)
	}}
}
