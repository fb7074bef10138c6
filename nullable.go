package kova

// The nullable family works over pointers: *T is the nullable form of T.

func notNilConstraint[T any]() Constraint[*T] {
	return Constraint[*T]{
		ID:       ConstraintNotNil,
		Test:     func(c ConstraintContext[*T]) bool { return c.Input != nil },
		Fallback: "must not be null",
	}
}

// NotNil requires the input pointer to be non-nil.
func NotNil[T any]() Validator[*T, *T] {
	return notNilConstraint[T]().Validator()
}

// IsNil requires the input pointer to be nil.
func IsNil[T any]() Validator[*T, *T] {
	return Constraint[*T]{
		ID:       ConstraintIsNil,
		Test:     func(c ConstraintContext[*T]) bool { return c.Input == nil },
		Fallback: "must be null",
	}.Validator()
}

// WhenNotNil applies v only to non-nil inputs and vacuously succeeds on nil.
func WhenNotNil[T any](v Validator[T, T]) Validator[*T, *T] {
	return Validator[*T, *T]{run: func(vc *Context, in *T) (*T, *fault) {
		if in == nil {
			return nil, nil
		}
		out, f := v.run(vc, *in)
		if f != nil {
			return in, f
		}
		return &out, nil
	}}
}

// NotNilAnd requires a non-nil input and then applies v to the pointed-to
// value.
func NotNilAnd[T any](v Validator[T, T]) Validator[*T, *T] {
	return Then(NotNil[T](), WhenNotNil(v))
}

// WithDefault substitutes d for a nil input, guaranteeing a non-nullable
// output before any downstream validator runs.
func WithDefault[T any](d T) Validator[*T, T] {
	return Validator[*T, T]{run: func(_ *Context, in *T) (T, *fault) {
		if in == nil {
			return d, nil
		}
		return *in, nil
	}}
}

// WithDefaultThen substitutes d for a nil input and feeds the non-nullable
// value into v.
func WithDefaultThen[T, O any](d T, v Validator[T, O]) Validator[*T, O] {
	return Then(WithDefault(d), v)
}

// NonNil converts a validator over T into one over *T. The conversion itself
// is the null check: a nil input fails with the not-null constraint even
// without an explicit NotNil in the chain.
func NonNil[T, O any](v Validator[T, O]) Validator[*T, O] {
	check := notNilConstraint[T]().Validator()
	return Validator[*T, O]{run: func(vc *Context, in *T) (O, *fault) {
		if _, f := check.run(vc, in); f != nil {
			var zero O
			return zero, f
		}
		return v.run(vc, *in)
	}}
}

// AsNillable converts a validator over T into one over *T that vacuously
// succeeds on nil and otherwise returns a pointer to v's output.
func AsNillable[T, O any](v Validator[T, O]) Validator[*T, *O] {
	return Validator[*T, *O]{run: func(vc *Context, in *T) (*O, *fault) {
		if in == nil {
			return nil, nil
		}
		out, f := v.run(vc, *in)
		if f != nil {
			return nil, f
		}
		return &out, nil
	}}
}
