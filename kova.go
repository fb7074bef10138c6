package kova

import "fmt"

// TryValidate runs v against input under a fresh per-call context and
// returns a Result. It never panics for validation failures; a panic here
// signals a programming error, such as a cancellation raised for a token
// with no enclosing boundary.
func TryValidate[I, O any](input I, v Validator[I, O], opts ...Option) Result[O] {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	vc := newContext(cfg)
	out, f := v.run(vc, input)
	if f == nil {
		return Success(out)
	}
	if f.cancel != nil {
		panic(fmt.Sprintf("kova: cancellation for token %q escaped the top-level validation; no enclosing Recovering boundary matched it", f.cancel))
	}
	return Failure[O](f.msgs...)
}

// Validate runs v against input and returns the validated value, or a
// *ValidationError carrying the full ordered message list.
func Validate[I, O any](input I, v Validator[I, O], opts ...Option) (O, error) {
	r := TryValidate(input, v, opts...)
	if r.IsSuccess() {
		return r.Value(), nil
	}
	var zero O
	return zero, &ValidationError{Messages: r.Messages()}
}
