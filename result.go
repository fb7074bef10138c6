package kova

// Result is the outcome of a validation: either a success carrying the
// validated (possibly transformed) value, or a failure carrying a non-empty
// ordered list of Messages.
type Result[T any] struct {
	value    T
	messages []Message
}

// Success wraps a validated value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps one or more violation messages. It panics when called with
// no messages: a failure without diagnostics is a programming error.
func Failure[T any](messages ...Message) Result[T] {
	if len(messages) == 0 {
		panic("kova: Failure requires at least one message")
	}
	return Result[T]{messages: messages}
}

// IsSuccess reports whether the validation succeeded.
func (r Result[T]) IsSuccess() bool { return len(r.messages) == 0 }

// IsFailure reports whether the validation failed.
func (r Result[T]) IsFailure() bool { return len(r.messages) > 0 }

// Value returns the validated value. For failures it returns the zero value.
func (r Result[T]) Value() T { return r.value }

// Messages returns the ordered violation messages, nil on success.
func (r Result[T]) Messages() []Message { return r.messages }
