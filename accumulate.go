package kova

// Token identifies a recovery boundary. Boundaries match cancellations by
// pointer identity, never by name, so two tokens created with the same name
// are still distinct scopes.
type Token struct {
	name string
}

// NewToken creates a boundary token. The name is used for diagnostics only.
func NewToken(name string) *Token { return &Token{name: name} }

func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.name
}

// fault is the tagged result threaded through validator returns. A fault
// with a nil cancel token is a plain constraint violation: data, not control
// flow. A fault with a token is an in-flight cancellation looking for the
// boundary that owns the token; every combinator re-propagates it unchanged.
type fault struct {
	msgs   []Message
	cancel *Token
}

func violation(msgs ...Message) *fault { return &fault{msgs: msgs} }

// CancelWith returns a validator that raises a cancellation addressed to the
// given boundary token, carrying the messages as its payload. A cancellation
// that reaches the top-level entry point unrecovered is a programming error
// and panics there.
func CancelWith[T any](tok *Token, msgs ...Message) Validator[T, T] {
	return Validator[T, T]{run: func(vc *Context, in T) (T, *fault) {
		return in, &fault{msgs: msgs, cancel: tok}
	}}
}

// Recovering wraps a validator with a boundary that intercepts only the
// cancellations raised for tok; violations and cancellations addressed to
// other boundaries pass through unchanged. The recover callback turns the
// cancellation payload into the violations of this scope; returning an empty
// list recovers into success.
func Recovering[I, O any](tok *Token, v Validator[I, O], recover func([]Message) []Message) Validator[I, O] {
	return Validator[I, O]{run: func(vc *Context, in I) (O, *fault) {
		out, f := v.run(vc, in)
		if f == nil || f.cancel != tok {
			return out, f
		}
		msgs := recover(f.msgs)
		if len(msgs) == 0 {
			return out, nil
		}
		return out, violation(msgs...)
	}}
}
