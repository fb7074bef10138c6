package kova

import (
	"fmt"
	"strings"
)

// Reserved constraint identifiers used by the core combinators.
const (
	// ConstraintOr identifies the composite message produced when every
	// branch of a disjunction failed.
	ConstraintOr = "kova.or"
	// ConstraintElements identifies the summary message wrapping per-element
	// failures of a collection traversal.
	ConstraintElements = "kova.elements"
	// ConstraintWithMessage identifies consolidated messages produced by
	// WithMessage when no custom identifier is given.
	ConstraintWithMessage = "kova.withMessage"
	// ConstraintNotNil identifies the presence check of the nullable family.
	ConstraintNotNil = "kova.notNull"
	// ConstraintIsNil identifies the absence check of the nullable family.
	ConstraintIsNil = "kova.isNull"
)

type messageKind int

const (
	messageResource messageKind = iota
	messageText
	messageComposite
)

// Message is the diagnostic payload of a single constraint violation. It is
// immutable once produced and always carries the Path and root-type label
// that were active at the moment of failure.
//
// Text is resolved lazily: a resource message looks up a locale template for
// its constraint identifier every time Text is called, so the same Message
// renders differently if the ambient locale changes between failure and
// inspection. This is an intentional contract, not a caching bug; pass the
// locale through configuration if that dynamism is unwanted.
type Message struct {
	// ConstraintID names the violated constraint, e.g. "kova.minLength".
	ConstraintID string
	// Root is the root-type label active when the violation was recorded.
	Root string
	// Path is the structural location of the offending value.
	Path Path
	// Input is the offending input value.
	Input any
	// Args holds the positional arguments available for re-resolution or
	// composition. For composite messages each element is either a Message
	// or a []Message.
	Args []any
	// Params holds the named template parameters.
	Params map[string]any

	// fallback is the default English template used when no locale template
	// is registered for the constraint identifier.
	fallback string
	// explicit holds the final caller-supplied text for text messages.
	explicit string
	kind     messageKind
}

// TextMessage returns a message whose text is final and never resolved
// against a locale bundle.
func TextMessage(id, text string) Message {
	return Message{ConstraintID: id, explicit: text, kind: messageText}
}

// ResourceMessage returns a message whose text is resolved lazily from the
// registered locale templates, falling back to the given English template.
func ResourceMessage(id, fallback string, params map[string]any, args ...any) Message {
	return Message{ConstraintID: id, fallback: fallback, Params: params, Args: args, kind: messageResource}
}

// GroupMessage returns a composite message that renders the inner messages
// as a bracketed list after the resolved template for id. The inner messages
// stay reachable through Args for full diagnostics.
func GroupMessage(id, fallback string, inner []Message) Message {
	args := make([]any, len(inner))
	for i, m := range inner {
		args[i] = m
	}
	return Message{ConstraintID: id, fallback: fallback, Args: args, kind: messageComposite}
}

// orMessage folds the failed branches of a disjunction into one composite
// message. Args are exactly the two branch message lists, in order.
func orMessage(vc *Context, input any, left, right []Message) Message {
	return Message{
		ConstraintID: ConstraintOr,
		Root:         vc.root,
		Path:         vc.Path(),
		Input:        input,
		Args:         []any{left, right},
		fallback:     "at least one constraint must be satisfied",
		kind:         messageComposite,
	}
}

// elementsMessage summarizes per-element failures of a collection traversal.
func elementsMessage(vc *Context, input any, inner []Message) Message {
	m := GroupMessage(ConstraintElements, "Some elements do not satisfy the constraint", inner)
	m.Root = vc.root
	m.Path = vc.Path()
	m.Input = input
	return m
}

// Text resolves the message to its final display form. Resource and
// composite messages consult the ambient locale and registered resolver at
// call time.
func (m Message) Text() string {
	switch m.kind {
	case messageText:
		return m.explicit
	case messageComposite:
		prefix, ok := lookupTemplate(m.ConstraintID)
		if !ok {
			prefix = m.fallback
		}
		return prefix + ": " + renderArgs(m.Args)
	default:
		tmpl, ok := lookupTemplate(m.ConstraintID)
		if !ok {
			tmpl = m.fallback
		}
		if tmpl == "" {
			// Fall back to the identifier so a missing template is still
			// traceable to its constraint.
			tmpl = m.ConstraintID
		}
		return substitute(tmpl, m.Args, m.Params)
	}
}

// String implements fmt.Stringer.
func (m Message) String() string { return m.Text() }

// renderArgs renders composite arguments: nested message lists become
// bracketed lists of their texts, single messages render as their text, and
// anything else falls back to fmt.Sprint.
func renderArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case []Message:
			inner := make([]string, len(v))
			for i, im := range v {
				inner[i] = im.Text()
			}
			parts = append(parts, "["+strings.Join(inner, ", ")+"]")
		case Message:
			parts = append(parts, v.Text())
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
