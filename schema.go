package kova

import "reflect"

// Schema declaratively maps an object's properties and named accessors to
// validators, producing path-qualified messages and recursing safely through
// self-referential graphs. Declared rules run in declaration order;
// object-wide rules run after them at the unmodified path.
type Schema[T any] struct {
	root  string
	order []string
	rules map[string]schemaRule[T]
	self  []Validator[T, T]
}

// schemaRule pairs a declared rule with the path segment pushed around its
// evaluation.
type schemaRule[T any] struct {
	seg Segment
	run func(vc *Context, obj T) *fault
}

// NewSchema creates an empty schema. The root label tags every message
// produced under this schema with the owning type's name.
func NewSchema[T any](root string) *Schema[T] {
	return &Schema[T]{root: root, rules: make(map[string]schemaRule[T])}
}

// Root returns the schema's root-type label.
func (s *Schema[T]) Root() string { return s.root }

func (s *Schema[T]) add(name string, seg Segment, run func(vc *Context, obj T) *fault) {
	// A later declaration for the same key replaces the earlier rule while
	// keeping its original position in the evaluation order. Properties and
	// named accessors share the key space.
	if _, ok := s.rules[name]; !ok {
		s.order = append(s.order, name)
	}
	s.rules[name] = schemaRule[T]{seg: seg, run: run}
}

// Property declares that the value produced by get for property name must
// satisfy v. Validator output is discarded; schemas validate in place.
func Property[T, F any](s *Schema[T], name string, get func(T) F, v Validator[F, F]) *Schema[T] {
	s.add(name, PropertySeg(name), func(vc *Context, obj T) *fault {
		_, f := v.run(vc, get(obj))
		return f
	})
	return s
}

// PropertyFunc declares a dynamic rule: pick chooses the validator per
// input, and always sees the original object, never a partially validated
// copy.
func PropertyFunc[T, F any](s *Schema[T], name string, get func(T) F, pick func(T) Validator[F, F]) *Schema[T] {
	s.add(name, PropertySeg(name), func(vc *Context, obj T) *fault {
		_, f := pick(obj).run(vc, get(obj))
		return f
	})
	return s
}

// Accessor declares a rule over a derived value that is not a plain
// property, such as a computed total. Its violations carry a named segment
// under the given label.
func Accessor[T, F any](s *Schema[T], label string, get func(T) F, v Validator[F, F]) *Schema[T] {
	s.add(label, Named(label), func(vc *Context, obj T) *fault {
		_, f := v.run(vc, get(obj))
		return f
	})
	return s
}

// Self declares an object-wide rule evaluated against the whole object with
// the path left unmodified.
func (s *Schema[T]) Self(v Validator[T, T]) *Schema[T] {
	s.self = append(s.self, v)
	return s
}

// Validator turns the schema into a validator over its object type.
//
// Cycle detection: when the object has pointer identity, its identity is
// pushed onto the context's in-progress set before descending and popped on
// every return. Re-entering an identity already on the current descent path
// is treated as vacuous success, which terminates arbitrary reference
// cycles while still validating shared non-cyclic nodes once per reachable
// path.
func (s *Schema[T]) Validator() Validator[T, T] {
	return Validator[T, T]{run: func(vc *Context, obj T) (T, *fault) {
		if key := identityOf(obj); key != nil {
			if !vc.enter(key) {
				return obj, nil
			}
			defer vc.leave(key)
		}
		prevRoot := vc.root
		if s.root != "" {
			vc.root = s.root
		}
		defer func() { vc.root = prevRoot }()

		var msgs []Message
		for _, name := range s.order {
			if vc.skipping() {
				break
			}
			r := s.rules[name]
			vc.push(r.seg)
			f := r.run(vc, obj)
			vc.pop()
			if f != nil {
				if f.cancel != nil {
					return obj, f
				}
				msgs = append(msgs, f.msgs...)
			}
		}
		for _, v := range s.self {
			if vc.skipping() {
				break
			}
			_, f := v.run(vc, obj)
			if f != nil {
				if f.cancel != nil {
					return obj, f
				}
				msgs = append(msgs, f.msgs...)
			}
		}
		if len(msgs) == 0 {
			return obj, nil
		}
		return obj, violation(msgs...)
	}}
}

// identityOf returns a stable identity key for cycle detection, or nil when
// the value has no pointer identity. Value types cannot form reference
// cycles in Go, so only pointers are tracked.
func identityOf(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return v
	}
	return nil
}
