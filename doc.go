// Package kova is a composable validation engine: given typed input values,
// it evaluates a declared set of constraints, accumulates human-readable
// diagnostics with structural location information, and returns either the
// validated (possibly transformed) value or the ordered list of failures.
//
// # Architecture
//
// The core is built leaf-first:
//
//   - Path/Segment        - immutable location descriptors with a rendered
//     dotted/bracketed display form.
//   - Message             - one violation's diagnostic payload; text resolves
//     lazily against the ambient locale at read time.
//   - Context             - per-call state: configuration, path stack, root
//     label and the identity set used for cycle detection.
//   - Validator[I, O]     - the combinator algebra (And, Then, Map, OrElse,
//     OnlyIf, WithMessage, the nullable family) built on a tagged-result
//     control discipline that accumulates violations and contains the
//     internal short-circuit signal.
//   - Schema[T]           - declarative property-to-validator mapping with
//     cycle-safe recursion; OnEach/OnEachKey/OnEachValue traverse
//     collections with per-element path segments.
//
// Constraint libraries for concrete types live in pkg/rules, locale template
// bundles in pkg/i18n, and env-driven defaults in pkg/config.
//
// # Usage
//
//	nameV := rules.String().NotBlank().Min(2).Validator()
//	schema := kova.NewSchema[*User]("User")
//	kova.Property(schema, "name", func(u *User) string { return u.Name }, nameV)
//	kova.Property(schema, "age", func(u *User) int { return u.Age },
//		rules.Int[int]().Min(0).Max(150).Validator())
//
//	res := kova.TryValidate(user, schema.Validator())
//	if res.IsFailure() {
//		for _, m := range res.Messages() {
//			fmt.Println(m.Path.FullName(), m.Text())
//		}
//	}
//
// # Error Handling
//
// Violations are data, never panics: TryValidate always returns a Result and
// Validate converts failures into a single *ValidationError exposing the
// ordered messages. Panics raised by caller-supplied predicates or accessors
// are not recovered and abort the whole call. The internal cancellation
// signal used for short-circuiting is matched by boundary-token identity and
// never observed by library users; one that escapes the top-level call is a
// programming error and panics there.
//
// # Concurrency
//
// One top-level call runs synchronously on the invoking goroutine and owns
// its Context exclusively. Concurrent validations each build an independent
// context, so no locking is required. The ambient locale and resolver are
// process-wide and guarded internally; prefer explicit configuration when
// the ambient state may be mutated concurrently.
package kova
