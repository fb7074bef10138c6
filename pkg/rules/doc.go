// Package rules provides the per-type constraint libraries layered on the
// kova core: string length/pattern checks, numeric comparisons, clock-aware
// temporal comparisons and enum membership/parsing, plus fluent chain
// builders for ergonomic composition.
//
// # Architecture
//
// Each source file groups a family of rules for one domain
// (string_rules.go, numeric_rules.go, date_rules.go, choice_rules.go).
// Every exported rule constructs a kova.Constraint literal (a predicate
// plus its constraint identifier, default English template and template
// parameters) and returns its validator. The package holds no state; all
// path tracking, accumulation and logging happens in the core.
//
// Identifiers follow the "kova.<name>" convention (kova.minLength,
// kova.min, kova.past, ...) so locale bundles can override any template by
// key.
//
// # Usage
//
//	v := rules.String().NotBlank().Min(2).Max(64).Validator()
//	res := kova.TryValidate("ab", v)
//
//	age := rules.Int[int]().Min(0).Max(150).Validator()
//
//	deadline := rules.Time().Future().Validator()
//	res = kova.TryValidate(t, deadline, kova.WithClock(fixedClock))
package rules
