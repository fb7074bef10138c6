// Package i18n provides locale-aware constraint templates for the kova
// validation engine. A Bundle loads language-keyed template maps through an
// Adapter (in-memory map, single file, or any fs.FS directory including
// go:embed) and resolves a template per constraint identifier and locale.
//
// # Architecture
//
// The Bundle never substitutes placeholders itself: it is the pure lookup
// collaborator of the core's message resolution, installed with
//
//	kova.SetResolver(bundle.Resolve)
//
// Lookup order per Resolve call: the requested locale matched against the
// loaded languages via golang.org/x/text/language (en-US matches en), then
// the default language. Constraint identifiers are dotted keys traversing
// the nested template maps, so "kova.minLength" addresses the minLength
// entry under the kova map.
//
// # Usage
//
//	bundle, err := i18n.New(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), localesFS, "locales"))
//	if err != nil {
//		return err
//	}
//	kova.SetResolver(bundle.Resolve)
//	kova.SetLocale("ja")
package i18n
