package kova

import (
	"fmt"
	"sort"
)

// OnEach applies v to every element of a slice, appending an index segment
// per element. Element failures fold into one summary message whose args
// carry the full per-element message list.
func OnEach[T any](v Validator[T, T]) Validator[[]T, []T] {
	return Validator[[]T, []T]{run: func(vc *Context, in []T) ([]T, *fault) {
		var inner []Message
		for i, el := range in {
			if vc.skipping() {
				break
			}
			vc.push(Index(i))
			_, f := v.run(vc, el)
			vc.pop()
			if f != nil {
				if f.cancel != nil {
					return in, f
				}
				inner = append(inner, f.msgs...)
			}
		}
		if len(inner) == 0 {
			return in, nil
		}
		return in, violation(elementsMessage(vc, in, inner))
	}}
}

// OnEachValue applies v to every map value, appending a map-value segment
// rendered with the entry's key. Entries are visited in sorted rendered-key
// order so message order is deterministic.
func OnEachValue[K comparable, V any](v Validator[V, V]) Validator[map[K]V, map[K]V] {
	return Validator[map[K]V, map[K]V]{run: func(vc *Context, in map[K]V) (map[K]V, *fault) {
		var inner []Message
		for _, k := range sortedKeys(in) {
			if vc.skipping() {
				break
			}
			vc.push(MapValue(fmt.Sprint(k)))
			_, f := v.run(vc, in[k])
			vc.pop()
			if f != nil {
				if f.cancel != nil {
					return in, f
				}
				inner = append(inner, f.msgs...)
			}
		}
		if len(inner) == 0 {
			return in, nil
		}
		return in, violation(elementsMessage(vc, in, inner))
	}}
}

// OnEachKey applies v to every map key, appending a map-key segment.
func OnEachKey[K comparable, V any](v Validator[K, K]) Validator[map[K]V, map[K]V] {
	return Validator[map[K]V, map[K]V]{run: func(vc *Context, in map[K]V) (map[K]V, *fault) {
		var inner []Message
		for _, k := range sortedKeys(in) {
			if vc.skipping() {
				break
			}
			vc.push(MapKey(fmt.Sprint(k)))
			_, f := v.run(vc, k)
			vc.pop()
			if f != nil {
				if f.cancel != nil {
					return in, f
				}
				inner = append(inner, f.msgs...)
			}
		}
		if len(inner) == 0 {
			return in, nil
		}
		return in, violation(elementsMessage(vc, in, inner))
	}}
}

func sortedKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}
