// File: mapx.go
// Title: Map Utilities
// Description: Generic helpers for iterating maps in a stable order and for
//              copying and layering the nested maps used for sections.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-15 v0.2.0: Reduced to sorted keys, cloning and nested merging

package mapx

import (
	"cmp"
	"slices"
)

// Keys returns a slice of all keys from the map
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order. It returns an empty,
// non-nil slice for an empty or nil map.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone creates a shallow copy of the map
func Clone[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// CloneNested copies a two-level map. The inner maps are copied too.
func CloneNested[K1, K2 comparable, V any](m map[K1]map[K2]V) map[K1]map[K2]V {
	if m == nil {
		return nil
	}

	clone := make(map[K1]map[K2]V, len(m))
	for k, inner := range m {
		clone[k] = Clone(inner)
	}
	return clone
}

// MergeNested layers two-level maps. Inner maps are merged key by key, and
// later maps override values from earlier maps. The inputs are not modified.
func MergeNested[K1, K2 comparable, V any](maps ...map[K1]map[K2]V) map[K1]map[K2]V {
	result := make(map[K1]map[K2]V)
	for _, m := range maps {
		for k, inner := range m {
			dst, ok := result[k]
			if !ok {
				dst = make(map[K2]V, len(inner))
				result[k] = dst
			}
			for ik, v := range inner {
				dst[ik] = v
			}
		}
	}
	return result
}
