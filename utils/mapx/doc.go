// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic map helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core map utilities
// - 2026-10-15 v0.2.0: Reduced to the helpers used by the configuration packages

// Package mapx provides generic helpers for maps: keys in a stable order,
// shallow and two-level copies, and layering of nested maps such as
// section -> option -> value tables.
//
//	for _, name := range mapx.SortedKeys(sections) {
//		...
//	}
//
//	merged := mapx.MergeNested(defaults, overrides)
package mapx
