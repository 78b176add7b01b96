// Package error provides structured error handling for the grizzled libraries.
//
// Package: error
// Title: Structured Error Handling
// Description: This package implements an error type carrying a code, a
//              severity, the failing operation and arbitrary details. The
//              configuration parser uses it to report parse, include,
//              substitution and conversion failures in a way callers can
//              inspect programmatically.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Configuration error codes, chain-aware code lookup
//
// Usage:
//
//	import gzerror "github.com/bmc/grizzled-go/core/error"
//
//	err := gzerror.New("unrecognized configuration line").
//		WithCode(gzerror.CodeConfigParse).
//		WithOperation("config.Parse").
//		WithDetail("line", 12)
//
//	if gzerror.HasCode(err, gzerror.CodeConfigParse) {
//		// report the offending line
//	}
package error
