// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string operations used by the
//              configuration parser: blank checks, token splitting,
//              metacharacter translation and variable templates.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-15 v0.3.0: Metacharacters and templates

// Package stringx provides string operations for grizzled-go.
//
// # Metacharacters
//
// TranslateMetachars expands the escapes \t, \f, \n, \r, \\ and \uXXXX.
// Unknown escapes are kept as written:
//
//	stringx.TranslateMetachars(`a\tb\q`) // "a\tb\\q"
//
// # Templates
//
// A Template replaces variable references using a Resolver. Two syntaxes are
// built in: Unix shell (${name} and $name) and Windows cmd (%name%). Names
// may contain letters, digits, underscores and dots, so "section.option" is
// a single name.
//
//	tmpl := stringx.NewUnixShellTemplate(true)
//	s, err := tmpl.Substitute("${home}/bin", resolver)
//
// Resolved values are expanded again until no references remain. A name
// that reappears while it is being expanded yields an error with code
// CIRCULAR_REFERENCE. Unknown names become "" for safe templates; strict
// templates fail with VARIABLE_NOT_FOUND.
//
// # Tokens
//
// SplitTokens splits a value on a separator pattern, comma by default, and
// drops empty tokens.
package stringx
