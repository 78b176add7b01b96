// File: stringx.go
// Title: Core String Utility Functions
// Description: Blank checks, defaults and token splitting used by the
//              configuration parser and its accessors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-15 v0.2.0: Reduced to helpers used by config; added SplitTokens

package stringx

import (
	"regexp"
	"strings"
	"unicode"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// SplitLines splits a string into lines, handling \n, \r\n and \r endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

// FromBlankDefault returns defaultValue if s is blank, otherwise s.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// DefaultTokenSeparator matches a comma with optional surrounding whitespace.
var DefaultTokenSeparator = regexp.MustCompile(`\s*,\s*`)

// SplitTokens splits s around sep after trimming it and drops empty tokens.
// A nil sep means DefaultTokenSeparator.
func SplitTokens(s string, sep *regexp.Regexp) []string {
	if sep == nil {
		sep = DefaultTokenSeparator
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}

	parts := sep.Split(s, -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
