// File: metachar.go
// Title: Metacharacter Translation
// Description: Expands backslash escape sequences in configuration values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package stringx

import (
	"strconv"
	"strings"
)

// TranslateMetachars expands the escapes \t, \f, \n, \r, \\ and \uXXXX.
// Any other backslash sequence, including \u without exactly four hex digits,
// is copied through unchanged.
func TranslateMetachars(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		switch next := s[i+1]; next {
		case 't':
			b.WriteByte('\t')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case 'u':
			if r, ok := hexRune(s, i+2); ok {
				b.WriteRune(r)
				i += 5
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// hexRune decodes exactly four hex digits starting at s[start].
func hexRune(s string, start int) (rune, bool) {
	if start+4 > len(s) {
		return 0, false
	}
	digits := s[start : start+4]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(n), true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
