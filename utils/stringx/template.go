// File: template.go
// Title: String Templates
// Description: Variable substitution for strings containing ${name}, $name
//              or %name% references. Names are looked up through a caller
//              supplied Resolver, and resolved values are expanded again
//              until no references remain.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"

	gzerror "github.com/bmc/grizzled-go/core/error"
)

// Resolver looks up a variable by name. found=false means the name is
// unknown; a non-nil error aborts the substitution.
type Resolver func(name string) (value string, found bool, err error)

// Template substitutes variable references in a string.
type Template interface {
	Substitute(s string, resolve Resolver) (string, error)
	// Safe reports whether unknown variables become empty strings instead
	// of errors.
	Safe() bool
}

var (
	unixShellPattern  = regexp.MustCompile(`\$\{([A-Za-z0-9_.]+)\}|\$([A-Za-z0-9_.]+)`)
	windowsCmdPattern = regexp.MustCompile(`%([A-Za-z0-9_.]+)%`)
)

// NewUnixShellTemplate returns a template recognizing ${name} and $name.
func NewUnixShellTemplate(safe bool) Template {
	return NewTemplate(unixShellPattern, safe)
}

// NewWindowsCmdTemplate returns a template recognizing %name%.
func NewWindowsCmdTemplate(safe bool) Template {
	return NewTemplate(windowsCmdPattern, safe)
}

// NewTemplate returns a template for an arbitrary reference pattern. The
// variable name is taken from the first non-empty capture group of each
// match.
func NewTemplate(pattern *regexp.Regexp, safe bool) Template {
	return &regexpTemplate{pattern: pattern, safe: safe}
}

type regexpTemplate struct {
	pattern *regexp.Regexp
	safe    bool
}

func (t *regexpTemplate) Safe() bool {
	return t.safe
}

func (t *regexpTemplate) Substitute(s string, resolve Resolver) (string, error) {
	return t.expand(s, resolve, make(map[string]bool))
}

// expand replaces every reference in s. active holds the names being
// expanded further up the current path; meeting one again is a cycle.
func (t *regexpTemplate) expand(s string, resolve Resolver, active map[string]bool) (string, error) {
	matches := t.pattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(s[last:m[0]])
		last = m[1]

		name := groupName(s, m)
		if name == "" {
			b.WriteString(s[m[0]:m[1]])
			continue
		}
		if active[name] {
			return "", gzerror.Newf("circular reference to variable: %s", name).
				WithCode(gzerror.CodeCircularReference).
				WithDetail("variable", name)
		}

		value, found, err := resolve(name)
		if err != nil {
			return "", err
		}
		if !found {
			if t.safe {
				continue
			}
			return "", gzerror.Newf("variable not found: %s", name).
				WithCode(gzerror.CodeVariableNotFound).
				WithDetail("variable", name)
		}

		active[name] = true
		expanded, err := t.expand(value, resolve, active)
		delete(active, name)
		if err != nil {
			return "", err
		}
		b.WriteString(expanded)
	}
	b.WriteString(s[last:])
	return b.String(), nil
}

func groupName(s string, m []int) string {
	for g := 2; g+1 < len(m); g += 2 {
		if m[g] >= 0 && m[g+1] > m[g] {
			return s[m[g]:m[g+1]]
		}
	}
	return ""
}

// MapResolver resolves names from a fixed map.
func MapResolver(vars map[string]string) Resolver {
	return func(name string) (string, bool, error) {
		v, ok := vars[name]
		return v, ok, nil
	}
}
