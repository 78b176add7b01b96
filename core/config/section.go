// File: section.go
// Title: Sections and Values
// Description: Defines Value, a stored option value, and Section, an
//              immutable named group of options.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"sort"

	"github.com/bmc/grizzled-go/utils/mapx"
)

// Value is an option value as written in the source. Raw values are
// returned verbatim; all others go through metacharacter translation and
// variable substitution when read.
type Value struct {
	Text string
	Raw  bool
}

type option struct {
	name  string
	value Value
}

// Section is a named set of options. A Section is never modified once it
// is reachable from a Configuration.
type Section struct {
	name      string
	options   map[string]option
	normalize func(string) string
}

func newSection(name string, normalize func(string) string) *Section {
	return &Section{
		name:      name,
		options:   make(map[string]option),
		normalize: normalize,
	}
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Len returns the number of options.
func (s *Section) Len() int {
	return len(s.options)
}

// Value returns the stored, unresolved value of an option.
func (s *Section) Value(name string) (Value, bool) {
	opt, ok := s.options[s.normalize(name)]
	return opt.value, ok
}

// OptionNames returns the option names as first written, sorted.
func (s *Section) OptionNames() []string {
	names := make([]string, 0, len(s.options))
	for _, opt := range s.options {
		names = append(names, opt.name)
	}
	sort.Strings(names)
	return names
}

func (s *Section) clone() *Section {
	return &Section{
		name:      s.name,
		options:   mapx.Clone(s.options),
		normalize: s.normalize,
	}
}

// put stores an option. Only valid on sections not yet shared.
func (s *Section) put(name string, value Value) {
	s.options[s.normalize(name)] = option{name: name, value: value}
}
