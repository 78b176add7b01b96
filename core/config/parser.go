// File: parser.go
// Title: Line Grammar
// Description: Classifies logical lines as comments, blanks, section
//              headers or assignments and builds the section map.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"fmt"
	"regexp"
	"strings"

	gzerror "github.com/bmc/grizzled-go/core/error"
	"github.com/bmc/grizzled-go/utils/mapx"
	gzstringx "github.com/bmc/grizzled-go/utils/stringx"
)

var (
	sectionHeaderPattern = regexp.MustCompile(`^\s*\[([^\[\]]*)\]\s*$`)
	assignmentPattern    = regexp.MustCompile(`^\s*([^\s:=]+?)\s*(->|=|:)\s*(.*?)\s*$`)
)

// Kinds of parse failure, reported in the "kind" detail of a CONFIG_PARSE
// error.
const (
	ErrKindSectionName      = "section-name"
	ErrKindMalformedSection = "malformed-section"
	ErrKindReservedSection  = "reserved-section"
	ErrKindOptionName       = "option-name"
	ErrKindNoSection        = "no-section"
	ErrKindUnrecognized     = "unrecognized-line"
)

type parser struct {
	policy   *policy
	sections map[string]*Section
	current  *Section
}

// parseLines builds the section map from logical lines on top of the
// predefined sections.
func parseLines(lines []Line, p *policy, predefined map[string]map[string]string) (map[string]*Section, error) {
	sections, err := predefinedSections(p, predefined)
	if err != nil {
		return nil, err
	}

	ps := &parser{policy: p, sections: sections}
	for _, line := range lines {
		if err := ps.parseLine(line); err != nil {
			return nil, err
		}
	}
	return ps.sections, nil
}

func (ps *parser) parseLine(line Line) error {
	text := line.Text
	if gzstringx.IsBlank(text) || ps.policy.commentPattern.MatchString(text) {
		return nil
	}

	if m := sectionHeaderPattern.FindStringSubmatch(text); m != nil {
		return ps.openSection(line, m[1])
	}
	if strings.HasPrefix(strings.TrimSpace(text), "[") {
		return parseError(line, ErrKindMalformedSection, "malformed section header")
	}

	m := assignmentPattern.FindStringSubmatch(text)
	if m == nil {
		return parseError(line, ErrKindUnrecognized, "unrecognized configuration line")
	}
	if ps.current == nil {
		return parseError(line, ErrKindNoSection, "assignment occurs before the first section")
	}

	name, op, value := m[1], m[2], m[3]
	if !ps.policy.optionPattern.MatchString(name) {
		return parseError(line, ErrKindOptionName, fmt.Sprintf("invalid option name %q", name))
	}
	ps.current.put(name, Value{Text: value, Raw: op == "->"})
	return nil
}

func (ps *parser) openSection(line Line, name string) error {
	if isReserved(name) {
		return parseError(line, ErrKindReservedSection, fmt.Sprintf("section name %q is reserved", name))
	}
	if !ps.policy.sectionPattern.MatchString(name) {
		return parseError(line, ErrKindSectionName, fmt.Sprintf("invalid section name %q", name))
	}

	sec, ok := ps.sections[name]
	if !ok {
		sec = newSection(name, ps.policy.normalize)
		ps.sections[name] = sec
	}
	ps.current = sec
	return nil
}

func parseError(line Line, kind, msg string) *gzerror.Error {
	return gzerror.Newf("%s, line %d: %s: %s", line.Origin, line.Number, msg, strings.TrimSpace(line.Text)).
		WithCode(gzerror.CodeConfigParse).
		WithOperation("config.Parse").
		WithDetail("kind", kind).
		WithDetail("origin", line.Origin).
		WithDetail("line", line.Number).
		WithDetail("text", line.Text)
}

// predefinedSections validates and copies caller-supplied sections.
func predefinedSections(p *policy, predefined map[string]map[string]string) (map[string]*Section, error) {
	sections := make(map[string]*Section, len(predefined))

	for _, name := range mapx.SortedKeys(predefined) {
		if err := p.checkNames(name, ""); err != nil {
			return nil, err
		}
		sec := newSection(name, p.normalize)
		for opt, value := range predefined[name] {
			if err := p.checkNames(name, opt); err != nil {
				return nil, err
			}
			sec.put(opt, Value{Text: value})
		}
		sections[name] = sec
	}
	return sections, nil
}

// checkNames validates a section name and, if non-empty, an option name
// for storage outside the parser.
func (p *policy) checkNames(section, option string) error {
	if isReserved(section) {
		return gzerror.Newf("section name %q is reserved", section).
			WithCode(gzerror.CodeReservedSection).
			WithDetail("section", section)
	}
	if !p.sectionPattern.MatchString(section) {
		return gzerror.Newf("invalid section name %q", section).
			WithCode(gzerror.CodeInvalidConfig).
			WithDetail("section", section)
	}
	if option != "" && !p.optionPattern.MatchString(option) {
		return gzerror.Newf("invalid option name %q", option).
			WithCode(gzerror.CodeInvalidConfig).
			WithDetail("section", section).
			WithDetail("option", option)
	}
	return nil
}
