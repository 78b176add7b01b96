// File: store.go
// Title: Configuration Store
// Description: Value resolution, structural queries and the non-destructive
//              mutation operations of Configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"regexp"
	"strings"

	gzerror "github.com/bmc/grizzled-go/core/error"
	gzlog "github.com/bmc/grizzled-go/core/log"
	"github.com/bmc/grizzled-go/utils/mapx"
	gzstringx "github.com/bmc/grizzled-go/utils/stringx"
)

// Entry is one option assignment for SetAll.
type Entry struct {
	Section string
	Option  string
	Value   string
}

// Key identifies an option for RemoveAll.
type Key struct {
	Section string
	Option  string
}

// ===============================
// Resolution
// ===============================

// Get returns the resolved value of an option. Resolution failures are
// reported as not found; use Resolve to tell them apart.
func (c *Configuration) Get(section, option string) (string, bool) {
	v, ok, err := c.Resolve(section, option)
	if err != nil {
		c.policy.logger.Debug("resolution failed", gzlog.Fields{
			"section": section,
			"option":  option,
			"error":   err,
		})
		return "", false
	}
	return v, ok
}

// Resolve returns the resolved value of an option. A missing option yields
// ("", false, nil); an error means the option exists but could not be
// resolved.
//
// The env and system sections are looked up directly. Otherwise the stored
// value is used, falling back to the NotFound function. Raw values are
// returned as stored; others have metacharacters translated and then
// variables substituted.
func (c *Configuration) Resolve(section, option string) (string, bool, error) {
	return c.resolve(section, option, make(map[string]bool))
}

// resolve threads the set of options whose substitution is in progress so
// that references looping back to one of them fail instead of recursing.
func (c *Configuration) resolve(section, option string, resolving map[string]bool) (string, bool, error) {
	switch section {
	case EnvSection:
		v, ok := c.policy.env(option)
		return v, ok, nil
	case SystemSection:
		v, ok := c.policy.system(option)
		return v, ok, nil
	}

	value, ok := c.lookup(section, option)
	if !ok {
		return c.notFound(section, option)
	}
	if value.Raw {
		return value.Text, true, nil
	}

	key := section + "." + c.policy.normalize(option)
	if resolving[key] {
		return "", false, gzerror.Newf("circular reference: %s", key).
			WithCode(gzerror.CodeCircularReference).
			WithDetail("section", section).
			WithDetail("option", option)
	}
	resolving[key] = true
	defer delete(resolving, key)

	text := gzstringx.TranslateMetachars(value.Text)
	out, err := c.policy.template.Substitute(text, func(name string) (string, bool, error) {
		refSection, refOption := section, name
		if i := strings.IndexByte(name, '.'); i >= 0 {
			refSection, refOption = name[:i], name[i+1:]
		}
		return c.resolve(refSection, refOption, resolving)
	})
	if err != nil {
		return "", false, err
	}
	return out, true, nil
}

func (c *Configuration) lookup(section, option string) (Value, bool) {
	sec, ok := c.sections[section]
	if !ok {
		return Value{}, false
	}
	return sec.Value(option)
}

func (c *Configuration) notFound(section, option string) (string, bool, error) {
	if c.policy.notFound == nil {
		return "", false, nil
	}
	v, ok, err := c.policy.notFound(section, option)
	if err != nil {
		return "", false, gzerror.Wrap(err, "not-found function failed").
			WithCode(gzerror.CodeNotFoundCallback).
			WithDetail("section", section).
			WithDetail("option", option)
	}
	return v, ok, nil
}

// ===============================
// Structural queries
// ===============================

// HasSection reports whether a section is stored. The reserved env and
// system sections are never stored.
func (c *Configuration) HasSection(name string) bool {
	_, ok := c.sections[name]
	return ok
}

// HasOption reports whether a stored section holds an option.
func (c *Configuration) HasOption(section, option string) bool {
	_, ok := c.lookup(section, option)
	return ok
}

// SectionNames returns the stored section names, sorted.
func (c *Configuration) SectionNames() []string {
	return mapx.SortedKeys(c.sections)
}

// Section returns a stored section.
func (c *Configuration) Section(name string) (*Section, bool) {
	sec, ok := c.sections[name]
	return sec, ok
}

// OptionNames returns the option names of a section, sorted.
func (c *Configuration) OptionNames(section string) []string {
	sec, ok := c.sections[section]
	if !ok {
		return nil
	}
	return sec.OptionNames()
}

// Options returns the resolved options of a section keyed by option name.
// Options that fail to resolve are left out, as with Get.
func (c *Configuration) Options(section string) (map[string]string, bool) {
	sec, ok := c.sections[section]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, sec.Len())
	for _, name := range sec.OptionNames() {
		if v, ok := c.Get(section, name); ok {
			out[name] = v
		}
	}
	return out, true
}

// ResolveOptions is like Options but stops at the first resolution error.
func (c *Configuration) ResolveOptions(section string) (map[string]string, bool, error) {
	sec, ok := c.sections[section]
	if !ok {
		return nil, false, nil
	}
	out := make(map[string]string, sec.Len())
	for _, name := range sec.OptionNames() {
		v, found, err := c.Resolve(section, name)
		if err != nil {
			return nil, true, err
		}
		if found {
			out[name] = v
		}
	}
	return out, true, nil
}

// MatchingSections returns the stored sections whose names match re,
// sorted by name.
func (c *Configuration) MatchingSections(re *regexp.Regexp) []*Section {
	var out []*Section
	for _, name := range c.SectionNames() {
		if re.MatchString(name) {
			out = append(out, c.sections[name])
		}
	}
	return out
}

// ToMap returns every stored section with its resolved options.
func (c *Configuration) ToMap() map[string]map[string]string {
	out := make(map[string]map[string]string, len(c.sections))
	for name := range c.sections {
		out[name], _ = c.Options(name)
	}
	return out
}

// ===============================
// Mutation
// ===============================

// Set returns a configuration with option set to value in section, creating
// the section if needed. Setting into env or system has no effect.
func (c *Configuration) Set(section, option, value string) (*Configuration, error) {
	return c.set([]Entry{{Section: section, Option: option, Value: value}}, false)
}

// SetRaw is like Set but stores a raw value, which is never translated or
// substituted.
func (c *Configuration) SetRaw(section, option, value string) (*Configuration, error) {
	return c.set([]Entry{{Section: section, Option: option, Value: value}}, true)
}

// SetAll applies several assignments at once. Later entries for the same
// option win, and existing sections are extended rather than replaced.
func (c *Configuration) SetAll(entries ...Entry) (*Configuration, error) {
	return c.set(entries, false)
}

// Merge applies a nested section -> option -> value map like SetAll.
func (c *Configuration) Merge(values map[string]map[string]string) (*Configuration, error) {
	var entries []Entry
	for _, section := range mapx.SortedKeys(values) {
		for _, option := range mapx.SortedKeys(values[section]) {
			entries = append(entries, Entry{Section: section, Option: option, Value: values[section][option]})
		}
	}
	return c.set(entries, false)
}

func (c *Configuration) set(entries []Entry, raw bool) (*Configuration, error) {
	touched := make(map[string]*Section)
	for _, e := range entries {
		if isReserved(e.Section) {
			continue
		}
		if err := c.policy.checkNames(e.Section, e.Option); err != nil {
			return nil, err
		}

		sec, ok := touched[e.Section]
		if !ok {
			if existing, found := c.sections[e.Section]; found {
				sec = existing.clone()
			} else {
				sec = newSection(e.Section, c.policy.normalize)
			}
			touched[e.Section] = sec
		}
		sec.put(e.Option, Value{Text: e.Value, Raw: raw})
	}

	if len(touched) == 0 {
		return c, nil
	}
	return c.with(touched), nil
}

// Remove returns a configuration without the given option. A section left
// empty is removed too. If nothing changes, the receiver itself is returned.
func (c *Configuration) Remove(section, option string) *Configuration {
	return c.RemoveAll(Key{Section: section, Option: option})
}

// RemoveAll removes several options at once, pruning emptied sections.
func (c *Configuration) RemoveAll(keys ...Key) *Configuration {
	touched := make(map[string]*Section)
	for _, k := range keys {
		sec, ok := touched[k.Section]
		if !ok {
			existing, found := c.sections[k.Section]
			if !found {
				continue
			}
			sec = existing
		}

		norm := c.policy.normalize(k.Option)
		if _, present := sec.options[norm]; !present {
			continue
		}
		if !ok {
			sec = sec.clone()
			touched[k.Section] = sec
		}
		delete(sec.options, norm)
	}

	if len(touched) == 0 {
		return c
	}
	return c.with(touched)
}

// with returns a configuration sharing every section of c except the
// replaced ones. Empty replacements are dropped.
func (c *Configuration) with(replaced map[string]*Section) *Configuration {
	sections := make(map[string]*Section, len(c.sections)+len(replaced))
	for name, sec := range c.sections {
		sections[name] = sec
	}
	for name, sec := range replaced {
		if sec.Len() == 0 {
			delete(sections, name)
			continue
		}
		sections[name] = sec
	}
	return &Configuration{sections: sections, policy: c.policy}
}
