// File: options.go
// Title: Configuration Options
// Description: Defines Options, the construction parameters of a
//              Configuration, and the policy derived from them. Zero values
//              select the defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"os"
	"regexp"
	"strings"

	gzlog "github.com/bmc/grizzled-go/core/log"
	gzstringx "github.com/bmc/grizzled-go/utils/stringx"
)

// Reserved section names. They are never stored; lookups in them go to the
// process environment and the system properties.
const (
	EnvSection    = "env"
	SystemSection = "system"
)

// StringOrigin is the origin reported for configurations parsed from strings.
const StringOrigin = "<string>"

var (
	// DefaultSectionNamePattern matches section names made of letters,
	// digits and underscores.
	DefaultSectionNamePattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

	// DefaultOptionNamePattern matches option names made of letters, digits
	// and underscores.
	DefaultOptionNamePattern = regexp.MustCompile(`[A-Za-z0-9_]+`)

	// DefaultCommentPattern matches lines whose first non-blank character
	// is '#'.
	DefaultCommentPattern = regexp.MustCompile(`^\s*#.*$`)
)

// NotFoundFunc supplies a value for an option missing from the stored
// sections. Returning found=false leaves the option unresolved.
type NotFoundFunc func(section, option string) (value string, found bool, err error)

// LookupFunc looks up a value by name in an external source such as the
// environment.
type LookupFunc func(name string) (string, bool)

// Options controls parsing and resolution. The zero value is usable.
type Options struct {
	// SectionNamePattern must match a section name in full.
	SectionNamePattern *regexp.Regexp

	// OptionNamePattern must match an option name in full.
	OptionNamePattern *regexp.Regexp

	// CommentPattern identifies comment lines.
	CommentPattern *regexp.Regexp

	// Normalize maps option names to lookup keys. Default: strings.ToLower.
	Normalize func(string) string

	// NotFound is consulted when an option is absent.
	NotFound NotFoundFunc

	// Strict makes unresolved variable references an error. By default
	// they expand to the empty string.
	Strict bool

	// Template overrides the variable syntax. When set, its Safe method
	// decides the unresolved-variable policy and Strict is ignored.
	Template gzstringx.Template

	// Predefined sections are loaded before the parsed input, which adds
	// to and overrides them.
	Predefined map[string]map[string]string

	// Fetcher retrieves URL includes. Default: a URLFetcher.
	Fetcher Fetcher

	// Env backs the env section. Default: os.LookupEnv.
	Env LookupFunc

	// System backs the system section. Default: SystemProperty.
	System LookupFunc

	// Logger receives debug output about parsing and includes.
	Logger *gzlog.Logger
}

// policy is the immutable, defaulted form of Options shared by every
// Configuration derived from one parse.
type policy struct {
	sectionPattern *regexp.Regexp
	optionPattern  *regexp.Regexp
	commentPattern *regexp.Regexp
	normalize      func(string) string
	notFound       NotFoundFunc
	template       gzstringx.Template
	env            LookupFunc
	system         LookupFunc
	fetcher        Fetcher
	logger         *gzlog.Logger
}

func newPolicy(opts Options) *policy {
	p := &policy{
		sectionPattern: anchored(opts.SectionNamePattern, DefaultSectionNamePattern),
		optionPattern:  anchored(opts.OptionNamePattern, DefaultOptionNamePattern),
		commentPattern: opts.CommentPattern,
		normalize:      opts.Normalize,
		notFound:       opts.NotFound,
		template:       opts.Template,
		env:            opts.Env,
		system:         opts.System,
		fetcher:        opts.Fetcher,
		logger:         opts.Logger,
	}
	if p.commentPattern == nil {
		p.commentPattern = DefaultCommentPattern
	}
	if p.normalize == nil {
		p.normalize = strings.ToLower
	}
	if p.template == nil {
		p.template = gzstringx.NewUnixShellTemplate(!opts.Strict)
	}
	if p.env == nil {
		p.env = os.LookupEnv
	}
	if p.system == nil {
		p.system = SystemProperty
	}
	if p.fetcher == nil {
		p.fetcher = NewURLFetcher()
	}
	if p.logger == nil {
		p.logger = gzlog.GetDefault()
	}
	p.logger = p.logger.WithName("config")
	return p
}

// anchored returns re wrapped so that it must match a whole string.
func anchored(re, def *regexp.Regexp) *regexp.Regexp {
	if re == nil {
		re = def
	}
	return regexp.MustCompile(`^(?:` + re.String() + `)$`)
}

func isReserved(section string) bool {
	return section == EnvSection || section == SystemSection
}
