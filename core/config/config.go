// File: config.go
// Title: Configuration Loading
// Description: Defines the immutable Configuration type and the functions
//              that build one from files, strings, readers and URLs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: INI sections with includes and lazy substitution

package config

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	gzerror "github.com/bmc/grizzled-go/core/error"
	gzlog "github.com/bmc/grizzled-go/core/log"
	"github.com/bmc/grizzled-go/utils/filex"
	gzstringx "github.com/bmc/grizzled-go/utils/stringx"
)

// Configuration is an immutable set of sections together with the policy
// used to resolve their values. Mutating operations return a new
// Configuration that shares unchanged sections with the receiver, so a
// Configuration may be read from any number of goroutines.
type Configuration struct {
	sections map[string]*Section
	policy   *policy
}

// New returns a configuration holding only the predefined sections.
func New(opts Options) (*Configuration, error) {
	p := newPolicy(opts)
	sections, err := predefinedSections(p, opts.Predefined)
	if err != nil {
		return nil, gzerror.Wrap(err, "invalid predefined sections").
			WithOperation("config.New")
	}
	return &Configuration{sections: sections, policy: p}, nil
}

// Load parses the configuration file at path with default options
func Load(path string) (*Configuration, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions parses the configuration file at path
func LoadWithOptions(path string, opts Options) (*Configuration, error) {
	if gzstringx.IsBlank(path) {
		return nil, gzerror.New("config file path cannot be empty").
			WithCode(gzerror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	f, err := os.Open(path)
	if err != nil {
		code := gzerror.CodeIOError
		if os.IsNotExist(err) {
			code = gzerror.CodeNotFound
		}
		return nil, gzerror.Wrap(err, "failed to open config file").
			WithCode(code).
			WithOperation("config.LoadWithOptions").
			WithDetail("path", path)
	}
	defer f.Close()

	return Parse(context.Background(), f, path, opts)
}

// LoadFromString parses configuration text. Relative includes are resolved
// against the working directory.
func LoadFromString(content string, opts Options) (*Configuration, error) {
	return Parse(context.Background(), strings.NewReader(content), StringOrigin, opts)
}

// LoadFromReader parses configuration read from r. origin names the source
// in error messages; if it is a file path or URL, relative includes are
// resolved against it.
func LoadFromReader(r io.Reader, origin string, opts Options) (*Configuration, error) {
	return Parse(context.Background(), r, origin, opts)
}

// LoadURL fetches and parses the configuration at rawURL.
func LoadURL(ctx context.Context, rawURL string, opts Options) (*Configuration, error) {
	u, ok := parseSourceURL(rawURL)
	if !ok {
		return nil, gzerror.Newf("not a supported URL: %s", rawURL).
			WithCode(gzerror.CodeInvalidInput).
			WithOperation("config.LoadURL")
	}

	p := newPolicy(opts)
	data, err := p.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, gzerror.Wrap(err, "failed to fetch configuration").
			WithOperation("config.LoadURL").
			WithDetail("url", rawURL)
	}
	return parseWithPolicy(ctx, bytes.NewReader(data), u.String(), p, opts.Predefined)
}

// Parse reads configuration text from r. Includes are expanded under ctx,
// which bounds any file or network access they need. On failure no
// configuration is returned.
func Parse(ctx context.Context, r io.Reader, origin string, opts Options) (*Configuration, error) {
	return parseWithPolicy(ctx, r, origin, newPolicy(opts), opts.Predefined)
}

func parseWithPolicy(ctx context.Context, r io.Reader, origin string, p *policy, predefined map[string]map[string]string) (*Configuration, error) {
	if origin == "" {
		origin = StringOrigin
	}

	physical, err := filex.ScanLines(r)
	if err != nil {
		return nil, gzerror.Wrap(err, "failed to read configuration").
			WithOperation("config.Parse").
			WithDetail("origin", origin)
	}

	lines, err := newPreprocessor(ctx, p).run(sourceFor(origin), physical)
	if err != nil {
		return nil, err
	}

	sections, err := parseLines(lines, p, predefined)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("configuration parsed", gzlog.Fields{
		"origin":   origin,
		"lines":    len(lines),
		"sections": len(sections),
	})
	return &Configuration{sections: sections, policy: p}, nil
}

// Safe reports whether unresolved variable references expand to the empty
// string rather than failing.
func (c *Configuration) Safe() bool {
	return c.policy.template.Safe()
}
