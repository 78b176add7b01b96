// File: preprocess.go
// Title: Line Preprocessor
// Description: Turns physical lines into logical lines by joining
//              continuations and expanding %include directives.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strings"

	gzerror "github.com/bmc/grizzled-go/core/error"
	gzlog "github.com/bmc/grizzled-go/core/log"
	"github.com/bmc/grizzled-go/utils/filex"
)

var includePattern = regexp.MustCompile(`^\s*%include\s+"([^"]+)"\s*$`)

// Line is a logical line: physical lines joined by continuations, tagged
// with the source it came from and the number of its first physical line.
type Line struct {
	Text   string
	Origin string
	Number int
}

// source describes where a sequence of physical lines came from and how
// relative include targets inside it are resolved.
type source struct {
	origin  string
	key     string   // identity for cycle detection
	baseDir string   // directory for relative paths; empty means cwd
	baseURL *url.URL // set when the source itself is a URL
}

type preprocessor struct {
	ctx     context.Context
	fetcher Fetcher
	logger  *gzlog.Logger
	open    []string
}

func newPreprocessor(ctx context.Context, p *policy) *preprocessor {
	return &preprocessor{ctx: ctx, fetcher: p.fetcher, logger: p.logger}
}

// sourceFor classifies a top-level origin.
func sourceFor(origin string) source {
	if u, ok := parseSourceURL(origin); ok {
		return source{origin: origin, key: u.String(), baseURL: u}
	}
	if origin == "" || strings.HasPrefix(origin, "<") {
		return source{origin: origin, key: origin}
	}
	key := origin
	if canonical, err := filex.CanonicalPath(origin); err == nil {
		key = canonical
	}
	return source{origin: origin, key: key, baseDir: filex.Dir(origin)}
}

// run expands the physical lines of a top-level source.
func (p *preprocessor) run(src source, physical []string) ([]Line, error) {
	p.open = append(p.open, src.key)
	defer func() { p.open = p.open[:len(p.open)-1] }()
	return p.expand(src, physical)
}

func (p *preprocessor) expand(src source, physical []string) ([]Line, error) {
	lines := make([]Line, 0, len(physical))

	for i := 0; i < len(physical); i++ {
		number := i + 1
		text := physical[i]
		for continues(text) {
			text = text[:len(text)-1]
			if i+1 >= len(physical) {
				break
			}
			i++
			text += physical[i]
		}

		m := includePattern.FindStringSubmatch(text)
		if m == nil {
			lines = append(lines, Line{Text: text, Origin: src.origin, Number: number})
			continue
		}

		included, err := p.include(src, m[1], number)
		if err != nil {
			return nil, err
		}
		lines = append(lines, included...)
	}
	return lines, nil
}

// continues reports whether text ends in an odd number of backslashes.
func continues(text string) bool {
	n := 0
	for i := len(text) - 1; i >= 0 && text[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func (p *preprocessor) include(parent source, target string, number int) ([]Line, error) {
	if err := p.ctx.Err(); err != nil {
		return nil, gzerror.Wrap(err, "include cancelled").
			WithCode(gzerror.CodeTimeout).
			WithDetail("origin", parent.origin).
			WithDetail("line", number)
	}

	child := p.resolveTarget(parent, target)
	for _, key := range p.open {
		if key == child.key {
			chain := append(append([]string(nil), p.open...), child.key)
			return nil, gzerror.Newf("%s, line %d: include cycle: %s", parent.origin, number, strings.Join(chain, " -> ")).
				WithCode(gzerror.CodeIncludeCycle).
				WithDetail("origin", parent.origin).
				WithDetail("line", number).
				WithDetail("target", target)
		}
	}

	physical, err := p.read(child)
	if err != nil {
		return nil, gzerror.Wrap(err, "cannot include \""+target+"\"").
			WithCode(gzerror.CodeIncludeFailed).
			WithDetail("origin", parent.origin).
			WithDetail("line", number).
			WithDetail("target", target)
	}

	p.logger.Debug("including configuration", gzlog.Fields{
		"origin": parent.origin,
		"line":   number,
		"target": child.origin,
	})

	p.open = append(p.open, child.key)
	defer func() { p.open = p.open[:len(p.open)-1] }()
	return p.expand(child, physical)
}

func (p *preprocessor) resolveTarget(parent source, target string) source {
	if u, ok := parseSourceURL(target); ok {
		return source{origin: u.String(), key: u.String(), baseURL: u}
	}
	if parent.baseURL != nil {
		if ref, err := url.Parse(target); err == nil {
			u := parent.baseURL.ResolveReference(ref)
			return source{origin: u.String(), key: u.String(), baseURL: u}
		}
	}

	path := filex.ResolveRelative(parent.baseDir, target)
	key := path
	if canonical, err := filex.CanonicalPath(path); err == nil {
		key = canonical
	}
	return source{origin: path, key: key, baseDir: filex.Dir(path)}
}

func (p *preprocessor) read(src source) ([]string, error) {
	if src.baseURL == nil {
		return filex.ReadLines(src.origin)
	}
	data, err := p.fetcher.Fetch(p.ctx, src.baseURL)
	if err != nil {
		return nil, err
	}
	return filex.ScanLines(bytes.NewReader(data))
}
