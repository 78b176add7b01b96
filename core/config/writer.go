// File: writer.go
// Title: INI Writer
// Description: Serializes a configuration back to INI text that parses to
//              the same stored sections.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package config

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	gzerror "github.com/bmc/grizzled-go/core/error"
	"github.com/bmc/grizzled-go/utils/filex"
)

// WriteTo writes the stored sections in INI syntax, sections and options
// sorted by name. Values are written unresolved; raw values use "->".
// Values that cannot be represented on one line fail with INVALID_INPUT.
func (c *Configuration) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	for i, name := range c.SectionNames() {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString("[" + name + "]\n")

		sec := c.sections[name]
		for _, opt := range sec.OptionNames() {
			value, _ := sec.Value(opt)
			if err := checkWritable(name, opt, value.Text); err != nil {
				return cw.n, err
			}
			op := " = "
			if value.Raw {
				op = " -> "
			}
			bw.WriteString(opt + op + value.Text + "\n")
		}
	}

	if err := bw.Flush(); err != nil {
		return cw.n, gzerror.Wrap(err, "failed to write configuration").
			WithCode(gzerror.CodeIOError).
			WithOperation("config.WriteTo")
	}
	return cw.n, nil
}

// WriteFile writes the configuration to path, replacing it atomically.
func (c *Configuration) WriteFile(path string, perm os.FileMode) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	return filex.WriteFileAtomic(path, buf.Bytes(), perm)
}

func checkWritable(section, option, text string) error {
	switch {
	case strings.ContainsAny(text, "\r\n"):
	case strings.TrimSpace(text) != text:
	case continues(text):
	default:
		return nil
	}
	return gzerror.Newf("value of %s.%s cannot be written as INI", section, option).
		WithCode(gzerror.CodeInvalidInput).
		WithOperation("config.WriteTo").
		WithDetail("section", section).
		WithDetail("option", option)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
