// File: layers_test.go
// Title: TOML and YAML Layer Tests
// Description: Tests for reading TOML/YAML sections and exporting
//              configurations in those formats.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: TOML/YAML parsing tests
// - 2026-10-15 v0.2.0: Layers as predefined sections and export

package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	gzerror "github.com/bmc/grizzled-go/core/error"
)

const tomlLayer = `
[server]
host = "localhost"
port = 8080
debug = true
tags = ["a", "b"]

[db]
name = "main"
`

const yamlLayer = `
server:
  host: localhost
  port: 8080
  debug: true
  tags: [a, b]
db:
  name: main
`

func TestSectionsFromDocuments(t *testing.T) {
	tests := []struct {
		name string
		read func() (map[string]map[string]string, error)
	}{
		{"toml", func() (map[string]map[string]string, error) {
			return SectionsFromTOML(strings.NewReader(tomlLayer))
		}},
		{"yaml", func() (map[string]map[string]string, error) {
			return SectionsFromYAML(strings.NewReader(yamlLayer))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections, err := tt.read()
			if err != nil {
				t.Fatal(err)
			}
			want := map[string]string{
				"host":  "localhost",
				"port":  "8080",
				"debug": "true",
				"tags":  "a, b",
			}
			for k, v := range want {
				if sections["server"][k] != v {
					t.Errorf("server.%s = %q, want %q", k, sections["server"][k], v)
				}
			}
			if sections["db"]["name"] != "main" {
				t.Errorf("db.name = %q", sections["db"]["name"])
			}
		})
	}
}

func TestSectionsFromDocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		read func() error
		code gzerror.Code
	}{
		{"toml syntax", func() error {
			_, err := SectionsFromTOML(strings.NewReader("[a\n"))
			return err
		}, gzerror.CodeConfigParse},
		{"toml top-level scalar", func() error {
			_, err := SectionsFromTOML(strings.NewReader("x = 1\n"))
			return err
		}, gzerror.CodeUnsupportedFormat},
		{"toml nested table", func() error {
			_, err := SectionsFromTOML(strings.NewReader("[a.b]\nx = 1\n"))
			return err
		}, gzerror.CodeUnsupportedFormat},
		{"yaml syntax", func() error {
			_, err := SectionsFromYAML(strings.NewReader("a: [\n"))
			return err
		}, gzerror.CodeConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.read(); !gzerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %v", err, tt.code)
			}
		})
	}

	sections, err := SectionsFromYAML(strings.NewReader(""))
	if err != nil || len(sections) != 0 {
		t.Errorf("empty YAML = %v, %v", sections, err)
	}
}

func TestSectionsFromFileAsPredefined(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"defaults.toml": tomlLayer,
		"defaults.yml":  yamlLayer,
		"defaults.ini":  "[a]\n",
		"app.ini":       "[server]\nport = 9090\nurl = http://${host}:${port}/\n",
	})

	for _, layer := range []string{"defaults.toml", "defaults.yml"} {
		t.Run(layer, func(t *testing.T) {
			predefined, err := SectionsFromFile(filepath.Join(dir, layer))
			if err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadWithOptions(filepath.Join(dir, "app.ini"), Options{Predefined: predefined})
			if err != nil {
				t.Fatal(err)
			}
			if v, _ := cfg.Get("server", "url"); v != "http://localhost:9090/" {
				t.Errorf("server.url = %q", v)
			}
			if v, _ := cfg.Get("db", "name"); v != "main" {
				t.Errorf("db.name = %q", v)
			}
		})
	}

	if _, err := SectionsFromFile(filepath.Join(dir, "defaults.ini")); !gzerror.HasCode(err, gzerror.CodeUnsupportedFormat) {
		t.Errorf("ini layer error = %v", err)
	}
	if _, err := SectionsFromFile(filepath.Join(dir, "absent.toml")); !gzerror.HasCode(err, gzerror.CodeNotFound) {
		t.Errorf("missing layer error = %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"ini", FormatINI, false},
		{"conf", FormatINI, false},
		{"TOML", FormatTOML, false},
		{" yml ", FormatYAML, false},
		{"json", FormatINI, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v", tt.in, got)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := mustLoad(t, "[server]\nhost = example.org\nport = 80\nurl = http://${host}:${port}\n[empty_val]\nx =\n", Options{})

	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
		decode func(*bytes.Buffer) (map[string]map[string]string, error)
	}{
		{"toml",
			func(b *bytes.Buffer) error { return EncodeTOML(b, cfg) },
			func(b *bytes.Buffer) (map[string]map[string]string, error) { return SectionsFromTOML(b) }},
		{"yaml",
			func(b *bytes.Buffer) error { return EncodeYAML(b, cfg) },
			func(b *bytes.Buffer) (map[string]map[string]string, error) { return SectionsFromYAML(b) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatal(err)
			}
			got, err := tt.decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got["server"]["url"] != "http://example.org:80" {
				t.Errorf("server.url = %q, want resolved value", got["server"]["url"])
			}
			if got["server"]["port"] != "80" {
				t.Errorf("server.port = %q", got["server"]["port"])
			}
			if v, ok := got["empty_val"]["x"]; !ok || v != "" {
				t.Errorf("empty_val.x = %q, %v", v, ok)
			}
		})
	}
}
