// File: layers.go
// Title: TOML and YAML Layers
// Description: Reads TOML and YAML documents as predefined sections and
//              exports resolved configurations in those formats.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: TOML/YAML parsing for the main configuration
// - 2026-10-15 v0.2.0: TOML/YAML as section layers and export formats

package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	gzerror "github.com/bmc/grizzled-go/core/error"
	"github.com/bmc/grizzled-go/utils/filex"
	"github.com/bmc/grizzled-go/utils/mapx"
)

// Format names a serialization format for sections.
type Format int

const (
	// FormatINI is the native format.
	FormatINI Format = iota

	// FormatTOML represents TOML tables of scalar values.
	FormatTOML

	// FormatYAML represents YAML mappings of scalar values.
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatINI:
		return "ini"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ini", "cfg", "conf":
		return FormatINI, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatINI, gzerror.Newf("unsupported format: %s", name).
			WithCode(gzerror.CodeUnsupportedFormat).
			WithDetail("format", name)
	}
}

// SectionsFromTOML reads a TOML document whose top-level keys are tables of
// scalar or array values. Arrays become comma-separated lists.
func SectionsFromTOML(r io.Reader) (map[string]map[string]string, error) {
	var doc map[string]interface{}
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, gzerror.Wrap(err, "TOML parse error").
			WithCode(gzerror.CodeConfigParse).
			WithOperation("config.SectionsFromTOML")
	}
	return sectionsFromDocument(doc, FormatTOML)
}

// SectionsFromYAML reads a YAML document whose top-level keys are mappings
// of scalar or sequence values. Sequences become comma-separated lists.
func SectionsFromYAML(r io.Reader) (map[string]map[string]string, error) {
	var doc map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, gzerror.Wrap(err, "YAML parse error").
			WithCode(gzerror.CodeConfigParse).
			WithOperation("config.SectionsFromYAML")
	}
	return sectionsFromDocument(doc, FormatYAML)
}

// SectionsFromFile reads sections from a TOML (.toml) or YAML (.yaml, .yml)
// file.
func SectionsFromFile(path string) (map[string]map[string]string, error) {
	format, err := ParseFormat(filex.Ext(path))
	if err != nil {
		return nil, err
	}
	if format == FormatINI {
		return nil, gzerror.Newf("unsupported layer format: %s", path).
			WithCode(gzerror.CodeUnsupportedFormat).
			WithDetail("path", path)
	}

	f, err := os.Open(path)
	if err != nil {
		code := gzerror.CodeIOError
		if os.IsNotExist(err) {
			code = gzerror.CodeNotFound
		}
		return nil, gzerror.Wrap(err, "failed to open layer file").
			WithCode(code).
			WithDetail("path", path)
	}
	defer f.Close()

	if format == FormatTOML {
		return SectionsFromTOML(f)
	}
	return SectionsFromYAML(f)
}

func sectionsFromDocument(doc map[string]interface{}, format Format) (map[string]map[string]string, error) {
	sections := make(map[string]map[string]string, len(doc))
	for name, raw := range doc {
		table, ok := raw.(map[string]interface{})
		if !ok {
			return nil, gzerror.Newf("%s key %q is not a table", format, name).
				WithCode(gzerror.CodeUnsupportedFormat).
				WithDetail("section", name)
		}

		options := make(map[string]string, len(table))
		for key, value := range table {
			s, err := scalarString(value)
			if err != nil {
				return nil, gzerror.Wrap(err, fmt.Sprintf("%s value %s.%s", format, name, key)).
					WithCode(gzerror.CodeUnsupportedFormat).
					WithDetail("section", name).
					WithDetail("option", key)
			}
			options[key] = s
		}
		sections[name] = options
	}
	return sections, nil
}

func scalarString(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case time.Time:
		return t.Format(time.RFC3339), nil
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			s, err := scalarString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), nil
	case map[string]interface{}:
		return "", fmt.Errorf("nested tables are not supported")
	default:
		return fmt.Sprint(t), nil
	}
}

// EncodeTOML writes the resolved configuration as TOML tables.
func EncodeTOML(w io.Writer, c *Configuration) error {
	if err := toml.NewEncoder(w).Encode(c.ToMap()); err != nil {
		return gzerror.Wrap(err, "TOML encode error").
			WithCode(gzerror.CodeIOError).
			WithOperation("config.EncodeTOML")
	}
	return nil
}

// EncodeYAML writes the resolved configuration as YAML mappings.
func EncodeYAML(w io.Writer, c *Configuration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sortedYAML(c.ToMap())); err != nil {
		return gzerror.Wrap(err, "YAML encode error").
			WithCode(gzerror.CodeIOError).
			WithOperation("config.EncodeYAML")
	}
	if err := enc.Close(); err != nil {
		return gzerror.Wrap(err, "YAML encode error").
			WithCode(gzerror.CodeIOError).
			WithOperation("config.EncodeYAML")
	}
	return nil
}

// sortedYAML builds a mapping node with keys in sorted order.
func sortedYAML(m map[string]map[string]string) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range mapx.SortedKeys(m) {
		section := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range mapx.SortedKeys(m[name]) {
			section.Content = append(section.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				&yaml.Node{Kind: yaml.ScalarNode, Value: m[name][k], Tag: "!!str"},
			)
		}
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, section)
	}
	return root
}
