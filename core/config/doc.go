// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config parses INI-style configuration files with
//              includes, variable substitution and raw values into an
//              immutable, queryable Configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: INI grammar, includes, substitution, layers

/*
Package config parses INI-style configuration files.

# File Format

	# comment
	[server]
	host = example.org
	port: 8080
	banner -> ${not} \t substituted
	url = http://${host}:${port}/
	home = ${env.HOME}
	long = first part \
	       second part
	%include "local.ini"

Section names and option names must match configurable patterns (letters,
digits and underscores by default). Option names are case-insensitive by
default. Re-opening a section adds to it. Assignments with "=" or ":" are
resolved when read: escapes (\t \f \n \r \\ \uXXXX) are translated, then
${section.option}, ${option} and $option references are substituted. A
value assigned with "->" is raw and always returned as written.

A line ending in an odd number of backslashes continues on the next line,
keeping that line's leading whitespace. %include "target" inserts a file,
resolved relative to the including file, or an http, https or file URL.
Including a file that is already being included is an error.

# Loading

	cfg, err := config.Load("app.ini")

	cfg, err := config.LoadWithOptions("app.ini", config.Options{
		Strict:     true,
		Predefined: map[string]map[string]string{"server": {"port": "80"}},
	})

LoadFromString, LoadFromReader, LoadURL and Parse cover other sources.
Parse errors carry the code CONFIG_PARSE and the origin, line number and
text of the offending line.

# Reading

	host, ok := cfg.Get("server", "host")
	url, ok, err := cfg.Resolve("server", "url")
	port, ok, err := config.GetAs(cfg, "server", "port", config.IntConverter)
	timeout := cfg.GetDuration("server", "timeout", 30*time.Second)
	hosts, ok := cfg.GetList("cluster", "hosts", nil)

The sections env and system are reserved: ${env.HOME} reads the process
environment and ${system.os.name} a system property. They can never be
defined in a file.

By default an unknown variable expands to the empty string. With Strict
set, Resolve fails with VARIABLE_NOT_FOUND instead. References that loop
back on themselves fail with CIRCULAR_REFERENCE.

# Deriving Configurations

A Configuration never changes. Set, SetRaw, SetAll and Merge return a new
Configuration with options added; Remove and RemoveAll return one with
options removed, dropping sections that become empty. Unchanged sections
are shared between the old and new values.

# Layers, Export and Watching

SectionsFromTOML and SectionsFromYAML read tables as predefined sections,
and EncodeTOML, EncodeYAML and WriteTo export a configuration. A Watcher
reloads a file when it changes and keeps the previous configuration if
the new contents do not parse.
*/
package config
