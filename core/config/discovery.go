// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates an INI file by base name across a list of search
//              directories and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-15 v0.2.0: INI names and user config directory

package config

import (
	"os"
	"path/filepath"
	"strings"

	gzerror "github.com/bmc/grizzled-go/core/error"
	"github.com/bmc/grizzled-go/utils/filex"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base names to look for, with or without extension
	Extensions []string // Extensions tried after the bare name
}

// DefaultDiscoveryOptions searches the working directory, the user config
// directory and /etc for name, name.ini, name.cfg and name.conf.
func DefaultDiscoveryOptions(name string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, dir)
	}
	paths = append(paths, "/etc")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{name},
		Extensions: []string{".ini", ".cfg", ".conf"},
	}
}

// ListPossibleConfigFiles returns the candidate paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			paths = append(paths, filepath.Join(dir, name))
			for _, ext := range options.Extensions {
				if !strings.HasSuffix(name, ext) {
					paths = append(paths, filepath.Join(dir, name+ext))
				}
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that is a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		if filex.IsFile(path) {
			return path, nil
		}
	}
	return "", gzerror.New("configuration file not found").
		WithCode(gzerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// Discover finds a configuration file and loads it
func Discover(options DiscoveryOptions, opts Options) (*Configuration, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		return nil, err
	}
	return LoadWithOptions(path, opts)
}
