// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides the file helpers used when loading
//              configuration files and their includes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-15 v0.2.0: Reduced to include support

// Package filex provides file helpers for grizzled-go.
//
// ReadLines and ScanLines read physical lines from files and readers,
// stripping \n and \r\n terminators. ResolveRelative and CanonicalPath turn
// include targets into stable absolute paths so the same file reached via
// different spellings is recognized. WriteFileAtomic replaces a file through
// a temporary sibling and a rename.
//
// Errors are *error.Error values from core/error with codes NOT_FOUND or
// IO_ERROR and a "path" detail.
package filex
