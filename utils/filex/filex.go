// File: filex.go
// Title: Core File Utilities
// Description: Path resolution, existence checks and line reading used by the
//              configuration loader and its include handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-15 v0.2.0: Reduced to include support; structured errors

package filex

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	gzerror "github.com/bmc/grizzled-go/core/error"
)

// MaxLineLength bounds a single physical line read by ScanLines.
const MaxLineLength = 1 << 20

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ===============================
// Reading
// ===============================

// ReadLines reads the file and returns its contents as a slice of lines
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		code := gzerror.CodeIOError
		if os.IsNotExist(err) {
			code = gzerror.CodeNotFound
		}
		return nil, gzerror.Wrap(err, "failed to open file").
			WithCode(code).
			WithDetail("path", path)
	}
	defer file.Close()

	lines, err := ScanLines(file)
	if err != nil {
		return nil, gzerror.Wrap(err, "error reading lines").WithDetail("path", path)
	}
	return lines, nil
}

// ScanLines reads r to the end and splits it into lines. Line terminators
// (\n or \r\n) are removed.
func ScanLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, gzerror.Wrap(err, "failed to scan lines").WithCode(gzerror.CodeIOError)
	}
	return lines, nil
}

// ===============================
// Writing
// ===============================

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a partial file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return gzerror.Wrap(err, "failed to create temporary file").
			WithCode(gzerror.CodeIOError).
			WithDetail("path", path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return gzerror.Wrap(err, "failed to write file").
			WithCode(gzerror.CodeIOError).
			WithDetail("path", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return gzerror.Wrap(err, "failed to close file").
			WithCode(gzerror.CodeIOError).
			WithDetail("path", path)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return gzerror.Wrap(err, "failed to set permissions").
			WithCode(gzerror.CodeIOError).
			WithDetail("path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return gzerror.Wrap(err, "failed to rename file").
			WithCode(gzerror.CodeIOError).
			WithDetail("path", path)
	}
	return nil
}

// ===============================
// Path Manipulation
// ===============================

// AbsPath returns the absolute path of a file
func AbsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", gzerror.Wrap(err, "failed to get absolute path").
			WithCode(gzerror.CodeIOError).
			WithDetail("path", path)
	}
	return absPath, nil
}

// CanonicalPath returns the absolute, symlink-free form of path. If the path
// cannot be evaluated (for example because it does not exist yet), the
// cleaned absolute path is returned.
func CanonicalPath(path string) (string, error) {
	abs, err := AbsPath(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// ResolveRelative interprets target relative to baseDir unless target is
// already absolute. An empty baseDir means the working directory.
func ResolveRelative(baseDir, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	if baseDir == "" {
		return filepath.Clean(target)
	}
	return filepath.Join(baseDir, target)
}

// Dir returns the directory containing the file
func Dir(path string) string {
	return filepath.Dir(path)
}

// Ext returns the file extension in lower case, without the dot
func Ext(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
