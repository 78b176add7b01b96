// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures across the
//              grizzled libraries, with the configuration codes used by the
//              INI parser and store.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Replaced platform codes with configuration codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// I/O
	CodeIOError      Code = "IO_ERROR"
	CodeNetworkError Code = "NETWORK_ERROR"

	// Configuration parsing
	CodeConfigParse     Code = "CONFIG_PARSE"
	CodeIncludeCycle    Code = "INCLUDE_CYCLE"
	CodeIncludeFailed   Code = "INCLUDE_FAILED"
	CodeInvalidConfig   Code = "INVALID_CONFIG"
	CodeReservedSection Code = "RESERVED_SECTION"

	// Value resolution
	CodeVariableNotFound  Code = "VARIABLE_NOT_FOUND"
	CodeCircularReference Code = "CIRCULAR_REFERENCE"
	CodeNotFoundCallback  Code = "NOT_FOUND_CALLBACK"
	CodeConversion        Code = "CONVERSION"
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeIOError, CodeNetworkError,
		CodeConfigParse, CodeIncludeCycle, CodeIncludeFailed, CodeInvalidConfig, CodeReservedSection,
		CodeVariableNotFound, CodeCircularReference, CodeNotFoundCallback, CodeConversion, CodeUnsupportedFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIOError, CodeNetworkError:
		return "io"
	case CodeConfigParse, CodeIncludeCycle, CodeIncludeFailed, CodeInvalidConfig, CodeReservedSection:
		return "parse"
	case CodeVariableNotFound, CodeCircularReference, CodeNotFoundCallback:
		return "resolution"
	case CodeConversion, CodeUnsupportedFormat:
		return "conversion"
	default:
		return "generic"
	}
}
