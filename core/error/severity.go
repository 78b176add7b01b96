// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the logger
//              can prioritize them.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-15 v0.1.1: Severity mapping for configuration codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreadable source
	SeverityHigh

	// SeverityCritical indicates an error that makes the component unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeIOError, CodeNetworkError, CodeIncludeFailed, CodeIncludeCycle:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeConfigParse, CodeInvalidConfig, CodeReservedSection,
		CodeVariableNotFound, CodeConversion, CodeUnsupportedFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
