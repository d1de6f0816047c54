// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels let the logger pick an output level for an
//              error without the caller deciding it at every call site.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks caller mistakes such as invalid arguments
	SeverityLow Severity = iota

	// SeverityMedium marks failures with an obvious workaround
	SeverityMedium

	// SeverityHigh marks failures of an underlying resource (file system, database)
	SeverityHigh

	// SeverityCritical marks corrupted state
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

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeDatabaseError, CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange, CodeMissingConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
