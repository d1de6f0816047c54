// File: modules.go
// Title: Module-Specific Error Constructors
// Description: Direct constructors for the failures each extkit module can
//              report, so call sites stay one line long.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-10-02
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-02 v0.1.1: tablestore constructors

package errors

import (
	mdwerror "github.com/msto63/extkit/core/error"
)

// StringxInvalidMarkers reports marker arguments that cannot bound an extraction
func StringxInvalidMarkers(operation, start, end, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("invalid markers for stringx.%s: %s", operation, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("start", start).
		Detail("end", end).
		Build()
}

// TablexInvalidCSV reports CSV content that cannot be loaded into a table
func TablexInvalidCSV(operation, reason string) *mdwerror.Error {
	return NewErrorBuilder(ModuleTablex).
		Operation(operation).
		Messagef("invalid csv content: %s", reason).
		Code(mdwerror.CodeInvalidInput).
		Detail("reason", reason).
		Build()
}

// TablexNotFound reports a missing CSV source file
func TablexNotFound(operation, path string) *mdwerror.Error {
	return NotFound(ModuleTablex, operation, path)
}

// TablestoreNotFound reports a missing table snapshot
func TablestoreNotFound(operation, name string) *mdwerror.Error {
	return NotFound(ModuleTablestore, operation, name)
}

// TablestoreFailed wraps a database failure
func TablestoreFailed(operation string, cause error) *mdwerror.Error {
	return OperationFailed(ModuleTablestore, operation, mdwerror.CodeDatabaseError, cause)
}

// FilexNotFound reports a missing file
func FilexNotFound(operation, path string) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation(operation).
		Messagef("file not found: %s", path).
		Code(mdwerror.CodeNotFound).
		Detail("path", path).
		Build()
}

// FilexReadFailed wraps a read failure other than a missing file
func FilexReadFailed(operation, path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation(operation).
		Messagef("failed to read %s", path).
		Cause(cause).
		Code(mdwerror.CodeInternal).
		Severity(mdwerror.SeverityHigh).
		Detail("path", path).
		Build()
}

// TimexParseError reports text that does not match the expected layout
func TimexParseError(input, layout string, cause error) *mdwerror.Error {
	return InvalidFormat(ModuleTimex, "parse_exact", input, layout, cause)
}

// TimexInvalidLocale reports an unparseable locale tag
func TimexInvalidLocale(locale string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleTimex).
		Operation("parse_exact").
		Messagef("invalid locale %q", locale).
		Cause(cause).
		Code(mdwerror.CodeInvalidInput).
		Detail("locale", locale).
		Build()
}

// FilexWriteFailed wraps a write failure
func FilexWriteFailed(operation, path string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleFilex).
		Operation(operation).
		Messagef("failed to write %s", path).
		Cause(cause).
		Code(mdwerror.CodeInternal).
		Detail("path", path).
		Build()
}

// TablexWriteFailed wraps a failure of the CSV output writer
func TablexWriteFailed(operation string, cause error) *mdwerror.Error {
	return OperationFailed(ModuleTablex, operation, mdwerror.CodeInternal, cause)
}
