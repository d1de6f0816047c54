// File: stringx.go
// Title: Core String Utility Functions
// Description: Small string helpers shared by the extraction functions, the
//              table CSV codec and the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-09-29
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ContainsIgnoreCase returns true if substr is within s, ignoring case.
func ContainsIgnoreCase(s, substr string) bool {
	b, _ := IndexOf(s, substr, CompareIgnoreCase)
	return b >= 0
}

// SplitLines splits a string into lines, handling \n, \r\n and \r endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Split(s, "\n")
}

// SplitFields splits a delimited line on sep. No quoting or escaping is
// recognised. An empty sep returns the whole line as a single field.
func SplitFields(line, sep string) []string {
	if sep == "" {
		return []string{line}
	}
	return strings.Split(line, sep)
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
