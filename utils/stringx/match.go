// File: match.go
// Title: Marker Matching Primitives
// Description: Forward and backward substring search with ordinal or
//              case-insensitive comparison. Both return the byte span of the
//              match inside s, since a case-folded match can differ in byte
//              length from the needle.
// Author: msto63
// Version: v0.1.0
// Created: 2026-09-29
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-29 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: ASCII check hoisted out of repeated searches

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Comparison selects how markers are matched against the subject text
type Comparison int

const (
	// CompareIgnoreCase matches rune by rune under Unicode simple case folding.
	// It is the zero value and therefore the default.
	CompareIgnoreCase Comparison = iota

	// CompareOrdinal matches bytes exactly
	CompareOrdinal
)

// String returns the string representation of the comparison
func (c Comparison) String() string {
	switch c {
	case CompareIgnoreCase:
		return "ignore_case"
	case CompareOrdinal:
		return "ordinal"
	default:
		return "unknown"
	}
}

// IndexOf returns the byte span [begin, end) of the first occurrence of sub
// in s, or (-1, -1) if there is none. An empty sub matches at (0, 0).
func IndexOf(s, sub string, cmp Comparison) (begin, end int) {
	return indexOf(s, sub, cmp, isASCIIString(s))
}

// indexOf is IndexOf with the ASCII check of s done by the caller, so
// repeated searches over suffixes of one text scan it only once.
func indexOf(s, sub string, cmp Comparison, asciiText bool) (begin, end int) {
	if sub == "" {
		return 0, 0
	}

	if cmp == CompareOrdinal || (asciiText && isASCIIString(sub)) {
		i := indexASCII(s, sub, cmp)
		if i < 0 {
			return -1, -1
		}
		return i, i + len(sub)
	}

	for i := 0; i < len(s); {
		if n, ok := foldPrefix(s[i:], sub); ok {
			return i, i + n
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return -1, -1
}

// LastIndexOf returns the byte span [begin, end) of the last occurrence of
// sub in s, or (-1, -1). An empty sub matches at (len(s), len(s)).
func LastIndexOf(s, sub string, cmp Comparison) (begin, end int) {
	return lastIndexOf(s, sub, cmp, isASCIIString(s))
}

func lastIndexOf(s, sub string, cmp Comparison, asciiText bool) (begin, end int) {
	if sub == "" {
		return len(s), len(s)
	}

	if cmp == CompareOrdinal || (asciiText && isASCIIString(sub)) {
		i := lastIndexASCII(s, sub, cmp)
		if i < 0 {
			return -1, -1
		}
		return i, i + len(sub)
	}

	for i := len(s); i >= 0; {
		if i < len(s) {
			if n, ok := foldPrefix(s[i:], sub); ok {
				return i, i + n
			}
		}
		if i == 0 {
			break
		}
		_, w := utf8.DecodeLastRuneInString(s[:i])
		i -= w
	}
	return -1, -1
}

func indexASCII(s, sub string, cmp Comparison) int {
	if cmp == CompareOrdinal {
		return strings.Index(s, sub)
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func lastIndexASCII(s, sub string, cmp Comparison) int {
	if cmp == CompareOrdinal {
		return strings.LastIndex(s, sub)
	}
	for i := len(s) - len(sub); i >= 0; i-- {
		if strings.EqualFold(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

// foldPrefix reports whether s starts with prefix under simple case folding
// and returns how many bytes of s the match consumed.
func foldPrefix(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return 0, false
		}
		sr, w := utf8.DecodeRuneInString(s[n:])
		if !equalFoldRune(sr, pr) {
			return 0, false
		}
		n += w
	}
	return n, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
