// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides marker-based substring extraction and
//              the string helpers used across extkit.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-29
// Modified: 2026-10-06
//
// Change History:
// - 2026-09-29 v0.1.0: Initial documentation
// - 2026-10-06 v0.2.0: SeqBetween and the comparison primitives

// Package stringx provides marker-based substring extraction for extkit.
//
// # Overview
//
// The extraction functions take a subject text and a pair of markers, start
// and end, and return the region they bound:
//
//   - GetBetween: first start, then the first end after it
//   - GetBetweenReverse: last start, then the last end before it
//   - GetManyBetween / SeqBetween: every non-overlapping start...end region
//
// Markers are compared case-insensitively unless BetweenOptions selects
// CompareOrdinal. Case-insensitive matching folds rune by rune, so a match
// can differ in byte length from the marker; IndexOf and LastIndexOf report
// spans inside the subject for that reason.
//
// # Missing input
//
// "Nothing found" is a normal outcome and never an error: a marker that does
// not occur yields "" or an empty slice. Only marker combinations that cannot
// bound anything are errors (code INVALID_INPUT):
//
//   - GetBetween with both markers empty
//   - GetManyBetween / SeqBetween with either marker empty
//
// GetBetweenReverse never fails; an empty marker there means "unbounded on
// that side".
//
// # Including markers
//
// With IncludeMarkers, GetBetween and GetManyBetween return
// start + region + end. GetBetweenReverse returns end + region + start,
// following the backwards traversal: the end marker is met first.
//
// # Usage
//
//	first, err := stringx.GetBetween("key=[abc] other=[def]", "[", "]")
//	// first == "abc"
//
//	all, err := stringx.GetManyBetween("Hello [World]! [How] are [you] doing?", "[", "]")
//	// all == []string{"World", "How", "you"}
//
//	last := stringx.GetBetweenReverse("a <1> b <2> c", ">", "<")
//	// last == "2"
//
//	strict, err := stringx.GetBetween("ID: x", "id:", "", stringx.BetweenOptions{
//		Comparison: stringx.CompareOrdinal,
//	})
//	// strict == "" because "id:" does not occur with that casing
//
// # Other helpers
//
// SplitLines and SplitFields back the tablex CSV codec. HTMLEncode and
// HTMLDecode wrap golang.org/x/net/html. UnescapeUnicode replaces literal
// \uXXXX sequences from a fixed, read-only table.
package stringx
