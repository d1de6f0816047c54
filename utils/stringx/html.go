// File: html.go
// Title: HTML Entity Encoding
// Description: HTML encode/decode capability backed by golang.org/x/net/html.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-01
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation

package stringx

import (
	"golang.org/x/net/html"
)

// HTMLEncode escapes <, >, &, ' and " as HTML entities.
func HTMLEncode(s string) string {
	return html.EscapeString(s)
}

// HTMLDecode unescapes HTML entities such as "&lt;", "&#39;" or "&auml;".
func HTMLDecode(s string) string {
	return html.UnescapeString(s)
}
