// File: unicode.go
// Title: Unicode Escape Table
// Description: A fixed table of literal \uXXXX escape sequences and the
//              characters they stand for, as found in exported JSON and
//              scraped text. The table is built once and never mutated;
//              callers only get copies.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-01
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// UnicodeEscape maps a literal escape sequence to its replacement
type UnicodeEscape struct {
	Sequence    string
	Replacement string
}

var unicodeEscapes = [...]UnicodeEscape{
	{`\u00e4`, "\u00e4"},
	{`\u00f6`, "\u00f6"},
	{`\u00fc`, "\u00fc"},
	{`\u00c4`, "\u00c4"},
	{`\u00d6`, "\u00d6"},
	{`\u00dc`, "\u00dc"},
	{`\u00df`, "\u00df"},
	{`\u00e9`, "\u00e9"},
	{`\u00e8`, "\u00e8"},
	{`\u00e0`, "\u00e0"},
	{`\u00e7`, "\u00e7"},
	{`\u00f1`, "\u00f1"},
	{`\u00a0`, "\u00a0"},
	{`\u00a7`, "\u00a7"},
	{`\u00b0`, "\u00b0"},
	{`\u20ac`, "\u20ac"},
	{`\u2013`, "\u2013"},
	{`\u2014`, "\u2014"},
	{`\u2018`, "\u2018"},
	{`\u2019`, "\u2019"},
	{`\u201c`, "\u201c"},
	{`\u201d`, "\u201d"},
	{`\u2026`, "\u2026"},
	{`\u0026`, "\u0026"},
	{`\u003c`, "\u003c"},
	{`\u003e`, "\u003e"},
	{`\u0027`, "\u0027"},
	{`\u0022`, "\u0022"},
}

var unicodeReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(unicodeEscapes))
	for _, e := range unicodeEscapes {
		pairs = append(pairs, e.Sequence, e.Replacement)
	}
	return strings.NewReplacer(pairs...)
}()

// UnicodeEscapes returns a copy of the escape table
func UnicodeEscapes() []UnicodeEscape {
	out := make([]UnicodeEscape, len(unicodeEscapes))
	copy(out, unicodeEscapes[:])
	return out
}

// UnescapeUnicode replaces every known escape sequence in s. Unknown
// sequences are left untouched.
func UnescapeUnicode(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}
	return unicodeReplacer.Replace(s)
}
