// Package timex implements exact date parsing and calendar arithmetic for extkit.
//
// Package: timex
// Title: Exact Date Parsing
// Description: ParseExact parses text against a single Go reference layout
//              with an optional BCP 47 locale and parse styles. It backs the
//              typed value inference of the table CSV loader.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-01 v0.1.0: Initial implementation
// - 2026-10-07 v0.2.0: Locale month names and date arithmetic
//
// # Parsing
//
//	t, err := timex.ParseExact(" 2024-03-01 ", timex.ISO8601Date, "",
//		timex.StyleAllowWhiteSpaces|timex.StyleAssumeUniversal)
//
// Without StyleAssumeUniversal a time without zone information is read in
// the local time zone. StyleAdjustToUniversal converts the result to UTC.
//
// The locale is validated with golang.org/x/text/language. For German,
// French and Spanish the localized month names are accepted wherever the
// layout expects a full English month name:
//
//	t, _ := timex.ParseExact("3. März 2024", "2. January 2006", "de-DE", timex.StyleAssumeUniversal)
//
// Failures return an INVALID_FORMAT error, an unparseable locale returns
// INVALID_INPUT.
//
// # Arithmetic
//
// StartOfDay, EndOfDay, AddMonthsClamped and DaysBetween operate on calendar
// dates in the location of their argument.
package timex
