// File: timex.go
// Title: Exact Date Parsing and Date Arithmetic
// Description: Parses dates against a fixed layout with an optional locale
//              and parse styles, and provides the calendar helpers used by
//              the table value inference and the CLI.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-01
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-01 v0.1.0: ParseExact and TryParseExact
// - 2026-10-07 v0.2.0: Localized month names, AddMonthsClamped
// - 2026-10-18 v0.2.1: Month lookup keeps byte spans of the input

package timex

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/msto63/extkit/core/errors"
	"github.com/msto63/extkit/utils/stringx"
)

// Common layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDateTime = "2006-01-02 15:04:05"
	GermanDate       = "02.01.2006"
	DisplayDate      = "2 January 2006"
)

// Styles modifies how ParseExact interprets its input. Styles combine with |.
type Styles uint8

const (
	// StyleNone parses the text as is in the local time zone
	StyleNone Styles = 0

	// StyleAllowWhiteSpaces ignores leading and trailing white space
	StyleAllowWhiteSpaces Styles = 1 << iota

	// StyleAssumeUniversal interprets a time without zone information as UTC
	StyleAssumeUniversal

	// StyleAdjustToUniversal converts the parsed time to UTC
	StyleAdjustToUniversal
)

// Has reports whether all bits of flag are set
func (s Styles) Has(flag Styles) bool {
	return s&flag == flag
}

// monthNames maps a base language to its month names, January first.
// time.Parse only knows English names, so localized input is rewritten first.
var monthNames = map[language.Base][12]string{
	mustBase("de"): {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	mustBase("fr"): {"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	mustBase("es"): {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

func mustBase(tag string) language.Base {
	base, _ := language.MustParse(tag).Base()
	return base
}

// ParseExact parses text with a Go reference layout. locale is a BCP 47 tag
// ("de-DE", "fr"); an empty locale is the invariant culture. Month names of
// a supported locale are accepted in place of the English names in layout.
// A mismatch returns an INVALID_FORMAT error.
func ParseExact(text, layout, locale string, styles Styles) (time.Time, error) {
	if styles.Has(StyleAllowWhiteSpaces) {
		text = strings.TrimSpace(text)
	}

	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return time.Time{}, errors.TimexInvalidLocale(locale, err)
		}
		text = localizeMonths(text, tag)
	}

	loc := time.Local
	if styles.Has(StyleAssumeUniversal) {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(layout, text, loc)
	if err != nil {
		return time.Time{}, errors.TimexParseError(text, layout, err)
	}

	if styles.Has(StyleAdjustToUniversal) {
		t = t.UTC()
	}
	return t, nil
}

// TryParseExact is ParseExact reporting failure as false
func TryParseExact(text, layout, locale string, styles Styles) (time.Time, bool) {
	t, err := ParseExact(text, layout, locale, styles)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// localizeMonths replaces localized month names with their English names.
// Longer names are replaced first so "juillet" is not split by "juin".
func localizeMonths(text string, tag language.Tag) string {
	base, _ := tag.Base()
	names, ok := monthNames[base]
	if !ok {
		return text
	}

	order := make([]int, 12)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(names[order[a]]) > len(names[order[b]])
	})

	for _, i := range order {
		if begin, end := stringx.IndexOf(text, names[i], stringx.CompareIgnoreCase); begin >= 0 {
			return text[:begin] + time.Month(i+1).String() + text[end:]
		}
	}
	return text
}

// StartOfDay returns the start of the day (00:00:00) for the given time
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the end of the day (23:59:59.999999999) for the given time
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// AddMonthsClamped adds months to t, clamping the day to the last day of the
// target month instead of overflowing: Jan 31 + 1 month is Feb 28 (or 29).
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// DaysBetween calculates the number of calendar days between two dates
func DaysBetween(start, end time.Time) int {
	if start.After(end) {
		return -DaysBetween(end, start)
	}

	// Truncate to date only for accurate day counting
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDate := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	return int(endDate.Sub(startDate).Hours() / 24)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
