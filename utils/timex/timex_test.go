// File: timex_test.go
// Title: Time Utilities Tests
// Description: Tests exact parsing with locales and styles, and the date
//              arithmetic helpers.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-01
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-01 v0.1.0: Initial test implementation
// - 2026-10-07 v0.2.0: Locale and arithmetic tests
// - 2026-10-18 v0.2.1: Case-folded month names with wider leading runes

package timex

import (
	"testing"
	"time"

	mdwerror "github.com/msto63/extkit/core/error"
)

// ===============================
// Parsing Tests
// ===============================

func TestParseExact(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		layout   string
		locale   string
		styles   Styles
		wantErr  bool
		expected string
	}{
		{"iso date", "2024-03-01", ISO8601Date, "", StyleAssumeUniversal, false, "2024-03-01T00:00:00Z"},
		{"rfc3339 with offset", "2024-03-01T10:00:00+02:00", time.RFC3339, "", StyleAdjustToUniversal, false, "2024-03-01T08:00:00Z"},
		{"german date", "24.12.2023", GermanDate, "de-DE", StyleAssumeUniversal, false, "2023-12-24T00:00:00Z"},
		{"german month name", "3. März 2024", "2. January 2006", "de-DE", StyleAssumeUniversal, false, "2024-03-03T00:00:00Z"},
		{"upper case month name", "3. M\u00c4RZ 2024", "2. January 2006", "de", StyleAssumeUniversal, false, "2024-03-03T00:00:00Z"},
		{"month after dotted capital I", "\u0130 3. m\u00e4rz 2024", "\u0130 2. January 2006", "de", StyleAssumeUniversal, false, "2024-03-03T00:00:00Z"},
		{"french month name", "14 juillet 1789", DisplayDate, "fr", StyleAssumeUniversal, false, "1789-07-14T00:00:00Z"},
		{"spanish month name", "5 mayo 2020", DisplayDate, "es-MX", StyleAssumeUniversal, false, "2020-05-05T00:00:00Z"},
		{"english in german locale", "2 March 2024", DisplayDate, "de", StyleAssumeUniversal, false, "2024-03-02T00:00:00Z"},
		{"unknown locale keeps text", "2 March 2024", DisplayDate, "ja", StyleAssumeUniversal, false, "2024-03-02T00:00:00Z"},
		{"whitespace allowed", "  2024-03-01\t", ISO8601Date, "", StyleAllowWhiteSpaces | StyleAssumeUniversal, false, "2024-03-01T00:00:00Z"},
		{"whitespace rejected", "  2024-03-01", ISO8601Date, "", StyleAssumeUniversal, true, ""},
		{"layout mismatch", "01/03/2024", ISO8601Date, "", StyleNone, true, ""},
		{"empty text", "", ISO8601Date, "", StyleNone, true, ""},
		{"invalid day", "2024-02-30", ISO8601Date, "", StyleNone, true, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseExact(tc.input, tc.layout, tc.locale, tc.styles)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseExact(%q) expected error, got %v", tc.input, result)
				}
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
					t.Errorf("ParseExact(%q) code = %v; want INVALID_FORMAT", tc.input, mdwerror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseExact(%q) unexpected error: %v", tc.input, err)
			}
			if got := result.UTC().Format(time.RFC3339); got != tc.expected {
				t.Errorf("ParseExact(%q) = %s; want %s", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseExactStyles(t *testing.T) {
	local, err := ParseExact("2024-03-01 12:00:00", BusinessDateTime, "", StyleNone)
	if err != nil {
		t.Fatalf("ParseExact() error = %v", err)
	}
	if local.Location() != time.Local {
		t.Errorf("StyleNone location = %v; want Local", local.Location())
	}

	utc, err := ParseExact("2024-03-01 12:00:00", BusinessDateTime, "", StyleAssumeUniversal)
	if err != nil {
		t.Fatalf("ParseExact() error = %v", err)
	}
	if utc.Location() != time.UTC || utc.Hour() != 12 {
		t.Errorf("StyleAssumeUniversal = %v; want 12:00 UTC", utc)
	}

	adjusted, err := ParseExact("2024-03-01T12:00:00-05:00", time.RFC3339, "", StyleAdjustToUniversal)
	if err != nil {
		t.Fatalf("ParseExact() error = %v", err)
	}
	if adjusted.Location() != time.UTC || adjusted.Hour() != 17 {
		t.Errorf("StyleAdjustToUniversal = %v; want 17:00 UTC", adjusted)
	}

	if !(StyleAllowWhiteSpaces | StyleAssumeUniversal).Has(StyleAssumeUniversal) {
		t.Error("combined styles should contain StyleAssumeUniversal")
	}
	if StyleAllowWhiteSpaces.Has(StyleAdjustToUniversal) {
		t.Error("StyleAllowWhiteSpaces should not contain StyleAdjustToUniversal")
	}
}

func TestParseExactInvalidLocale(t *testing.T) {
	_, err := ParseExact("2024-03-01", ISO8601Date, "not a locale!", StyleNone)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("ParseExact(bad locale) error = %v; want INVALID_INPUT", err)
	}
}

func TestTryParseExact(t *testing.T) {
	if _, ok := TryParseExact("2024-03-01", ISO8601Date, "", StyleNone); !ok {
		t.Error("TryParseExact(valid) = false")
	}
	if result, ok := TryParseExact("yesterday", ISO8601Date, "", StyleNone); ok || !result.IsZero() {
		t.Errorf("TryParseExact(invalid) = %v, %v; want zero, false", result, ok)
	}
}

// ===============================
// Arithmetic Tests
// ===============================

func TestStartAndEndOfDay(t *testing.T) {
	input := time.Date(2024, 3, 1, 15, 30, 45, 123, time.UTC)

	if got := StartOfDay(input); !got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay() = %v", got)
	}
	if got := EndOfDay(input); !got.Equal(time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC)) {
		t.Errorf("EndOfDay() = %v", got)
	}
}

func TestAddMonthsClamped(t *testing.T) {
	testCases := []struct {
		name     string
		input    time.Time
		months   int
		expected time.Time
	}{
		{"plain", time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), 1, time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC)},
		{"leap february", time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"common february", time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), 1, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"year rollover", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), 2, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"backwards", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), -1, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"zero", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), 0, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AddMonthsClamped(tc.input, tc.months); !got.Equal(tc.expected) {
				t.Errorf("AddMonthsClamped(%v, %d) = %v; want %v", tc.input, tc.months, got, tc.expected)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 2, 27, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)

	if got := DaysBetween(start, end); got != 3 {
		t.Errorf("DaysBetween() = %d; want 3", got)
	}
	if got := DaysBetween(end, start); got != -3 {
		t.Errorf("DaysBetween(reversed) = %d; want -3", got)
	}
	if got := DaysBetween(start, start); got != 0 {
		t.Errorf("DaysBetween(same) = %d; want 0", got)
	}
}
