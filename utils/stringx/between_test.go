// File: between_test.go
// Title: Unit Tests for Substring Extraction
// Description: Tests GetBetween, GetBetweenReverse, GetManyBetween and
//              SeqBetween including empty markers, missing markers, case
//              folding and the marker order of the reverse scan.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-29
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-29 v0.1.0: Initial test implementation
// - 2026-10-06 v0.2.0: SeqBetween tests
// - 2026-10-18 v0.2.1: Many regions after a non-ASCII prefix

package stringx

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/errors"
)

func TestGetBetween(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    string
		end      string
		opts     BetweenOptions
		expected string
	}{
		{"open start", "Hello this is a beautiful day.", "", "day", BetweenOptions{}, "Hello this is a beautiful "},
		{"open end", "key=value", "=", "", BetweenOptions{}, "value"},
		{"both markers", "a [b] c", "[", "]", BetweenOptions{}, "b"},
		{"first region only", "[one] [two]", "[", "]", BetweenOptions{}, "one"},
		{"end searched after start", "]x[y]", "[", "]", BetweenOptions{}, "y"},
		{"start not found", "a [b] c", "{", "]", BetweenOptions{}, ""},
		{"end not found", "a [b c", "[", "]", BetweenOptions{}, ""},
		{"end only before start", "] [abc", "[", "]", BetweenOptions{}, ""},
		{"empty text", "", "[", "]", BetweenOptions{}, ""},
		{"empty region", "a[]b", "[", "]", BetweenOptions{}, ""},
		{"include markers", "a[b]c", "[", "]", BetweenOptions{IncludeMarkers: true}, "[b]"},
		{"include open start", "Hello day", "", "day", BetweenOptions{IncludeMarkers: true}, "Hello day"},
		{"include open end", "key=value", "=", "", BetweenOptions{IncludeMarkers: true}, "=value"},
		{"ignore case default", "Name: <B>bold</b>", "<b>", "</B>", BetweenOptions{}, "bold"},
		{"ordinal case mismatch", "Name: <B>bold</b>", "<b>", "</B>", BetweenOptions{Comparison: CompareOrdinal}, ""},
		{"ordinal match", "Name: <B>bold</b>", "<B>", "</b>", BetweenOptions{Comparison: CompareOrdinal}, "bold"},
		{"multi-byte marker", "@@ttl@@", "@@", "@@", BetweenOptions{}, "ttl"},
		{"fold changes byte length", "\u212aey=1;", "key=", ";", BetweenOptions{}, "1"},
		{"fold include uses arguments", "\u212aey=1;", "key=", ";", BetweenOptions{IncludeMarkers: true}, "key=1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GetBetween(tt.text, tt.start, tt.end, tt.opts)
			if err != nil {
				t.Fatalf("GetBetween(%q, %q, %q) error = %v", tt.text, tt.start, tt.end, err)
			}
			if result != tt.expected {
				t.Errorf("GetBetween(%q, %q, %q) = %q; want %q", tt.text, tt.start, tt.end, result, tt.expected)
			}
		})
	}
}

func TestGetBetweenBothMarkersEmpty(t *testing.T) {
	for _, text := range []string{"", "abc", "[x]"} {
		for _, opts := range []BetweenOptions{{}, {Comparison: CompareOrdinal, IncludeMarkers: true}} {
			result, err := GetBetween(text, "", "", opts)
			if err == nil {
				t.Fatalf("GetBetween(%q, \"\", \"\") error = nil; want INVALID_INPUT", text)
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("GetBetween(%q, \"\", \"\") code = %v; want %v", text, mdwerror.GetCode(err), mdwerror.CodeInvalidInput)
			}
			if result != "" {
				t.Errorf("GetBetween(%q, \"\", \"\") = %q; want empty", text, result)
			}
		}
	}
}

func TestGetBetweenSingleRegionProperty(t *testing.T) {
	markers := []struct{ start, end string }{
		{"[", "]"},
		{"<tag>", "</tag>"},
		{"BEGIN", "END"},
	}
	middles := []string{"", "x", "hello world", "a,b;c"}

	for _, m := range markers {
		for _, middle := range middles {
			text := "prefix " + m.start + middle + m.end + " suffix"

			plain, err := GetBetween(text, m.start, m.end)
			if err != nil || plain != middle {
				t.Errorf("GetBetween(%q) = %q, %v; want %q", text, plain, err, middle)
			}

			with, err := GetBetween(text, m.start, m.end, BetweenOptions{IncludeMarkers: true})
			if err != nil || with != m.start+middle+m.end {
				t.Errorf("GetBetween(%q, include) = %q, %v; want %q", text, with, err, m.start+middle+m.end)
			}
		}
	}
}

func TestGetBetweenReverse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    string
		end      string
		opts     BetweenOptions
		expected string
	}{
		{"last region", "a <1> b <2> c", ">", "<", BetweenOptions{}, "2"},
		{"include markers end first", "a <1> b <2> c", ">", "<", BetweenOptions{IncludeMarkers: true}, "<2>"},
		{"only start found", "abc|def", "|", "#", BetweenOptions{}, "abc"},
		{"only start found include", "abc|def", "|", "#", BetweenOptions{IncludeMarkers: true}, "abc|"},
		{"only end found", "abc|def", "#", "|", BetweenOptions{}, "def"},
		{"only end found include", "abc|def", "#", "|", BetweenOptions{IncludeMarkers: true}, "|def"},
		{"neither found", "abc|def", "#", "%", BetweenOptions{}, ""},
		{"neither found include", "abc|def", "#", "%", BetweenOptions{IncludeMarkers: true}, ""},
		{"both markers empty", "abc", "", "", BetweenOptions{}, ""},
		{"empty start", "abc|def", "", "|", BetweenOptions{}, "def"},
		{"empty end", "abc|def", "|", "", BetweenOptions{}, "abc"},
		{"empty text", "", "a", "b", BetweenOptions{}, ""},
		{"end must precede start", "x>y<z", ">", "<", BetweenOptions{}, "x"},
		{"ignore case", "END x START", "start", "end", BetweenOptions{}, " x "},
		{"ordinal", "END x START", "start", "end", BetweenOptions{Comparison: CompareOrdinal}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetBetweenReverse(tt.text, tt.start, tt.end, tt.opts)
			if result != tt.expected {
				t.Errorf("GetBetweenReverse(%q, %q, %q) = %q; want %q", tt.text, tt.start, tt.end, result, tt.expected)
			}
		})
	}
}

// The reverse scan anchors on the last start marker and walks back to the
// previous end marker, so with forward-reading markers it returns the gap
// between two regions and, with IncludeMarkers, emits the end marker first.
func TestGetBetweenReverseForwardMarkers(t *testing.T) {
	text := "x[one]y[two]z"

	if got := GetBetweenReverse(text, "[", "]"); got != "y" {
		t.Errorf("GetBetweenReverse(%q, \"[\", \"]\") = %q; want %q", text, got, "y")
	}

	got := GetBetweenReverse(text, "[", "]", BetweenOptions{IncludeMarkers: true})
	if got != "]y[" {
		t.Errorf("GetBetweenReverse(%q, include) = %q; want %q", text, got, "]y[")
	}
}

func TestGetManyBetween(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		start    string
		end      string
		opts     BetweenOptions
		expected []string
	}{
		{"brackets", "Hello [World]! [How] are [you] doing?", "[", "]", BetweenOptions{}, []string{"World", "How", "you"}},
		{"include markers", "Hello [World]! [How] are [you] doing?", "[", "]", BetweenOptions{IncludeMarkers: true}, []string{"[World]", "[How]", "[you]"}},
		{"unterminated tail", "[a] [b", "[", "]", BetweenOptions{}, []string{"a"}},
		{"nested markers do not overlap", "[[a]]", "[", "]", BetweenOptions{}, []string{"[a"}},
		{"same marker resumes after end", "|a|b|c|", "|", "|", BetweenOptions{}, []string{"a", "c"}},
		{"empty regions", "[][]", "[", "]", BetweenOptions{}, []string{"", ""}},
		{"ignore case", "<B>1</b><b>2</B>", "<b>", "</b>", BetweenOptions{}, []string{"1", "2"}},
		{"ordinal", "<B>1</b><b>2</b>", "<b>", "</b>", BetweenOptions{Comparison: CompareOrdinal}, []string{"2"}},
		{"no start", "abc", "[", "]", BetweenOptions{}, []string{}},
		{"no end", "[abc", "[", "]", BetweenOptions{}, []string{}},
		{"empty text", "", "[", "]", BetweenOptions{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GetManyBetween(tt.text, tt.start, tt.end, tt.opts)
			if err != nil {
				t.Fatalf("GetManyBetween(%q) error = %v", tt.text, err)
			}
			if result == nil {
				t.Fatalf("GetManyBetween(%q) = nil; want non-nil slice", tt.text)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("GetManyBetween(%q, %q, %q) = %q; want %q", tt.text, tt.start, tt.end, result, tt.expected)
			}
		})
	}
}

func TestGetManyBetweenRequiresMarkers(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"empty start", "", "]"},
		{"empty end", "[", ""},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GetManyBetween("[a]", tt.start, tt.end)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("GetManyBetween error = %v; want INVALID_INPUT", err)
			}
			if !errors.IsModuleOperation(err, errors.ModuleStringx, "get_many_between") {
				t.Errorf("GetManyBetween error operation = %q; want get_many_between", errors.ExtractOperation(err))
			}
			if result != nil {
				t.Errorf("GetManyBetween = %q; want nil on error", result)
			}

			if _, err := SeqBetween("[a]", tt.start, tt.end); err == nil {
				t.Error("SeqBetween error = nil; want INVALID_INPUT")
			}
		})
	}
}

func TestGetManyBetweenCountsRegions(t *testing.T) {
	for n := 0; n <= 25; n++ {
		var builder strings.Builder
		expected := make([]string, 0, n)
		for i := 0; i < n; i++ {
			item := fmt.Sprintf("item%d", i)
			expected = append(expected, item)
			fmt.Fprintf(&builder, "noise %d {{%s}} ", i, item)
		}

		result, err := GetManyBetween(builder.String(), "{{", "}}")
		if err != nil {
			t.Fatalf("n=%d: error = %v", n, err)
		}
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("n=%d: GetManyBetween = %q; want %q", n, result, expected)
		}
	}
}

func TestGetManyBetweenMixedText(t *testing.T) {
	const n = 20000
	text := "\u00e9" + strings.Repeat("[a]", n) + "[\u212a]"

	result, err := GetManyBetween(text, "[", "]")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if len(result) != n+1 {
		t.Fatalf("len(GetManyBetween) = %d; want %d", len(result), n+1)
	}
	if result[0] != "a" || result[n] != "\u212a" {
		t.Errorf("first, last = %q, %q; want \"a\", \"\u212a\"", result[0], result[n])
	}

	kelvin, err := GetManyBetween(text, "[k", "]")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !reflect.DeepEqual(kelvin, []string{""}) {
		t.Errorf("GetManyBetween with folded marker = %q; want [\"\"]", kelvin)
	}
}

func TestSeqBetween(t *testing.T) {
	seq, err := SeqBetween("(1)(2)(3)(4)", "(", ")")
	if err != nil {
		t.Fatalf("SeqBetween error = %v", err)
	}

	var firstTwo []string
	for v := range seq {
		firstTwo = append(firstTwo, v)
		if len(firstTwo) == 2 {
			break
		}
	}
	if !reflect.DeepEqual(firstTwo, []string{"1", "2"}) {
		t.Errorf("early break collected %q; want [1 2]", firstTwo)
	}

	var all []string
	for v := range seq {
		all = append(all, v)
	}
	if !reflect.DeepEqual(all, []string{"1", "2", "3", "4"}) {
		t.Errorf("second pass collected %q; want all four regions", all)
	}
}
