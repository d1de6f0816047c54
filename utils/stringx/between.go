// File: between.go
// Title: Substring Extraction Between Markers
// Description: Extracts the text bounded by a start and an end marker, either
//              the first region, the last region scanning backwards, or every
//              non-overlapping region from left to right.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-29
// Modified: 2026-10-18
//
// Change History:
// - 2026-09-29 v0.1.0: GetBetween, GetBetweenReverse, GetManyBetween
// - 2026-10-06 v0.2.0: SeqBetween; GetManyBetween collects the sequence
// - 2026-10-18 v0.2.1: Text classified once per scan

package stringx

import (
	"iter"
	"strings"

	"github.com/msto63/extkit/core/errors"
)

// BetweenOptions controls marker matching for the extraction functions.
// The zero value compares case-insensitively and strips the markers.
type BetweenOptions struct {
	Comparison     Comparison
	IncludeMarkers bool
}

func resolveBetweenOptions(opts []BetweenOptions) BetweenOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return BetweenOptions{}
}

// GetBetween returns the text between the first occurrence of start and the
// first occurrence of end after it. An empty start begins the region at the
// beginning of text, an empty end extends it to the end of text. A marker
// that is not found yields "". Both markers empty is an INVALID_INPUT error.
//
// With IncludeMarkers the result is start + region + end.
func GetBetween(text, start, end string, opts ...BetweenOptions) (string, error) {
	if start == "" && end == "" {
		return "", errors.StringxInvalidMarkers("get_between", start, end, "start or end marker required")
	}
	if text == "" {
		return "", nil
	}

	o := resolveBetweenOptions(opts)

	from := 0
	if start != "" {
		_, e := IndexOf(text, start, o.Comparison)
		if e < 0 {
			return "", nil
		}
		from = e
	}

	to := len(text)
	if end != "" {
		b, _ := IndexOf(text[from:], end, o.Comparison)
		if b < 0 {
			return "", nil
		}
		to = from + b
	}

	if o.IncludeMarkers {
		return start + text[from:to] + end, nil
	}
	return text[from:to], nil
}

// GetBetweenReverse scans backwards: it anchors on the last occurrence of
// start (end of text if start is empty or missing) and takes the last
// occurrence of end before that anchor (beginning of text if end is empty or
// missing). If neither marker is found the result is "".
//
// With IncludeMarkers the found markers are added in traversal order, so the
// result reads end + region + start.
func GetBetweenReverse(text, start, end string, opts ...BetweenOptions) string {
	if text == "" {
		return ""
	}

	o := resolveBetweenOptions(opts)

	ascii := isASCIIString(text)

	anchor, startFound := len(text), false
	if start != "" {
		if b, _ := lastIndexOf(text, start, o.Comparison, ascii); b >= 0 {
			anchor, startFound = b, true
		}
	}

	from, endFound := 0, false
	if end != "" {
		if _, e := lastIndexOf(text[:anchor], end, o.Comparison, ascii); e >= 0 {
			from, endFound = e, true
		}
	}

	if !startFound && !endFound {
		return ""
	}

	if !o.IncludeMarkers {
		return text[from:anchor]
	}

	var builder strings.Builder
	builder.Grow(len(end) + (anchor - from) + len(start))
	if endFound {
		builder.WriteString(end)
	}
	builder.WriteString(text[from:anchor])
	if startFound {
		builder.WriteString(start)
	}
	return builder.String()
}

// SeqBetween returns a restartable sequence over every non-overlapping
// start...end region of text, left to right. Scanning resumes after each
// matched end marker. Both markers are required.
func SeqBetween(text, start, end string, opts ...BetweenOptions) (iter.Seq[string], error) {
	if start == "" || end == "" {
		return nil, errors.StringxInvalidMarkers("seq_between", start, end, "start and end markers required")
	}

	o := resolveBetweenOptions(opts)
	ascii := isASCIIString(text)

	return func(yield func(string) bool) {
		pos := 0
		for pos < len(text) {
			_, se := indexOf(text[pos:], start, o.Comparison, ascii)
			if se < 0 {
				return
			}
			from := pos + se

			eb, ee := indexOf(text[from:], end, o.Comparison, ascii)
			if eb < 0 {
				return
			}

			region := text[from : from+eb]
			if o.IncludeMarkers {
				region = start + region + end
			}
			if !yield(region) {
				return
			}
			pos = from + ee
		}
	}, nil
}

// GetManyBetween returns every non-overlapping start...end region of text in
// order of appearance. Both markers are required; an empty text or a missing
// marker yields an empty slice.
func GetManyBetween(text, start, end string, opts ...BetweenOptions) ([]string, error) {
	if start == "" || end == "" {
		return nil, errors.StringxInvalidMarkers("get_many_between", start, end, "start and end markers required")
	}

	seq, err := SeqBetween(text, start, end, opts...)
	if err != nil {
		return nil, err
	}

	matches := make([]string, 0)
	for region := range seq {
		matches = append(matches, region)
	}
	return matches, nil
}
