// File: infer.go
// Title: CSV Field Type Inference
// Description: Recovers typed values from CSV fields when a table is loaded
//              with InferTypes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-08
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation

package tablex

import (
	"strconv"
	"strings"
	"time"

	"github.com/msto63/extkit/utils/timex"
)

// timeLayouts are tried in order by InferValue
var timeLayouts = []string{time.RFC3339Nano, timex.ISO8601Date}

// InferValue maps a field to the narrowest matching kind: "" is null,
// "true"/"false" (any case) are bool, then int, float and RFC 3339 time or
// date. Anything else stays a string.
func InferValue(field string) Value {
	if field == "" {
		return NullValue()
	}

	if strings.EqualFold(field, "true") {
		return BoolValue(true)
	}
	if strings.EqualFold(field, "false") {
		return BoolValue(false)
	}

	if looksNumeric(field) {
		if i, err := strconv.ParseInt(field, 10, 64); err == nil {
			return IntValue(i)
		}
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return FloatValue(f)
		}
	}

	for _, layout := range timeLayouts {
		if t, ok := timex.TryParseExact(field, layout, "", timex.StyleAssumeUniversal); ok {
			return TimeValue(t)
		}
	}

	return StringValue(field)
}

// looksNumeric rejects words ParseFloat would accept, such as "Inf" or "NaN"
func looksNumeric(s string) bool {
	c := s[0]
	if c == '+' || c == '-' {
		if len(s) == 1 {
			return false
		}
		c = s[1]
	}
	return (c >= '0' && c <= '9') || c == '.'
}
