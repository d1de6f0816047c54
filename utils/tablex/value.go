// File: value.go
// Title: Table Cell Values
// Description: Value is the tagged variant stored in table columns. It holds
//              one of null, string, integer, float, boolean or time and
//              stringifies without loss for CSV output.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-02
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Unsigned overflow stored as text

package tablex

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind identifies the payload of a Value
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindTime
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String
func ParseKind(s string) (Kind, bool) {
	for k := KindNull; k <= KindTime; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KindNull, false
}

// Value is a single table cell. The zero value is null.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	tm   time.Time
}

// NullValue returns the null value
func NullValue() Value { return Value{} }

// StringValue wraps a string
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue wraps an integer
func IntValue(i int64) Value { return Value{kind: KindInt, num: i} }

// FloatValue wraps a float
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// BoolValue wraps a boolean
func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// TimeValue wraps a point in time
func TimeValue(t time.Time) Value { return Value{kind: KindTime, tm: t} }

// ValueOf converts a Go value. All integer widths become KindInt, except
// unsigned values above math.MaxInt64 which are kept as decimal KindString.
// float32 and float64 become KindFloat, nil becomes null and anything else that is
// not a string, bool or time.Time is stored as its fmt representation.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return NullValue()
	case Value:
		return x
	case *Value:
		if x == nil {
			return NullValue()
		}
		return *x
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case int:
		return IntValue(int64(x))
	case int8:
		return IntValue(int64(x))
	case int16:
		return IntValue(int64(x))
	case int32:
		return IntValue(int64(x))
	case int64:
		return IntValue(x)
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return IntValue(int64(x))
	case uint16:
		return IntValue(int64(x))
	case uint32:
		return IntValue(int64(x))
	case uint64:
		return uintValue(x)
	case float32:
		return FloatValue(float64(x))
	case float64:
		return FloatValue(x)
	case time.Time:
		return TimeValue(x)
	case fmt.Stringer:
		return StringValue(x.String())
	default:
		return StringValue(fmt.Sprint(x))
	}
}

// uintValue keeps unsigned values above math.MaxInt64 as their decimal text
// so they never alias a negative Int.
func uintValue(x uint64) Value {
	if x > math.MaxInt64 {
		return StringValue(strconv.FormatUint(x, 10))
	}
	return IntValue(int64(x))
}

// Kind returns the payload kind
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer payload
func (v Value) Int() (int64, bool) { return v.num, v.kind == KindInt }

// Float returns the float payload
func (v Value) Float() (float64, bool) { return v.flt, v.kind == KindFloat }

// Bool returns the boolean payload
func (v Value) Bool() (bool, bool) { return v.num == 1, v.kind == KindBool }

// Time returns the time payload
func (v Value) Time() (time.Time, bool) { return v.tm, v.kind == KindTime }

// Text returns the string payload
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }

// Interface returns the payload as a Go value, nil for null
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.num == 1
	case KindTime:
		return v.tm
	default:
		return nil
	}
}

// Equal reports whether both values have the same kind and payload.
// Times compare with time.Time.Equal; an int never equals a float.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindInt, KindBool:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindTime:
		return v.tm.Equal(other.tm)
	default:
		return false
	}
}

// String returns the CSV representation: RFC 3339 for times, "" for null
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.num == 1)
	case KindTime:
		return v.tm.Format(time.RFC3339)
	default:
		return ""
	}
}
