package message

import (
	"math"
	"strconv"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a present key with a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
)

// Value is a small typed scalar used for message metadata.
//
// The representation is designed to make indexing fast and predictable:
// no reflection and no fmt-based stringification on the hot path.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    string
}

// Null returns a null Value.
func Null() Value {
	return Value{Kind: KindNull}
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{Kind: KindInt, I64: v}
}

// Float returns a float Value.
func Float(v float64) Value {
	return Value{Kind: KindFloat, F64: v}
}

// String returns a string Value.
func String(v string) Value {
	return Value{Kind: KindString, s: v}
}

// IsNull reports whether the value is null or invalid.
func (v Value) IsNull() bool {
	return v.Kind == KindNull || v.Kind == KindInvalid
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat or KindInt.
func (v Value) AsFloat64() (float64, bool) {
	switch v.Kind {
	case KindFloat:
		return v.F64, true
	case KindInt:
		return float64(v.I64), true
	default:
		return 0, false
	}
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s, true
}

// Key returns a stable string representation for use in posting-list maps.
//
// It is intended for internal indexing and must remain stable across
// versions: two values compare equal exactly when their keys are equal.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s
	default:
		return "invalid"
	}
}

// Equal reports whether two values hold the same kind and content.
// Unlike Key equality, ints and floats representing the same number
// still compare unequal; GRIB metadata never mixes the two for one key.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.I64 == o.I64
	case KindFloat:
		return v.F64 == o.F64 || (math.IsNaN(v.F64) && math.IsNaN(o.F64))
	case KindString:
		return v.s == o.s
	default:
		return true
	}
}

// String implements fmt.Stringer with a human-readable rendering.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return "<invalid>"
	}
}
