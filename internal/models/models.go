// Package models defines the Value tree shared by the parser, the TOON
// encoder, and the sibling JSON/YAML renderers.
package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a node in a parsed JSON document. It is a closed tagged variant:
// exactly one payload field is meaningful for a given kind, and every
// consumer switches exhaustively on Kind(). Object members keep insertion
// order; a Value is never mutated after construction.
type Value struct {
	kind Kind

	boolVal bool
	numVal  json.Number
	strVal  string
	arrVal  []*Value
	objVal  []Member
}

// Member is a single key/value entry of an object. Keys are unique within
// one object and their order is significant.
type Member struct {
	Key   string
	Value *Value
}

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, boolVal: b}
}

// Number creates a numeric value from its source literal. The literal text
// is preserved verbatim through encoding, so "1" and "1.0" stay distinct.
func Number(n json.Number) *Value {
	return &Value{kind: KindNumber, numVal: n}
}

// Int creates a numeric value from an integer.
func Int(i int64) *Value {
	return &Value{kind: KindNumber, numVal: json.Number(strconv.FormatInt(i, 10))}
}

// Float creates a numeric value from a float. Whole floats keep a trailing
// ".0" so they remain recognizable as floats in the output.
func Float(f float64) *Value {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return &Value{kind: KindNumber, numVal: json.Number(s)}
}

// Str creates a string value.
func Str(s string) *Value {
	return &Value{kind: KindString, strVal: s}
}

// Array creates an array value from its elements.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: items}
}

// Object creates an object value from ordered members.
func Object(members ...Member) *Value {
	return &Value{kind: KindObject, objVal: members}
}

// Field is a convenience constructor for an object member.
func Field(key string, v *Value) Member {
	return Member{Key: key, Value: v}
}

// Kind reports which variant this value holds.
func (v *Value) Kind() Kind {
	return v.kind
}

// BoolVal returns the boolean payload. Valid only for KindBool.
func (v *Value) BoolVal() bool {
	return v.boolVal
}

// NumberVal returns the numeric literal. Valid only for KindNumber.
func (v *Value) NumberVal() json.Number {
	return v.numVal
}

// StringVal returns the string payload. Valid only for KindString.
func (v *Value) StringVal() string {
	return v.strVal
}

// Items returns the array elements. Valid only for KindArray.
func (v *Value) Items() []*Value {
	return v.arrVal
}

// Members returns the object entries in insertion order. Valid only for
// KindObject.
func (v *Value) Members() []Member {
	return v.objVal
}

// IsPrimitive reports whether the value is a non-container kind.
func (v *Value) IsPrimitive() bool {
	switch v.kind {
	case KindNull, KindBool, KindNumber, KindString:
		return true
	default:
		return false
	}
}
