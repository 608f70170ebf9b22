package ast

import (
	"errors"
	"strconv"

	"github.com/fattreed/lox/lexer"
)

// ErrNoValue is returned when a token literal carries no value
var ErrNoValue = errors.New("literal carries no value")

// ValueType represents the type of a literal value
type ValueType uint8

// Value types. The zero value of Value is nil.
const (
	ValueTypeNil ValueType = iota
	ValueTypeString
	ValueTypeNumber
	ValueTypeBool
)

var valueTypeName = map[ValueType]string{
	ValueTypeNil:    "nil",
	ValueTypeString: "string",
	ValueTypeNumber: "number",
	ValueTypeBool:   "bool",
}

func (vt ValueType) String() string {
	return valueTypeName[vt]
}

// Value is the value of a literal expression: a string, a number, a
// boolean or nil.
type Value struct {
	t ValueType
	v interface{}
}

var (
	Nil   = Value{t: ValueTypeNil}
	True  = Value{t: ValueTypeBool, v: true}
	False = Value{t: ValueTypeBool, v: false}
)

// NewStringValue creates a value of type string
func NewStringValue(v string) Value {
	return Value{t: ValueTypeString, v: v}
}

// NewNumberValue creates a value of type number
func NewNumberValue(v float64) Value {
	return Value{t: ValueTypeNumber, v: v}
}

// NewBoolValue creates a value of type bool
func NewBoolValue(v bool) Value {
	if v {
		return True
	}
	return False
}

// ValueFromLiteral converts the literal of a token into a value. Tokens
// without literal yield ErrNoValue.
func ValueFromLiteral(l lexer.Literal) (Value, error) {
	switch l.Kind() {
	case lexer.LiteralString:
		return NewStringValue(l.Value().(string)), nil
	case lexer.LiteralNumber:
		return NewNumberValue(l.Value().(float64)), nil
	case lexer.LiteralBool:
		return NewBoolValue(l.Value().(bool)), nil
	case lexer.LiteralNil:
		return Nil, nil
	}
	return Nil, ErrNoValue
}

// Type returns the type of the value
func (v Value) Type() ValueType {
	return v.t
}

// Value returns the underlying string, float64, bool or nil
func (v Value) Value() interface{} {
	return v.v
}

// Encode returns the source representation of the value
func (v Value) Encode() string {
	switch v.t {
	case ValueTypeString:
		return strconv.Quote(v.v.(string))
	case ValueTypeNumber:
		return strconv.FormatFloat(v.v.(float64), 'g', -1, 64)
	case ValueTypeBool:
		return strconv.FormatBool(v.v.(bool))
	case ValueTypeNil:
		return "nil"
	}

	panic("unreachable")
}

func (v Value) String() string {
	return v.Encode()
}
