package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is the tagged runtime value every twig expression evaluates to.
// Only the field matching Type is meaningful. Values are immutable once
// constructed — set/field-assignment builds a new Value rather than
// mutating one in place (spec.md §4.3).
type Value struct {
	Type Type
	Num  float64
	Str  string
	Arr  []Value
	Fn   *Function
	Nat  *Native
	Obj  *Object
}

// Nil is the singleton none-value.
var Nil = Value{Type: TypeNil}

// BoolVal constructs a Bool value.
func BoolVal(b bool) Value {
	return Value{Type: TypeBool, Num: boolToFloat(b)}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// AsBool extracts the Go bool behind a Bool value.
func (v Value) AsBool() bool { return v.Num != 0 }

// NumVal constructs a Number value.
func NumVal(n float64) Value { return Value{Type: TypeNumber, Num: n} }

// StrVal constructs a String value.
func StrVal(s string) Value { return Value{Type: TypeString, Str: s} }

// ArrayVal constructs an Array value from already-evaluated elements.
func ArrayVal(elems []Value) Value { return Value{Type: TypeArray, Arr: elems} }

// FuncVal wraps a user-defined Function as a Value.
func FuncVal(fn *Function) Value { return Value{Type: TypeFunction, Fn: fn} }

// NativeVal wraps a built-in Native as a Value.
func NativeVal(n *Native) Value { return Value{Type: TypeNative, Nat: n} }

// ObjectVal wraps an Object instance as a Value.
func ObjectVal(o *Object) Value { return Value{Type: TypeObject, Obj: o} }

// IsTruthy implements the §4.5 `if` rule: only Bool(true) is true; any
// non-Bool discriminant (including Nil, 0, "") is handled by the caller
// as "neither branch" rather than being coerced here.
func (v Value) IsTruthy() bool {
	return v.Type == TypeBool && v.AsBool()
}

// Equals implements the == / != comparison contract (spec.md §4.6):
// same-tag Bool/Number/String comparison; any other pairing (including
// mismatched tags) is not equality-comparable and is the caller's job to
// reject before calling Equals.
func (v Value) Equals(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TypeBool:
		return v.AsBool() == other.AsBool()
	case TypeNumber:
		return v.Num == other.Num
	case TypeString:
		return v.Str == other.Str
	default:
		return false
	}
}

// String renders v per the printing rules of spec.md §4.3.
func (v Value) String() string {
	switch v.Type {
	case TypeNil:
		return "nil"
	case TypeBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case TypeNumber:
		return formatNumber(v.Num)
	case TypeString:
		return v.Str
	case TypeArray:
		parts := make([]string, len(v.Arr))
		for i, e := range v.Arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case TypeObject:
		return v.Obj.String()
	case TypeFunction:
		return "function"
	case TypeNative:
		return "native"
	default:
		return "nil"
	}
}

// formatNumber renders a 32-bit float in its shortest decimal form
// (e.g. "5", "3.14"), matching spec.md §4.3.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 32)
}

// GoString supports fmt's %#v / debug printing without leaking payload
// fields that are meaningless for the value's Type.
func (v Value) GoString() string {
	return fmt.Sprintf("Value{%s %s}", v.Type, v.String())
}
