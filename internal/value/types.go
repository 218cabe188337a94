// Package value implements the runtime value model for twig: a tagged
// union with constructor functions and As* assertion helpers, built
// through explicit tag switches rather than polymorphic dispatch.
package value

// Type identifies the runtime tag of a Value.
type Type uint8

const (
	TypeNil Type = iota
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeFunction
	TypeNative
	TypeObject
)

// String returns the type name twig's typeof native reports.
func (t Type) String() string {
	switch t {
	case TypeNil:
		return "Nil"
	case TypeBool:
		return "Bool"
	case TypeNumber:
		return "Number"
	case TypeString:
		return "String"
	case TypeArray:
		return "Array"
	case TypeFunction, TypeNative:
		return "Function"
	case TypeObject:
		return "Object"
	default:
		return "Unknown"
	}
}
