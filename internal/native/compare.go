package native

import (
	"github.com/arourke/twig/internal/value"
	"github.com/arourke/twig/internal/verror"
)

func numberCompare(name string, op func(a, b float64) bool) *value.Native {
	return pureNative(name, func(args []value.Value) (value.Value, error) {
		if e := argCount(name, args, 2); e != nil {
			return value.Nil, asErr(e)
		}
		if e := wantNumber(name, args[0]); e != nil {
			return value.Nil, asErr(e)
		}
		if e := wantNumber(name, args[1]); e != nil {
			return value.Nil, asErr(e)
		}
		return value.BoolVal(op(args[0].Num, args[1].Num)), nil
	})
}

func boolCompare(name string, op func(a, b bool) bool) *value.Native {
	return pureNative(name, func(args []value.Value) (value.Value, error) {
		if e := argCount(name, args, 2); e != nil {
			return value.Nil, asErr(e)
		}
		if e := wantBool(name, args[0]); e != nil {
			return value.Nil, asErr(e)
		}
		if e := wantBool(name, args[1]); e != nil {
			return value.Nil, asErr(e)
		}
		return value.BoolVal(op(args[0].AsBool(), args[1].AsBool())), nil
	})
}

// equality implements `==`/`!=` (spec.md §4.6): a same-tag Bool, Number,
// or String comparison; mismatched or missing tags are a type error
// rather than simply comparing false.
func equality(name string, negate bool) *value.Native {
	return pureNative(name, func(args []value.Value) (value.Value, error) {
		if e := argCount(name, args, 2); e != nil {
			return value.Nil, asErr(e)
		}
		a, b := args[0], args[1]
		if a.Type != b.Type || (a.Type != value.TypeBool && a.Type != value.TypeNumber && a.Type != value.TypeString) {
			return value.Nil, asErr(verror.Type(verror.ErrIDTypeMismatch, [3]string{name, "matching Bool/Number/String", a.Type.String() + "/" + b.Type.String()}))
		}
		eq := a.Equals(b)
		if negate {
			eq = !eq
		}
		return value.BoolVal(eq), nil
	})
}

func compareNatives() map[string]*value.Native {
	return map[string]*value.Native{
		">":  numberCompare(">", func(a, b float64) bool { return a > b }),
		"<":  numberCompare("<", func(a, b float64) bool { return a < b }),
		">=": numberCompare(">=", func(a, b float64) bool { return a >= b }),
		"<=": numberCompare("<=", func(a, b float64) bool { return a <= b }),
		"==": equality("==", false),
		"!=": equality("!=", true),
		"&&": boolCompare("&&", func(a, b bool) bool { return a && b }),
		"||": boolCompare("||", func(a, b bool) bool { return a || b }),
		"not": pureNative("not", func(args []value.Value) (value.Value, error) {
			if e := argCount("not", args, 1); e != nil {
				return value.Nil, asErr(e)
			}
			if e := wantBool("not", args[0]); e != nil {
				return value.Nil, asErr(e)
			}
			return value.BoolVal(!args[0].AsBool()), nil
		}),
	}
}
