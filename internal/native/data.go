package native

import (
	"strconv"
	"strings"

	"github.com/arourke/twig/internal/value"
	"github.com/arourke/twig/internal/verror"
)

func dataNatives() map[string]*value.Native {
	return map[string]*value.Native{
		"get":    pureNative("get", getNative),
		"len":    pureNative("len", lenNative),
		"concat": pureNative("concat", concatNative),
		"range":  pureNative("range", rangeNative),
		"parse":  pureNative("parse", parseNative),
	}
}

// getNative implements `get` (spec.md §4.6): Array/String index by
// truncated Number (Nil out of range), Object field by String (Nil if
// undeclared).
func getNative(args []value.Value) (value.Value, error) {
	if e := argCount("get", args, 2); e != nil {
		return value.Nil, asErr(e)
	}
	container, key := args[0], args[1]
	switch container.Type {
	case value.TypeArray:
		if e := wantNumber("get", key); e != nil {
			return value.Nil, asErr(e)
		}
		i := int(key.Num)
		if i < 0 || i >= len(container.Arr) {
			return value.Nil, nil
		}
		return container.Arr[i], nil
	case value.TypeString:
		if e := wantNumber("get", key); e != nil {
			return value.Nil, asErr(e)
		}
		runes := []rune(container.Str)
		i := int(key.Num)
		if i < 0 || i >= len(runes) {
			return value.Nil, nil
		}
		return value.StrVal(string(runes[i])), nil
	case value.TypeObject:
		if key.Type != value.TypeString {
			return value.Nil, asErr(verror.Type(verror.ErrIDTypeMismatch, [3]string{"get", "String", key.Type.String()}))
		}
		if v, ok := container.Obj.Get(key.Str); ok {
			return v, nil
		}
		return value.Nil, nil
	default:
		return value.Nil, asErr(verror.Type(verror.ErrIDTypeMismatch, [3]string{"get", "Array/String/Object", container.Type.String()}))
	}
}

func lenNative(args []value.Value) (value.Value, error) {
	if e := argCount("len", args, 1); e != nil {
		return value.Nil, asErr(e)
	}
	switch args[0].Type {
	case value.TypeArray:
		return value.NumVal(float64(len(args[0].Arr))), nil
	case value.TypeString:
		return value.NumVal(float64(len([]rune(args[0].Str)))), nil
	default:
		return value.Nil, asErr(verror.Type(verror.ErrIDTypeMismatch, [3]string{"len", "Array/String", args[0].Type.String()}))
	}
}

// concatNative implements `concat` (spec.md §4.6): if the first argument
// is a String, concatenate toString of every argument; otherwise Nil.
func concatNative(args []value.Value) (value.Value, error) {
	if len(args) == 0 || args[0].Type != value.TypeString {
		return value.Nil, nil
	}
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(a.String())
	}
	return value.StrVal(sb.String()), nil
}

func rangeNative(args []value.Value) (value.Value, error) {
	if e := argCount("range", args, 2); e != nil {
		return value.Nil, asErr(e)
	}
	if e := wantNumber("range", args[0]); e != nil {
		return value.Nil, asErr(e)
	}
	if e := wantNumber("range", args[1]); e != nil {
		return value.Nil, asErr(e)
	}
	start, end := int(args[0].Num), int(args[1].Num)
	if end < start {
		end = start
	}
	out := make([]value.Value, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, value.NumVal(float64(i)))
	}
	return value.ArrayVal(out), nil
}

func parseNative(args []value.Value) (value.Value, error) {
	if e := argCount("parse", args, 1); e != nil {
		return value.Nil, asErr(e)
	}
	if args[0].Type != value.TypeString {
		return value.Nil, asErr(verror.Type(verror.ErrIDTypeMismatch, [3]string{"parse", "String", args[0].Type.String()}))
	}
	n, err := strconv.ParseFloat(args[0].Str, 32)
	if err != nil {
		return value.Nil, nil
	}
	return value.NumVal(n), nil
}
