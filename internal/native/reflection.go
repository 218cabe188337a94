package native

import "github.com/arourke/twig/internal/value"

func reflectionNatives() map[string]*value.Native {
	return map[string]*value.Native{
		"typeof": pureNative("typeof", func(args []value.Value) (value.Value, error) {
			if e := argCount("typeof", args, 1); e != nil {
				return value.Nil, asErr(e)
			}
			return value.StrVal(args[0].Type.String()), nil
		}),
	}
}
