package native

import (
	"math"
	"strconv"

	"github.com/arourke/twig/internal/value"
	"github.com/arourke/twig/internal/verror"
)

// binaryNumberOp builds an arithmetic native over two or more Numbers,
// folding op left to right: (- 10 3 2) is (10-3)-2.
func binaryNumberOp(name string, op func(a, b float64) float64) *value.Native {
	return pureNative(name, func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return value.Nil, asErr(verror.Type(verror.ErrIDArgCount, [3]string{name, "at least 2", strconv.Itoa(len(args))}))
		}
		for _, a := range args {
			if e := wantNumber(name, a); e != nil {
				return value.Nil, asErr(e)
			}
		}
		acc := args[0].Num
		for _, a := range args[1:] {
			acc = op(acc, a.Num)
		}
		return value.NumVal(acc), nil
	})
}

func mathNatives() map[string]*value.Native {
	return map[string]*value.Native{
		"+": binaryNumberOp("+", func(a, b float64) float64 { return a + b }),
		"-": binaryNumberOp("-", func(a, b float64) float64 { return a - b }),
		"*": binaryNumberOp("*", func(a, b float64) float64 { return a * b }),
		"/": binaryNumberOp("/", func(a, b float64) float64 { return a / b }),
		"^": binaryNumberOp("^", func(a, b float64) float64 { return math.Pow(a, b) }),

		"abs": pureNative("abs", func(args []value.Value) (value.Value, error) {
			if e := argCount("abs", args, 1); e != nil {
				return value.Nil, asErr(e)
			}
			if e := wantNumber("abs", args[0]); e != nil {
				return value.Nil, asErr(e)
			}
			return value.NumVal(math.Abs(args[0].Num)), nil
		}),
	}
}
