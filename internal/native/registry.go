package native

import (
	"github.com/arourke/twig/internal/eval"
	"github.com/arourke/twig/internal/value"
)

// Register installs every built-in primitive into e's root frame, one
// group of natives at a time, and binds true and false to their Bool
// values there.
func Register(e *eval.Evaluator) {
	root := e.RootHandle()
	for _, group := range []map[string]*value.Native{
		mathNatives(),
		compareNatives(),
		ioNatives(e.Stdin()),
		dataNatives(),
		reflectionNatives(),
	} {
		for name, n := range group {
			e.Arena.ForceDeclare(root, name, value.NativeVal(n))
		}
	}
	e.Arena.ForceDeclare(root, "true", value.BoolVal(true))
	e.Arena.ForceDeclare(root, "false", value.BoolVal(false))
}
