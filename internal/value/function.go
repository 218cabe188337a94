package value

import (
	"io"

	"github.com/arourke/twig/internal/ast"
)

// Function is a user-defined closure: an ordered parameter list, a
// single body expression, the handle of the frame captured at
// definition time, and any :require/:test annotations attached in the
// fn form. Immutable after construction.
type Function struct {
	Name        string
	Params      []string
	Body        ast.Node
	FrameHandle int // handle into env.Arena at the definition site
	Annotations []Annotation
}

// AnnotationKind distinguishes the two annotation shapes a fn body can
// declare (spec.md §3).
type AnnotationKind uint8

const (
	AnnotationRequire AnnotationKind = iota
	AnnotationTest
)

// Annotation is a :require or :test declaration recorded on a Function.
// Require is recorded but never enforced (spec.md §9); Test is executed
// once, at definition time, by the evaluator (spec.md §4.5).
type Annotation struct {
	Kind     AnnotationKind
	Require  ast.Node   // meaningful when Kind == AnnotationRequire
	TestArgs []ast.Node // meaningful when Kind == AnnotationTest
	Expected ast.Node
}

// Native is a built-in callable. Pure natives receive only argument
// values; WithEnv natives additionally receive the current environment
// handle so they can read or mutate the caller's frame.
type Native struct {
	Name     string
	WithEnv  bool
	Pure     func(args []Value) (Value, error)
	WithEnvF func(args []Value, envHandle int, rt Runtime) (Value, error)
}

// Runtime is the minimal surface a WithEnv native needs from the
// evaluator: frame lookup/assignment and the configured IO streams
// (print writes through Stdout). It offers no way to invoke a callable.
// Defined here (rather than imported from internal/eval) to avoid an
// import cycle between value and eval.
type Runtime interface {
	Lookup(envHandle int, name string) (Value, bool)
	Assign(envHandle int, name string, v Value) bool
	Stdout() io.Writer
	Stdin() io.Reader
}
