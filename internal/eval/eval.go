// Package eval implements twig's core evaluator: recursive
// interpretation of the expression tree, dispatch between special forms
// and callables, and execution of :test annotations at fn-definition
// time.
//
// Dispatch runs through a table built once — a map[string]specialFormFunc
// keyed on a List's head symbol — with small per-form functions instead
// of one large switch.
package eval

import (
	"fmt"
	"io"
	"time"

	"github.com/arourke/twig/internal/ast"
	"github.com/arourke/twig/internal/env"
	"github.com/arourke/twig/internal/trace"
	"github.com/arourke/twig/internal/value"
	"github.com/arourke/twig/internal/verror"
)

// Evaluator holds the environment arena and the ambient IO/trace state
// every evaluation needs.
type Evaluator struct {
	Arena     *env.Arena
	root      int
	stdout    io.Writer
	stdin     io.Reader
	callStack []string
	trace     *trace.Session
}

// New creates an Evaluator with a fresh root frame and no built-ins
// installed; callers (typically internal/native.Register) populate the
// root frame after construction.
func New(stdout io.Writer, stdin io.Reader) *Evaluator {
	arena, root := env.NewArena()
	return &Evaluator{
		Arena:     arena,
		root:      root,
		stdout:    stdout,
		stdin:     stdin,
		callStack: []string{"(top level)"},
		trace:     trace.Noop(),
	}
}

// RootHandle returns the root frame handle, for callers installing
// built-ins directly via Arena.ForceDeclare/DeclareStruct.
func (e *Evaluator) RootHandle() int { return e.root }

// SetTrace installs a trace session (trace.Noop() disables tracing).
func (e *Evaluator) SetTrace(s *trace.Session) { e.trace = s }

// Stdout / Stdin implement value.Runtime for WithEnv natives.
func (e *Evaluator) Stdout() io.Writer { return e.stdout }
func (e *Evaluator) Stdin() io.Reader  { return e.stdin }

// Lookup implements value.Runtime.
func (e *Evaluator) Lookup(handle int, name string) (value.Value, bool) {
	return e.Arena.Lookup(handle, name)
}

// Assign implements value.Runtime.
func (e *Evaluator) Assign(handle int, name string, v value.Value) bool {
	return e.Arena.Assign(handle, name, v)
}

// EvalProgram evaluates a top-level forest of forms in the root frame,
// emitting one trace line per top-level form, and returns the value of
// the last form (Nil if the program is empty) per spec.md §4.5's
// fold-to-last-value rule.
func (e *Evaluator) EvalProgram(forms []ast.Node) (value.Value, *verror.Error) {
	result := value.Nil
	for _, form := range forms {
		start := time.Now()
		v, err := e.Eval(form, e.root)
		e.trace.Emit(0, renderNear(form), time.Since(start))
		if err != nil {
			return value.Nil, err
		}
		result = v
	}
	return result, nil
}

// EvalSeq folds a sequence of sibling expressions, evaluated in order in
// handle's frame, returning the last value or Nil if empty.
func (e *Evaluator) EvalSeq(forms []ast.Node, handle int) (value.Value, *verror.Error) {
	result := value.Nil
	for _, f := range forms {
		v, err := e.Eval(f, handle)
		if err != nil {
			return value.Nil, err
		}
		result = v
	}
	return result, nil
}

// Eval evaluates a single expression node in the frame at handle
// (spec.md §4.5).
func (e *Evaluator) Eval(node ast.Node, handle int) (value.Value, *verror.Error) {
	switch node.Kind {
	case ast.Number:
		return value.NumVal(node.Num), nil
	case ast.String:
		return value.StrVal(node.Text), nil
	case ast.Symbol:
		if v, ok := e.Arena.Lookup(handle, node.Text); ok {
			return v, nil
		}
		return value.Nil, nil
	case ast.Array:
		vals, err := e.evalArgs(node.Elems, handle)
		if err != nil {
			return value.Nil, err
		}
		return value.ArrayVal(vals), nil
	case ast.List:
		return e.evalList(node, handle)
	default:
		return value.Nil, verror.Internal(verror.ErrIDAssertionFailed, [3]string{"unknown node kind", "", ""})
	}
}

func (e *Evaluator) evalArgs(nodes []ast.Node, handle int) ([]value.Value, *verror.Error) {
	vals := make([]value.Value, len(nodes))
	for i, n := range nodes {
		v, err := e.Eval(n, handle)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// evalList dispatches a List node per spec.md §4.5: a singleton list
// whose element is a symbol bound to a Function or native is a call with
// no arguments, and any other singleton evaluates its single element
// directly; a symbol head is dispatched to a special form or to
// application; any other head shape is a syntax error.
func (e *Evaluator) evalList(node ast.Node, handle int) (value.Value, *verror.Error) {
	elems := node.Elems
	if len(elems) == 0 {
		return value.Nil, nil
	}
	if len(elems) == 1 {
		if elems[0].Kind == ast.Symbol {
			if bound, ok := e.Arena.Lookup(handle, elems[0].Text); ok &&
				(bound.Type == value.TypeNative || bound.Type == value.TypeFunction) {
				return e.apply(elems[0].Text, nil, handle, node)
			}
		}
		return e.Eval(elems[0], handle)
	}

	head := elems[0]
	if head.Kind != ast.Symbol {
		return value.Nil, verror.Syntax(verror.ErrIDBadShape,
			[3]string{"list", "head of a compound form must be a symbol", ""}).
			SetNear(renderNear(node))
	}

	name := head.Text
	if form, ok := specialForms[name]; ok {
		v, err := form(e, elems[1:], handle)
		if err != nil {
			return value.Nil, err
		}
		return v, nil
	}
	return e.apply(name, elems[1:], handle, node)
}

// apply implements the application cases of spec.md §4.5: native call,
// user function call, struct construction, or undefined-symbol failure.
func (e *Evaluator) apply(name string, argNodes []ast.Node, handle int, node ast.Node) (value.Value, *verror.Error) {
	if bound, ok := e.Arena.Lookup(handle, name); ok {
		switch bound.Type {
		case value.TypeNative:
			args, err := e.evalArgs(argNodes, handle)
			if err != nil {
				return value.Nil, err
			}
			return e.callNative(bound.Nat, args, handle, node)
		case value.TypeFunction:
			args, err := e.evalArgs(argNodes, handle)
			if err != nil {
				return value.Nil, err
			}
			return e.callFunction(bound.Fn, args)
		default:
			return value.Nil, verror.Type(verror.ErrIDTypeMismatch,
				[3]string{name, "Function", bound.Type.String()}).SetNear(renderNear(node))
		}
	}

	if fields, ok := e.Arena.FindStruct(handle, name); ok {
		return e.constructStruct(name, fields, argNodes, handle, node)
	}

	where := make([]string, len(e.callStack))
	for i, frameName := range e.callStack {
		where[len(where)-1-i] = frameName
	}
	return value.Nil, verror.Name(verror.ErrIDUndefinedSymbol, [3]string{name, "", ""}).
		SetNear(renderNear(node)).SetWhere(where)
}

func (e *Evaluator) callNative(n *value.Native, args []value.Value, handle int, node ast.Node) (value.Value, *verror.Error) {
	var v value.Value
	var err error
	if n.WithEnv {
		v, err = n.WithEnvF(args, handle, e)
	} else {
		v, err = n.Pure(args)
	}
	if err == nil {
		return v, nil
	}
	if verr, ok := err.(*verror.Error); ok {
		if verr.Near == "" {
			verr.SetNear(renderNear(node))
		}
		return value.Nil, verr
	}
	return value.Nil, verror.Internal(verror.ErrIDAssertionFailed, [3]string{err.Error(), "", ""})
}

// callFunction evaluates a user Function's body in a fresh frame
// parented to its captured definition frame (spec.md §4.5 rule 2):
// extra parameters are left unbound in the call frame (a use reads as Nil
// unless the captured chain binds the same name), extra arguments are
// dropped.
func (e *Evaluator) callFunction(fn *value.Function, args []value.Value) (value.Value, *verror.Error) {
	child := e.Arena.Child(fn.FrameHandle)
	for i, p := range fn.Params {
		if i < len(args) {
			e.Arena.ForceDeclare(child, p, args[i])
		}
	}

	name := fn.Name
	if name == "" {
		name = "(anonymous)"
	}
	e.callStack = append(e.callStack, name)
	v, err := e.Eval(fn.Body, child)
	e.callStack = e.callStack[:len(e.callStack)-1]
	return v, err
}

func (e *Evaluator) constructStruct(className string, fields []string, argNodes []ast.Node, handle int, node ast.Node) (value.Value, *verror.Error) {
	if len(argNodes) != 2 || argNodes[0].Kind != ast.Symbol || argNodes[1].Kind != ast.List {
		return value.Nil, verror.Syntax(verror.ErrIDBadShape,
			[3]string{className, "expected (Name instance (v1 ... vK))", ""}).SetNear(renderNear(node))
	}
	instanceName := argNodes[0].Text
	vals, err := e.evalArgs(argNodes[1].Elems, handle)
	if err != nil {
		return value.Nil, err
	}
	obj := value.NewObject(className, fields, vals)
	objVal := value.ObjectVal(obj)
	if !e.Arena.Declare(handle, instanceName, objVal) {
		return value.Nil, verror.Name(verror.ErrIDVarCollision, [3]string{instanceName, "", ""}).SetNear(renderNear(node))
	}
	return value.Nil, nil
}

// renderNear produces a short textual rendering of a node for error
// "Near" context.
func renderNear(node ast.Node) string {
	switch node.Kind {
	case ast.Number:
		return fmt.Sprintf("%v", node.Num)
	case ast.String:
		return fmt.Sprintf("%q", node.Text)
	case ast.Symbol:
		return node.Text
	case ast.List:
		return renderForm("(", ")", node.Elems)
	case ast.Array:
		return renderForm("[", "]", node.Elems)
	default:
		return "?"
	}
}

func renderForm(open, close string, elems []ast.Node) string {
	s := open
	for i, e := range elems {
		if i > 0 {
			s += " "
		}
		s += renderNear(e)
	}
	return s + close
}
