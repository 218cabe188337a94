package eval

import (
	"math"
	"strings"

	"github.com/arourke/twig/internal/ast"
	"github.com/arourke/twig/internal/value"
	"github.com/arourke/twig/internal/verror"
)

// specialFormFunc implements one special form. args is the form's tail
// (everything after the head symbol); handle is the frame the form was
// invoked in.
type specialFormFunc func(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error)

// specialForms is twig's special-form vocabulary, dispatched through
// small per-form functions rather than one large switch. It is filled in
// init because the form functions reach evalList, which reads the table.
var specialForms map[string]specialFormFunc

func init() {
	specialForms = map[string]specialFormFunc{
		"do":     evalDo,
		"if":     evalIf,
		"var":    evalVar,
		"set":    evalSet,
		"let":    evalLet,
		"for":    evalFor,
		"while":  evalWhile,
		"fn":     evalFn,
		"struct": evalStruct,
	}
}

func badShape(form, detail string) *verror.Error {
	return verror.Syntax(verror.ErrIDBadShape, [3]string{form, detail, ""})
}

func evalDo(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	return e.EvalSeq(args, handle)
}

func evalIf(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	if len(args) != 3 {
		return value.Nil, badShape("if", "expected (if cond then else)")
	}
	cond, err := e.Eval(args[0], handle)
	if err != nil {
		return value.Nil, err
	}
	if cond.Type != value.TypeBool {
		// Deliberately not an error (spec.md §4.5/§7): a non-Bool
		// discriminant yields Nil and neither branch is evaluated.
		return value.Nil, nil
	}
	if cond.AsBool() {
		return e.Eval(args[1], handle)
	}
	return e.Eval(args[2], handle)
}

func evalVar(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	if len(args) != 2 || args[0].Kind != ast.Symbol {
		return value.Nil, badShape("var", "expected (var name expr)")
	}
	name := args[0].Text
	val, err := e.Eval(args[1], handle)
	if err != nil {
		return value.Nil, err
	}
	if !e.Arena.Declare(handle, name, val) {
		return value.Nil, verror.Name(verror.ErrIDVarCollision, [3]string{name, "", ""})
	}
	return value.Nil, nil
}

// evalSet implements both set shapes of spec.md §4.5: `(set name expr)`
// reassigns a plain binding; `(set objVar "field" expr)` replaces one
// field of the Object bound to objVar and reassigns that back.
func evalSet(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	switch len(args) {
	case 2:
		if args[0].Kind != ast.Symbol {
			return value.Nil, badShape("set", "expected (set name expr)")
		}
		name := args[0].Text
		val, err := e.Eval(args[1], handle)
		if err != nil {
			return value.Nil, err
		}
		if !e.Arena.Assign(handle, name, val) {
			return value.Nil, verror.Name(verror.ErrIDSetUndeclared, [3]string{name, "", ""})
		}
		return value.Nil, nil
	case 3:
		if args[0].Kind != ast.Symbol {
			return value.Nil, badShape("set", `expected (set objVar "field" expr)`)
		}
		objVar := args[0].Text
		fieldVal, err := e.Eval(args[1], handle)
		if err != nil {
			return value.Nil, err
		}
		if fieldVal.Type != value.TypeString {
			return value.Nil, verror.Type(verror.ErrIDTypeMismatch, [3]string{"set", "String", fieldVal.Type.String()})
		}
		newVal, err := e.Eval(args[2], handle)
		if err != nil {
			return value.Nil, err
		}
		current, ok := e.Arena.Lookup(handle, objVar)
		if !ok {
			return value.Nil, verror.Name(verror.ErrIDSetUndeclared, [3]string{objVar, "", ""})
		}
		if current.Type != value.TypeObject {
			return value.Nil, verror.Type(verror.ErrIDTypeMismatch, [3]string{"set", "Object", current.Type.String()})
		}
		updated := current.Obj.WithField(fieldVal.Str, newVal)
		e.Arena.Assign(handle, objVar, value.ObjectVal(updated))
		return value.Nil, nil
	default:
		return value.Nil, badShape("set", "expected 2 or 3 arguments")
	}
}

func evalLet(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	if len(args) < 1 || args[0].Kind != ast.List {
		return value.Nil, badShape("let", "expected (let ((n1 v1) ...) body...)")
	}
	child := e.Arena.Child(handle)
	for _, pair := range args[0].Elems {
		if pair.Kind != ast.List || len(pair.Elems) != 2 || pair.Elems[0].Kind != ast.Symbol {
			return value.Nil, badShape("let", "each binding must be a 2-element (name expr) list")
		}
		name := pair.Elems[0].Text
		val, err := e.Eval(pair.Elems[1], handle) // evaluated in parent frame
		if err != nil {
			return value.Nil, err
		}
		e.Arena.ForceDeclare(child, name, val)
	}
	return e.EvalSeq(args[1:], child)
}

// evalFor implements spec.md §4.5's parallel zip loop: one shared child
// frame across all iterations, re-declaring each loop variable on the
// first pass and reassigning it thereafter.
func evalFor(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	if len(args) != 3 || args[0].Kind != ast.List || args[1].Kind != ast.List {
		return value.Nil, badShape("for", "expected (for (n1 ... nP) (r1 ... rP) body)")
	}
	names := args[0].Elems
	ranges := args[1].Elems
	if len(names) != len(ranges) {
		return value.Nil, badShape("for", "name count must match range count")
	}
	for _, n := range names {
		if n.Kind != ast.Symbol {
			return value.Nil, badShape("for", "loop variables must be symbols")
		}
	}

	arrays := make([][]value.Value, len(ranges))
	minLen := -1
	for i, r := range ranges {
		v, err := e.Eval(r, handle)
		if err != nil {
			return value.Nil, err
		}
		if v.Type != value.TypeArray {
			return value.Nil, verror.Type(verror.ErrIDTypeMismatch, [3]string{"for", "Array", v.Type.String()})
		}
		arrays[i] = v.Arr
		if minLen == -1 || len(v.Arr) < minLen {
			minLen = len(v.Arr)
		}
	}
	if minLen < 0 {
		minLen = 0
	}

	child := e.Arena.Child(handle)
	body := args[2]
	for i := 0; i < minLen; i++ {
		for k, n := range names {
			val := arrays[k][i]
			if !e.Arena.Declare(child, n.Text, val) {
				e.Arena.Assign(child, n.Text, val)
			}
		}
		if _, err := e.Eval(body, child); err != nil {
			return value.Nil, err
		}
	}
	return value.Nil, nil
}

func evalWhile(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	if len(args) != 2 {
		return value.Nil, badShape("while", "expected (while cond body)")
	}
	result := value.Nil
	for {
		cond, err := e.Eval(args[0], handle)
		if err != nil {
			return value.Nil, err
		}
		if cond.Type != value.TypeBool {
			return value.Nil, verror.Type(verror.ErrIDNonBoolCondition, [3]string{"while", "", ""})
		}
		if !cond.AsBool() {
			return result, nil
		}
		child := e.Arena.Child(handle)
		result, err = e.Eval(args[1], child)
		if err != nil {
			return value.Nil, err
		}
	}
}

// evalFn implements `(fn name (p1 ... pK) decl... body)` (spec.md §4.5):
// the trailing form is the body, every declaration before it must have a
// `:`-prefixed head naming an annotation, and each :test annotation runs
// immediately, in a child of the definition frame, before the form returns.
func evalFn(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	if len(args) < 3 || args[0].Kind != ast.Symbol || args[1].Kind != ast.List {
		return value.Nil, badShape("fn", "expected (fn name (p1 ... pK) decl... body)")
	}
	name := args[0].Text
	params := make([]string, 0, len(args[1].Elems))
	for _, p := range args[1].Elems {
		if p.Kind != ast.Symbol {
			return value.Nil, badShape("fn", "parameters must be symbols")
		}
		params = append(params, p.Text)
	}

	declNodes := args[2 : len(args)-1]
	body := args[len(args)-1]

	annotations := make([]value.Annotation, 0, len(declNodes))
	for _, decl := range declNodes {
		if decl.Kind != ast.List || len(decl.Elems) == 0 || decl.Elems[0].Kind != ast.Symbol ||
			!strings.HasPrefix(decl.Elems[0].Text, ":") {
			return value.Nil, badShape("fn", "declarations before the body must be :-prefixed annotations")
		}
		head := decl.Elems[0].Text
		switch head {
		case ":require":
			if len(decl.Elems) != 2 {
				return value.Nil, badShape("fn", "expected (:require expr)")
			}
			annotations = append(annotations, value.Annotation{Kind: value.AnnotationRequire, Require: decl.Elems[1]})
		case ":test":
			if len(decl.Elems) != 3 || decl.Elems[1].Kind != ast.List {
				return value.Nil, badShape("fn", "expected (:test (a1 ... aK) expected)")
			}
			annotations = append(annotations, value.Annotation{
				Kind:     value.AnnotationTest,
				TestArgs: decl.Elems[1].Elems,
				Expected: decl.Elems[2],
			})
		default:
			return value.Nil, verror.Name(verror.ErrIDUnknownAnnot, [3]string{head, "", ""})
		}
	}

	fn := &value.Function{Name: name, Params: params, Body: body, FrameHandle: handle, Annotations: annotations}
	e.Arena.ForceDeclare(handle, name, value.FuncVal(fn))

	for _, ann := range annotations {
		if ann.Kind != value.AnnotationTest {
			continue
		}
		if err := e.runTestAnnotation(fn, ann, handle); err != nil {
			return value.Nil, err
		}
	}

	return value.Nil, nil
}

// runTestAnnotation evaluates one :test annotation at fn-definition time
// (spec.md §4.5, §8 property 7): the argument literals are evaluated in
// the definition frame, then bound by position in a fresh child of it;
// the body and the expected value are both evaluated in that same child
// frame, and the two results are compared.
func (e *Evaluator) runTestAnnotation(fn *value.Function, ann value.Annotation, definitionHandle int) *verror.Error {
	testFrame := e.Arena.Child(definitionHandle)
	for i, p := range fn.Params {
		var argVal value.Value
		if i < len(ann.TestArgs) {
			v, err := e.Eval(ann.TestArgs[i], definitionHandle)
			if err != nil {
				return err
			}
			argVal = v
		}
		e.Arena.ForceDeclare(testFrame, p, argVal)
	}

	actual, err := e.Eval(fn.Body, testFrame)
	if err != nil {
		return err
	}
	expected, err := e.Eval(ann.Expected, testFrame)
	if err != nil {
		return err
	}

	if !testValuesMatch(actual, expected) {
		return verror.Test(verror.ErrIDTestFailed, [3]string{fn.Name, expected.String(), actual.String()})
	}
	return nil
}

// testValuesMatch implements the :test comparison rule of spec.md §4.5:
// Number match tolerates |a-b| < 0.1; Bool and String require equality;
// any other pairing, including mismatched tags, does not match.
func testValuesMatch(actual, expected value.Value) bool {
	if actual.Type != expected.Type {
		return false
	}
	switch actual.Type {
	case value.TypeNumber:
		return math.Abs(actual.Num-expected.Num) < 0.1
	case value.TypeBool, value.TypeString:
		return actual.Equals(expected)
	default:
		return false
	}
}

func evalStruct(e *Evaluator, args []ast.Node, handle int) (value.Value, *verror.Error) {
	if len(args) != 2 || args[0].Kind != ast.Symbol || args[1].Kind != ast.List {
		return value.Nil, badShape("struct", "expected (struct Name (f1 ... fK))")
	}
	fields := make([]string, 0, len(args[1].Elems))
	for _, f := range args[1].Elems {
		if f.Kind != ast.Symbol {
			return value.Nil, badShape("struct", "field names must be symbols")
		}
		fields = append(fields, f.Text)
	}
	e.Arena.DeclareStruct(handle, args[0].Text, fields)
	return value.Nil, nil
}
