package native_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arourke/twig/internal/eval"
	"github.com/arourke/twig/internal/native"
	"github.com/arourke/twig/internal/parser"
)

func evalSrc(t *testing.T, src string, stdin string) (string, error) {
	t.Helper()
	forms, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("parse: %v", perr)
	}
	var out bytes.Buffer
	e := eval.New(&out, strings.NewReader(stdin))
	native.Register(e)
	_, err := e.EvalProgram(forms)
	if err != nil {
		return out.String(), err
	}
	return out.String(), nil
}

func TestArithmeticNatives(t *testing.T) {
	out, err := evalSrc(t, `(print (+ 1 2)) (print (- 5 3)) (print (* 2 3)) (print (/ 10 4)) (print (^ 2 3))`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "3\n2\n6\n2.5\n8\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestDivisionByZeroYieldsInfinity(t *testing.T) {
	out, err := evalSrc(t, `(print (/ 1 0))`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "+Inf\n" {
		t.Fatalf("got %q", out)
	}
}

func TestComparisonAndLogic(t *testing.T) {
	out, err := evalSrc(t, `(print (> 3 2)) (print (== 1 1)) (print (!= "a" "b")) (print (&& true false)) (print (not false))`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "true\ntrue\ntrue\nfalse\ntrue\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestEqualityOnMismatchedTagsIsFatal(t *testing.T) {
	_, err := evalSrc(t, `(== 1 "1")`, "")
	if err == nil {
		t.Fatalf("expected a type error comparing mismatched tags")
	}
}

func TestGetLenConcatRangeParse(t *testing.T) {
	out, err := evalSrc(t, `
		(print (get [10 20 30] 1))
		(print (len [10 20 30]))
		(print (len "hello"))
		(print (concat "a=" 1 " b=" 2))
		(print (range 0 3))
		(print (parse "3.5"))
		(print (parse "nope"))`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "20\n3\n5\na=1 b=2\n[0 1 2]\n3.5\nnil\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestGetOutOfRangeReturnsNil(t *testing.T) {
	out, err := evalSrc(t, `(print (get [1 2] 9))`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "nil\n" {
		t.Fatalf("got %q", out)
	}
}

func TestTypeofNamesEveryTag(t *testing.T) {
	out, err := evalSrc(t, `
		(print (typeof 1))
		(print (typeof "s"))
		(print (typeof [1]))
		(print (typeof true))`, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Number\nString\nArray\nBool\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestReadReturnsOneLineWithoutTrailingNewline(t *testing.T) {
	out, err := evalSrc(t, `(print (read))`, "hello world\nsecond line\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello world\n" {
		t.Fatalf("got %q", out)
	}
}

func TestArityErrorOnWrongArgCount(t *testing.T) {
	_, err := evalSrc(t, `(+ 1)`, "")
	if err == nil {
		t.Fatalf("expected arity error")
	}
}
