package env

import (
	"testing"

	"github.com/arourke/twig/internal/value"
)

func TestDeclareAndLookup(t *testing.T) {
	a, root := NewArena()
	if !a.Declare(root, "x", value.NumVal(5)) {
		t.Fatalf("declare should succeed")
	}
	v, ok := a.Lookup(root, "x")
	if !ok || v.Num != 5 {
		t.Fatalf("got %+v, %v", v, ok)
	}
}

func TestDeclareCollisionInSameFrameFails(t *testing.T) {
	a, root := NewArena()
	a.Declare(root, "x", value.NumVal(1))
	if a.Declare(root, "x", value.NumVal(2)) {
		t.Fatalf("redeclaring in the same frame must fail")
	}
}

func TestChildFrameShadowsParent(t *testing.T) {
	a, root := NewArena()
	a.Declare(root, "x", value.NumVal(1))
	child := a.Child(root)
	a.Declare(child, "x", value.NumVal(2))

	if v, _ := a.Lookup(child, "x"); v.Num != 2 {
		t.Fatalf("child lookup should see shadowed value, got %+v", v)
	}
	if v, _ := a.Lookup(root, "x"); v.Num != 1 {
		t.Fatalf("parent binding must be unaffected, got %+v", v)
	}
}

func TestAssignWalksToFirstHit(t *testing.T) {
	a, root := NewArena()
	a.Declare(root, "x", value.NumVal(1))
	child := a.Child(root)

	if !a.Assign(child, "x", value.NumVal(9)) {
		t.Fatalf("assign should find binding in parent")
	}
	if v, _ := a.Lookup(root, "x"); v.Num != 9 {
		t.Fatalf("assign should have updated the parent frame, got %+v", v)
	}
}

func TestAssignFailsWhenUndeclared(t *testing.T) {
	a, root := NewArena()
	if a.Assign(root, "missing", value.NumVal(1)) {
		t.Fatalf("assign to an undeclared name must fail")
	}
}

func TestStructDeclarationVisibleToChildren(t *testing.T) {
	a, root := NewArena()
	a.DeclareStruct(root, "Point", []string{"x", "y"})
	child := a.Child(root)
	fields, ok := a.FindStruct(child, "Point")
	if !ok || len(fields) != 2 {
		t.Fatalf("got %+v, %v", fields, ok)
	}
}

func TestClosureCaptureAfterLetReturns(t *testing.T) {
	// Regression for spec.md §8 property 6: a function defined inside a
	// let must still see the let-bound variable after the let body has
	// finished evaluating, because the function captures the let's
	// child frame handle rather than a value snapshot.
	a, root := NewArena()
	letFrame := a.Child(root)
	a.Declare(letFrame, "x", value.NumVal(42))
	capturedHandle := letFrame // what a Function's FrameHandle would hold

	if v, ok := a.Lookup(capturedHandle, "x"); !ok || v.Num != 42 {
		t.Fatalf("captured frame should still resolve x, got %+v", v)
	}
}
