package parser

import (
	"testing"

	"github.com/arourke/twig/internal/ast"
)

func TestParseAtoms(t *testing.T) {
	nodes, err := Parse(`5 "hi" foo`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3: %+v", len(nodes), nodes)
	}
	if nodes[0].Kind != ast.Number || nodes[0].Num != 5 {
		t.Fatalf("node 0: %+v", nodes[0])
	}
	if nodes[1].Kind != ast.String || nodes[1].Text != "hi" {
		t.Fatalf("node 1: %+v", nodes[1])
	}
	if nodes[2].Kind != ast.Symbol || nodes[2].Text != "foo" {
		t.Fatalf("node 2: %+v", nodes[2])
	}
}

func TestParseNestedList(t *testing.T) {
	nodes, err := Parse(`(fn fact (n) (if (== n 1) 1 (* n (fact (- n 1)))))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Kind != ast.List {
		t.Fatalf("expected single list, got %+v", nodes)
	}
	top := nodes[0].Elems
	if len(top) != 4 {
		t.Fatalf("expected 4 elements in fn form, got %d: %+v", len(top), top)
	}
}

func TestParseArrayLiteral(t *testing.T) {
	nodes, err := Parse(`[1 2 3]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Kind != ast.Array || len(nodes[0].Elems) != 3 {
		t.Fatalf("got %+v", nodes)
	}
}

func TestUnmatchedClosingBracketTerminatesNestingSilently(t *testing.T) {
	// Per spec.md §9: an unmatched ')' stops the current level rather
	// than raising a syntax error.
	nodes, err := Parse(`(print 1))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 || nodes[0].Kind != ast.List {
		t.Fatalf("got %+v", nodes)
	}
}

func TestSiblingOrderPreserved(t *testing.T) {
	nodes, err := Parse(`(do 1 2 3)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	elems := nodes[0].Elems
	for i, want := range []float64{1, 2, 3} {
		if elems[i+1].Num != want {
			t.Fatalf("element %d: got %v want %v", i, elems[i+1].Num, want)
		}
	}
}
