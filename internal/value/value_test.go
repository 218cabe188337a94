package value

import "testing"

func TestNumberPrinting(t *testing.T) {
	cases := map[float64]string{5: "5", 3.14: "3.14", 125: "125"}
	for n, want := range cases {
		got := NumVal(n).String()
		if got != want {
			t.Fatalf("NumVal(%v).String() = %q, want %q", n, got, want)
		}
	}
}

func TestArrayPrinting(t *testing.T) {
	v := ArrayVal([]Value{NumVal(5), NumVal(25), NumVal(125)})
	if got, want := v.String(), "[5 25 125]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestBoolPrinting(t *testing.T) {
	if BoolVal(true).String() != "true" || BoolVal(false).String() != "false" {
		t.Fatalf("bool printing mismatch")
	}
}

func TestNilPrinting(t *testing.T) {
	if Nil.String() != "nil" {
		t.Fatalf("got %q", Nil.String())
	}
}

func TestEqualsSameTagOnly(t *testing.T) {
	if NumVal(1).Equals(BoolVal(true)) {
		t.Fatalf("mismatched tags should not be equal")
	}
	if !NumVal(1).Equals(NumVal(1)) {
		t.Fatalf("equal numbers should compare equal")
	}
	if !StrVal("a").Equals(StrVal("a")) {
		t.Fatalf("equal strings should compare equal")
	}
}

func TestIsTruthyOnlyBoolTrue(t *testing.T) {
	if Nil.IsTruthy() {
		t.Fatalf("nil must not be truthy")
	}
	if NumVal(0).IsTruthy() {
		t.Fatalf("number must not be truthy via IsTruthy (if handles non-bool separately)")
	}
	if !BoolVal(true).IsTruthy() {
		t.Fatalf("true must be truthy")
	}
}

func TestObjectGetAndWithField(t *testing.T) {
	o := NewObject("Point", []string{"x", "y"}, []Value{NumVal(1), NumVal(2)})
	if v, ok := o.Get("x"); !ok || v.Num != 1 {
		t.Fatalf("got %+v, %v", v, ok)
	}
	moved := o.WithField("x", NumVal(9))
	if v, _ := moved.Get("x"); v.Num != 9 {
		t.Fatalf("expected updated field, got %+v", v)
	}
	if v, _ := o.Get("x"); v.Num != 1 {
		t.Fatalf("original object must be unchanged, got %+v", v)
	}
	unchanged := o.WithField("z", NumVal(9))
	if unchanged != o {
		t.Fatalf("undeclared field assignment must be a silent no-op")
	}
}

func TestObjectString(t *testing.T) {
	o := NewObject("Point", []string{"x", "y"}, []Value{NumVal(1), NumVal(2)})
	want := "Point -> x=1 | y=2 | "
	if got := o.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNewObjectStopsAtShorterLength(t *testing.T) {
	o := NewObject("Pair", []string{"a", "b", "c"}, []Value{NumVal(1)})
	if len(o.Fields) != 1 {
		t.Fatalf("expected 1 field bound, got %d", len(o.Fields))
	}
}
