package verror

import "testing"

func TestErrorFormatsMessage(t *testing.T) {
	err := Name(ErrIDUndefinedSymbol, [3]string{"foo", "", ""})
	if err.Category != ErrName {
		t.Fatalf("unexpected category: %v", err.Category)
	}
	got := err.Error()
	want := "Name error: undefined symbol: foo"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestErrorIncludesNearAndWhere(t *testing.T) {
	err := Type(ErrIDTypeMismatch, [3]string{"+", "Number", "String"})
	err.SetNear(`(+ 1 "a")`).SetWhere([]string{"add", "fact"})
	got := err.Error()
	if want := "Type error: '+' expected Number, got String"; !contains(got, want) {
		t.Fatalf("missing message: %s", got)
	}
	if !contains(got, "near: (+ 1 \"a\")") {
		t.Fatalf("missing near context: %s", got)
	}
	if !contains(got, "where: add <- fact") {
		t.Fatalf("missing where context: %s", got)
	}
}

func TestToExitCode(t *testing.T) {
	cases := map[Category]int{
		ErrSyntax:   2,
		ErrName:     1,
		ErrType:     1,
		ErrTest:     1,
		ErrInternal: 70,
	}
	for cat, want := range cases {
		if got := ToExitCode(cat); got != want {
			t.Fatalf("ToExitCode(%v) = %d, want %d", cat, got, want)
		}
	}
}

func contains(s, sub string) bool {
	return len(s) >= len(sub) && indexOf(s, sub) >= 0
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
