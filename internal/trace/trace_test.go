package trace

import "testing"

func TestNoopSessionDoesNotPanic(t *testing.T) {
	s := Noop()
	s.Emit(0, "(print 1)", 0)
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNilSessionDoesNotPanic(t *testing.T) {
	var s *Session
	s.Emit(1, "(+ 1 2)", 0)
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
