package logic

import "testing"

func TestDeclareAddsFactForBody(t *testing.T) {
	fact := NewApply(NewSym("likes"), NewSym("pizza"))
	decl := NewDeclare(fact, NewConstrain(NewApply(NewSym("likes"), NewRef("X")), NewRef("X")))

	s := NewFrame(nil)
	w := NewWorld()
	results := decl.Eval(s, w)

	if results.Len() != 1 || !results.Has(NewSym("pizza")) {
		t.Fatalf("expected the declared fact to be visible to the constrained body, got %v", results.Slice())
	}
}

func TestDeclareFactDoesNotLeakOutside(t *testing.T) {
	fact := NewApply(NewSym("likes"), NewSym("pizza"))
	decl := NewDeclare(fact, NewSym("ok"))

	s := NewFrame(nil)
	w := NewWorld()
	decl.Eval(s, w)

	if len(w.GetMatches(fact)) != 0 {
		t.Fatal("expected Declare's fact to stay scoped to its own child world")
	}
}
