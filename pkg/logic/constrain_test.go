package logic

import "testing"

func TestConstrainNoMatchYieldsEmpty(t *testing.T) {
	con := NewConstrain(NewApply(NewSym("likes"), NewRef("X")), NewRef("X"))

	s := NewFrame(nil)
	w := NewWorld()
	results := con.Eval(s, w)

	if results.Len() != 0 {
		t.Fatalf("expected no matches against an empty world, got %v", results.Slice())
	}
}

func TestConstrainBindsAndRunsBody(t *testing.T) {
	w := NewWorld()
	w.Add(NewApply(NewSym("likes"), NewSym("pizza")))
	w.Add(NewApply(NewSym("likes"), NewSym("tacos")))

	con := NewConstrain(NewApply(NewSym("likes"), NewRef("X")), NewRef("X"))
	s := NewFrame(nil)
	results := con.Eval(s, w)

	if results.Len() != 2 || !results.Has(NewSym("pizza")) || !results.Has(NewSym("tacos")) {
		t.Fatalf("expected X to be bound to both foods, got %v", results.Slice())
	}
}

func TestConstrainWithoutRefsRunsBodyOnMatch(t *testing.T) {
	// The constraint mentions no references, so nothing is seeded or
	// bound; a single matching fact is enough for the body to run.
	w := NewWorld()
	w.Add(NewSym("fact"))

	con := NewConstrain(NewSym("fact"), NewSym("ok"))
	s := NewFrame(nil)
	results := con.Eval(s, w)

	if results.Len() != 1 || !results.Has(NewSym("ok")) {
		t.Fatalf("expected body to run once the constraint matched, got %v", results.Slice())
	}
}
