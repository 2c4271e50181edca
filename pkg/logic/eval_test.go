package logic

import "testing"

// TestEvalEndToEndIdentityApplication exercises a lambda applied
// directly via the top-level Eval entry point.
func TestEvalEndToEndIdentityApplication(t *testing.T) {
	term := NewApply(NewLambda("x", NewRef("x")), NewSym("a"))
	results := Eval(term, NewFrame(nil), NewWorld())

	if results.Len() != 1 || !results.Has(NewSym("a")) {
		t.Fatalf("expected a, got %v", results.Slice())
	}
}

// TestEvalEndToEndDeclareThenConstrain mirrors declaring a fact and
// immediately querying it back out within the same expression.
func TestEvalEndToEndDeclareThenConstrain(t *testing.T) {
	fact := NewApply(NewSym("parent"), NewSym("alice"))
	body := NewConstrain(NewApply(NewSym("parent"), NewRef("Who")), NewRef("Who"))
	term := NewDeclare(fact, body)

	results := Eval(term, NewFrame(nil), NewWorld())
	if results.Len() != 1 || !results.Has(NewSym("alice")) {
		t.Fatalf("expected alice, got %v", results.Slice())
	}
}

// TestEvalEndToEndArbitraryUnderLambda confirms that every evaluation
// of Arbitrary through a lambda body mints a fresh instance rather
// than reusing one shared across applications.
func TestEvalEndToEndArbitraryUnderLambda(t *testing.T) {
	lambda := NewLambda("x", NewRef("x"))
	term := NewApply(lambda, Arbitrary)

	r1 := Eval(term, NewFrame(nil), NewWorld()).Slice()
	r2 := Eval(term, NewFrame(nil), NewWorld()).Slice()

	if len(r1) != 1 || len(r2) != 1 {
		t.Fatalf("expected one result each, got %v and %v", r1, r2)
	}
	if r1[0].Equal(r2[0]) {
		t.Fatalf("expected distinct arbitrary instances across separate evaluations, got %v and %v", r1[0], r2[0])
	}
}

// TestEvalEndToEndNestedWorldLayering checks that a nested Declare
// sees both its own and the enclosing Declare's facts.
func TestEvalEndToEndNestedWorldLayering(t *testing.T) {
	inner := NewDeclare(
		NewApply(NewSym("color"), NewSym("green")),
		NewConstrain(NewApply(NewSym("color"), NewRef("C")), NewRef("C")),
	)
	outer := NewDeclare(NewApply(NewSym("color"), NewSym("red")), inner)

	results := Eval(outer, NewFrame(nil), NewWorld())
	if results.Len() != 2 || !results.Has(NewSym("red")) || !results.Has(NewSym("green")) {
		t.Fatalf("expected both red and green visible, got %v", results.Slice())
	}
}

// TestEvalEndToEndShadowedLambdaArg ensures a lambda's own argument
// name is not resolved against an outer binding of the same name.
func TestEvalEndToEndShadowedLambdaArg(t *testing.T) {
	outerScope := NewFrame(nil)
	outerScope.Add("x", SingletonValSet(NewSym("outer")))

	lambda := NewLambda("x", NewRef("x"))
	results := Eval(NewApply(lambda, NewSym("inner")), outerScope, NewWorld())

	if results.Len() != 1 || !results.Has(NewSym("inner")) {
		t.Fatalf("expected the lambda's own argument to win over the outer binding, got %v", results.Slice())
	}
}
