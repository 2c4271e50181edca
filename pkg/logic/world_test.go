package logic

import "testing"

func TestValTreeExactMatch(t *testing.T) {
	tree := NewValTree()
	tree.Add(NewSym("a"))
	tree.Add(NewSym("b"))

	matches := tree.GetMatches(NewSym("a"))
	if len(matches) != 1 || !matches[0].Fact.Equal(NewSym("a")) {
		t.Fatalf("expected exactly one match on a, got %v", matches)
	}
}

func TestValTreeQuerySideRefDoesNotBind(t *testing.T) {
	tree := NewValTree()
	tree.Add(NewApply(NewSym("likes"), NewSym("pizza")))
	tree.Add(NewApply(NewSym("likes"), NewSym("tacos")))

	matches := tree.GetMatches(NewApply(NewRef("Food"), NewSym("pizza")))
	if len(matches) != 0 {
		t.Fatalf("query-side refs don't bind; expected the stored fact's Match to run, got %v", matches)
	}

	matches = tree.GetMatches(NewApply(NewSym("likes"), NewSym("pizza")))
	if len(matches) != 1 {
		t.Fatalf("expected exactly one exact match, got %v", matches)
	}
}

func TestWorldLayersOuterFirst(t *testing.T) {
	outer := NewWorld()
	outer.Add(NewRef("A"))

	inner := outer.NewChild()
	inner.Add(NewRef("B"))

	matches := inner.GetMatches(NewSym("x"))
	if len(matches) != 2 {
		t.Fatalf("expected matches from both layers, got %v", matches)
	}
	if !matches[0].Fact.Equal(NewRef("A")) {
		t.Fatalf("expected the outer frame's fact first, got %v", matches[0].Fact)
	}
	if !matches[1].Fact.Equal(NewRef("B")) {
		t.Fatalf("expected the inner frame's fact last, got %v", matches[1].Fact)
	}
}

func TestChildWorldDoesNotLeakIntoParent(t *testing.T) {
	outer := NewWorld()
	inner := outer.NewChild()
	inner.Add(NewSym("a"))

	if len(outer.GetMatches(NewSym("a"))) != 0 {
		t.Fatal("expected adding to a child world not to affect its parent")
	}
}
