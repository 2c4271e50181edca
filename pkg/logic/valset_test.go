package logic

import "testing"

func TestValSetDeduplicates(t *testing.T) {
	vs := NewValSet()
	vs.Add(NewSym("a"))
	vs.Add(NewSym("a"))
	vs.Add(NewSym("b"))

	if vs.Len() != 2 {
		t.Fatalf("expected 2 distinct elements, got %d: %v", vs.Len(), vs.Slice())
	}
}

func TestValSetUnion(t *testing.T) {
	a := SingletonValSet(NewSym("x"))
	b := SingletonValSet(NewSym("y"))
	a.Union(b)

	if a.Len() != 2 || !a.Has(NewSym("x")) || !a.Has(NewSym("y")) {
		t.Fatalf("unexpected union result: %v", a.Slice())
	}
}

func TestValSetMapCartesianProduct(t *testing.T) {
	preds := NewValSet()
	preds.Add(NewSym("f"))
	preds.Add(NewSym("g"))

	args := NewValSet()
	args.Add(NewSym("a"))
	args.Add(NewSym("b"))

	out := preds.Map(func(p Term) ValSet {
		return args.Map(func(a Term) ValSet {
			return SingletonValSet(NewApply(p, a))
		})
	})

	if out.Len() != 4 {
		t.Fatalf("expected 4 combinations, got %d: %v", out.Len(), out.Slice())
	}
}

func TestValSetSharedMapMutation(t *testing.T) {
	// A ValSet value returned from Scope.Get shares its backing map
	// with the frame it came from, so a term added in place through one
	// handle is reported by Has through the other.
	s := NewFrame(nil)
	s.Add("X", NewValSet())

	vs, _ := s.Get("X")
	vs.Add(NewSym("a"))

	again, _ := s.Get("X")
	if !again.Has(NewSym("a")) {
		t.Fatal("expected mutation through one ValSet handle to be visible through another sharing the same frame entry")
	}
}
