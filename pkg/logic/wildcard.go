package logic

// wildcardTerm is the concrete type behind the Wildcard singleton. It
// carries no state: every wildcard in a program is the same value.
type wildcardTerm struct{}

// Wildcard is the process-wide singleton matching anything once.
var Wildcard Term = &wildcardTerm{}

func (w *wildcardTerm) Repr() string       { return "*" }
func (w *wildcardTerm) ReprClosed() string { return "*" }
func (w *wildcardTerm) String() string     { return "*" }

func (w *wildcardTerm) Subst(Scope) ValSet         { return SingletonValSet(w) }
func (w *wildcardTerm) Eval(s Scope, _ *World) ValSet { return w.Subst(s) }

// Match always succeeds: a wildcard in the stored/pattern position
// matches anything.
func (w *wildcardTerm) Match(Term, Scope) bool { return true }

func (w *wildcardTerm) Equal(other Term) bool {
	_, ok := other.(*wildcardTerm)
	return ok
}

func (w *wildcardTerm) Hash() uint64 { return 12952153 }

func (w *wildcardTerm) CollectRefIds(map[SymID]struct{}) {}

func (w *wildcardTerm) Flatten() []Term { return flattenSelf(w) }

// WildcardTrace is a wildcard tagged with a reference id: once it
// captures a value under RefID, later occurrences of the same
// WildcardTrace (or the Ref it was substituted from) must agree with
// that first binding. Its Match behavior is deliberately identical to
// Ref's — this mirrors the reference implementation exactly, whether
// or not that symmetry was intentional there.
type WildcardTrace struct {
	RefID SymID
}

// NewWildcardTrace constructs a wildcard trace for refID.
func NewWildcardTrace(refID SymID) *WildcardTrace {
	return &WildcardTrace{RefID: refID}
}

func (w *WildcardTrace) Repr() string       { return "*" }
func (w *WildcardTrace) ReprClosed() string { return "*" }
func (w *WildcardTrace) String() string     { return w.Repr() }

func (w *WildcardTrace) Subst(s Scope) ValSet {
	if vs, ok := s.Get(w.RefID); ok {
		return vs
	}
	return SingletonValSet(w)
}

func (w *WildcardTrace) Eval(s Scope, _ *World) ValSet {
	return w.Subst(s)
}

func (w *WildcardTrace) Match(other Term, s Scope) bool {
	if vs, ok := s.Get(w.RefID); ok {
		return vs.Has(other)
	}
	s.Add(w.RefID, SingletonValSet(other))
	return true
}

func (w *WildcardTrace) Equal(other Term) bool {
	o, ok := other.(*WildcardTrace)
	return ok && o.RefID == w.RefID
}

func (w *WildcardTrace) Hash() uint64 {
	return 53815931 ^ hashString(w.RefID)
}

func (w *WildcardTrace) CollectRefIds(ids map[SymID]struct{}) {
	ids[w.RefID] = struct{}{}
}

func (w *WildcardTrace) Flatten() []Term { return flattenSelf(w) }
