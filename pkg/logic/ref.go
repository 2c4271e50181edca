package logic

// Ref is a named reference (variable). Under Subst/Eval it resolves
// through the scope; under Match it binds the first time it is seen
// and thereafter requires equality with that binding.
type Ref struct {
	RefID SymID
}

// NewRef constructs a reference named refID.
func NewRef(refID SymID) *Ref {
	return &Ref{RefID: refID}
}

func (r *Ref) Repr() string       { return string(r.RefID) }
func (r *Ref) ReprClosed() string { return r.Repr() }
func (r *Ref) String() string     { return r.Repr() }

// Subst resolves r through s. If the resolved set still contains the
// bare Wildcard singleton, that wildcard is replaced with a fresh
// WildcardTrace tagged with r's id, so that later occurrences of the
// same reference see a consistent capture rather than a second,
// independent wildcard.
func (r *Ref) Subst(s Scope) ValSet {
	vs, ok := s.Get(r.RefID)
	if !ok {
		return SingletonValSet(r)
	}
	if vs.Has(Wildcard) {
		return replaceWildcard(vs, NewWildcardTrace(r.RefID))
	}
	return vs
}

func (r *Ref) Eval(s Scope, _ *World) ValSet {
	return r.Subst(s)
}

func (r *Ref) Match(other Term, s Scope) bool {
	if vs, ok := s.Get(r.RefID); ok {
		return vs.Has(other)
	}
	s.Add(r.RefID, SingletonValSet(other))
	return true
}

func (r *Ref) Equal(other Term) bool {
	o, ok := other.(*Ref)
	return ok && o.RefID == r.RefID
}

func (r *Ref) Hash() uint64 {
	return 128582195 ^ hashString(r.RefID)
}

func (r *Ref) CollectRefIds(ids map[SymID]struct{}) {
	ids[r.RefID] = struct{}{}
}

func (r *Ref) Flatten() []Term { return flattenSelf(r) }
