package logic

// Declare adds the evaluated form of With into a fresh fact world for
// Body's evaluation: `{with} body`.
type Declare struct {
	With Term
	Body Term
}

// NewDeclare constructs a Declare of with for body.
func NewDeclare(with, body Term) *Declare {
	return &Declare{With: with, Body: body}
}

func (d *Declare) Repr() string {
	return "{" + d.With.Repr() + "} " + d.Body.Repr()
}

func (d *Declare) ReprClosed() string {
	return "(" + d.Repr() + ")"
}

func (d *Declare) String() string { return d.Repr() }

func (d *Declare) Subst(s Scope) ValSet {
	withs := d.With.Subst(s)
	bodies := d.Body.Subst(s)
	return withs.Map(func(w Term) ValSet {
		return bodies.Map(func(b Term) ValSet {
			return SingletonValSet(NewDeclare(w, b))
		})
	})
}

// Eval evaluates With, adds each result as a fact in a child world,
// and evaluates Body against that child world.
func (d *Declare) Eval(s Scope, w *World) ValSet {
	withs := d.With.Eval(s, w)
	child := w.NewChild()
	withs.Each(func(fact Term) { child.Add(fact) })
	return d.Body.Eval(s, child)
}

func (d *Declare) Match(other Term, s Scope) bool {
	o, ok := other.(*Declare)
	if !ok {
		return false
	}
	return d.With.Match(o.With, s) && d.Body.Match(o.Body, s)
}

func (d *Declare) Equal(other Term) bool {
	o, ok := other.(*Declare)
	return ok && d.With.Equal(o.With) && d.Body.Equal(o.Body)
}

func (d *Declare) Hash() uint64 {
	return 2958125 ^ d.With.Hash() ^ d.Body.Hash()
}

func (d *Declare) CollectRefIds(ids map[SymID]struct{}) {
	d.With.CollectRefIds(ids)
	d.Body.CollectRefIds(ids)
}

func (d *Declare) Flatten() []Term { return flattenSelf(d) }
