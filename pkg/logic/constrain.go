package logic

// Constrain evaluates Body only if Constraint matches at least one
// fact somewhere in the current world, binding every reference
// mentioned in Constraint to the union of values it was matched
// against: `[constraint] body`.
type Constrain struct {
	Constraint Term
	Body       Term
}

// NewConstrain constructs a Constrain of constraint for body.
func NewConstrain(constraint, body Term) *Constrain {
	return &Constrain{Constraint: constraint, Body: body}
}

func (c *Constrain) Repr() string {
	return "[" + c.Constraint.Repr() + "] " + c.Body.Repr()
}

func (c *Constrain) ReprClosed() string {
	return "(" + c.Repr() + ")"
}

func (c *Constrain) String() string { return c.Repr() }

func (c *Constrain) Subst(s Scope) ValSet {
	constraints := c.Constraint.Subst(s)
	bodies := c.Body.Subst(s)
	return constraints.Map(func(cc Term) ValSet {
		return bodies.Map(func(b Term) ValSet {
			return SingletonValSet(NewConstrain(cc, b))
		})
	})
}

// Eval evaluates Constraint, matches each candidate against every
// fact visible in w, and — if at least one match occurred — unions
// the matched bindings (restricted to the ref ids Constraint
// mentions) into a child scope before evaluating Body in it.
func (c *Constrain) Eval(s Scope, w *World) ValSet {
	constraints := c.Constraint.Eval(s, w)

	refIDs := map[SymID]struct{}{}
	c.Constraint.CollectRefIds(refIDs)

	child := NewFrame(s)
	for id := range refIDs {
		child.Add(id, NewValSet())
	}

	hasMatch := false
	constraints.Each(func(cc Term) {
		for _, m := range w.GetMatches(cc) {
			hasMatch = true
			for id, vs := range m.Scope {
				if _, wanted := refIDs[id]; !wanted {
					continue
				}
				existing, _ := child.Get(id)
				existing.Union(vs)
				child.Add(id, existing)
			}
		}
	})

	if !hasMatch {
		return NewValSet()
	}
	return c.Body.Eval(child, w)
}

func (c *Constrain) Match(other Term, s Scope) bool {
	o, ok := other.(*Constrain)
	if !ok {
		return false
	}
	return c.Constraint.Match(o.Constraint, s) && c.Body.Match(o.Body, s)
}

func (c *Constrain) Equal(other Term) bool {
	o, ok := other.(*Constrain)
	return ok && c.Constraint.Equal(o.Constraint) && c.Body.Equal(o.Body)
}

func (c *Constrain) Hash() uint64 {
	return 28148592 ^ c.Constraint.Hash() ^ c.Body.Hash()
}

func (c *Constrain) CollectRefIds(ids map[SymID]struct{}) {
	c.Constraint.CollectRefIds(ids)
	c.Body.CollectRefIds(ids)
}

func (c *Constrain) Flatten() []Term { return flattenSelf(c) }
