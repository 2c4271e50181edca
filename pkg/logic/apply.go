package logic

// Apply is function application: Pred applied to Arg.
type Apply struct {
	Pred Term
	Arg  Term
}

// NewApply constructs an application of pred to arg.
func NewApply(pred, arg Term) *Apply {
	return &Apply{Pred: pred, Arg: arg}
}

func (a *Apply) Repr() string {
	if _, ok := a.Pred.(*Apply); ok {
		return a.Pred.Repr() + " " + a.Arg.ReprClosed()
	}
	return a.Pred.ReprClosed() + " " + a.Arg.ReprClosed()
}

func (a *Apply) ReprClosed() string {
	return "(" + a.Repr() + ")"
}

func (a *Apply) String() string { return a.Repr() }

func (a *Apply) Subst(s Scope) ValSet {
	preds := a.Pred.Subst(s)
	args := a.Arg.Subst(s)
	return preds.Map(func(p Term) ValSet {
		return args.Map(func(arg Term) ValSet {
			return SingletonValSet(NewApply(p, arg))
		})
	})
}

// Eval evaluates Pred and Arg, then for every candidate predicate
// that reduces to a Lambda, applies it by binding its argument to the
// whole set of evaluated arguments and evaluating its body; every
// other candidate predicate is left as an unreduced Apply over the
// evaluated arguments.
func (a *Apply) Eval(s Scope, w *World) ValSet {
	preds := a.Pred.Eval(s, w)
	args := a.Arg.Eval(s, w)
	out := NewValSet()
	preds.Each(func(p Term) {
		if lam, ok := p.(*Lambda); ok {
			child := NewFrame(s)
			child.Add(lam.ArgID, args)
			lam.Body.Eval(child, w).Each(func(r Term) { out.Add(r) })
			return
		}
		args.Each(func(arg Term) {
			out.Add(NewApply(p, arg))
		})
	})
	return out
}

func (a *Apply) Match(other Term, s Scope) bool {
	o, ok := other.(*Apply)
	if !ok {
		return false
	}
	return a.Pred.Match(o.Pred, s) && a.Arg.Match(o.Arg, s)
}

func (a *Apply) Equal(other Term) bool {
	o, ok := other.(*Apply)
	return ok && a.Pred.Equal(o.Pred) && a.Arg.Equal(o.Arg)
}

func (a *Apply) Hash() uint64 {
	return 9858124 ^ a.Pred.Hash() ^ a.Arg.Hash()
}

func (a *Apply) CollectRefIds(ids map[SymID]struct{}) {
	a.Pred.CollectRefIds(ids)
	a.Arg.CollectRefIds(ids)
}

func (a *Apply) Flatten() []Term { return flattenSelf(a) }
