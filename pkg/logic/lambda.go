package logic

import (
	"fmt"
	"sync/atomic"
)

// lambdaIDCounter mints a fresh id for every Lambda construction,
// including every Lambda produced inside Subst. Lambdas compare equal
// only by this id (nominal identity) — two lambdas with identical
// ArgID and Body are still distinct unless they are literally the
// same construction.
var lambdaIDCounter uint64

// Lambda is a one-argument abstraction. Equality is nominal: two
// Lambda values are equal only if they carry the same id, which is
// assigned fresh on every call to NewLambda.
type Lambda struct {
	ArgID SymID
	Body  Term
	id    uint64
}

// NewLambda constructs a lambda binding argID in body, assigning it a
// fresh, process-wide monotonic id.
func NewLambda(argID SymID, body Term) *Lambda {
	return &Lambda{
		ArgID: argID,
		Body:  body,
		id:    atomic.AddUint64(&lambdaIDCounter, 1),
	}
}

// ID returns the lambda's nominal id.
func (l *Lambda) ID() uint64 { return l.id }

func (l *Lambda) Repr() string {
	return fmt.Sprintf("<%s> %s", l.ArgID, l.Body.Repr())
}

func (l *Lambda) ReprClosed() string {
	return "(" + l.Repr() + ")"
}

func (l *Lambda) String() string { return l.Repr() }

// Subst substitutes through the body under a shadow frame that hides
// ArgID from the outer scope, then wraps each resulting body in a
// brand new Lambda (never the receiver's own id — every substitution
// produces a fresh construction, per NewLambda's contract).
func (l *Lambda) Subst(s Scope) ValSet {
	child := NewShadowFrame(s, l.ArgID)
	bodies := l.Body.Subst(child)
	out := NewValSet()
	bodies.Each(func(b Term) {
		out.Add(NewLambda(l.ArgID, b))
	})
	return out
}

// Eval for Lambda is plain substitution; a lambda's body is only
// actually evaluated when it is applied.
func (l *Lambda) Eval(s Scope, _ *World) ValSet {
	return l.Subst(s)
}

// Match falls back to structural/nominal equality; lambdas are not a
// pattern-matchable shape in this language.
func (l *Lambda) Match(other Term, _ Scope) bool {
	return l.Equal(other)
}

func (l *Lambda) Equal(other Term) bool {
	o, ok := other.(*Lambda)
	return ok && o.id == l.id
}

func (l *Lambda) Hash() uint64 {
	return 195218521 ^ l.id
}

// CollectRefIds delegates to the body only. It deliberately does not
// remove ArgID from the collected set: a Constrain wrapping a lambda
// may therefore seed the bound name in its scope. This mirrors the
// reference implementation and is preserved rather than silently
// corrected.
func (l *Lambda) CollectRefIds(ids map[SymID]struct{}) {
	l.Body.CollectRefIds(ids)
}

func (l *Lambda) Flatten() []Term { return flattenSelf(l) }
