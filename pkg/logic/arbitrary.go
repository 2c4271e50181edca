package logic

import (
	"fmt"
	"sync/atomic"
)

// arbitraryInstanceCounter mints strictly increasing, never-reused
// ids for ArbitraryInstance values. It is process-wide; a
// single-threaded evaluator never contends on it, but using an atomic
// counter costs nothing and keeps the package safe if ever driven
// from more than one goroutine.
var arbitraryInstanceCounter uint64

// arbitraryTerm is the concrete type behind the Arbitrary singleton.
type arbitraryTerm struct{}

// Arbitrary is the process-wide singleton that, under Eval, produces
// a fresh ArbitraryInstance every time it is reduced.
var Arbitrary Term = &arbitraryTerm{}

func (a *arbitraryTerm) Repr() string       { return "?" }
func (a *arbitraryTerm) ReprClosed() string { return "?" }
func (a *arbitraryTerm) String() string     { return "?" }

func (a *arbitraryTerm) Subst(Scope) ValSet { return SingletonValSet(a) }

// Eval allocates a fresh ArbitraryInstance on every reduction; each
// textual occurrence of Arbitrary that gets evaluated yields a
// distinct instance.
func (a *arbitraryTerm) Eval(Scope, *World) ValSet {
	id := atomic.AddUint64(&arbitraryInstanceCounter, 1)
	return SingletonValSet(&ArbitraryInstance{id: id})
}

func (a *arbitraryTerm) Match(other Term, _ Scope) bool {
	return a.Equal(other)
}

func (a *arbitraryTerm) Equal(other Term) bool {
	_, ok := other.(*arbitraryTerm)
	return ok
}

func (a *arbitraryTerm) Hash() uint64 { return 95318557 }

func (a *arbitraryTerm) CollectRefIds(map[SymID]struct{}) {}

func (a *arbitraryTerm) Flatten() []Term { return flattenSelf(a) }

// ArbitraryInstance is a unique opaque atom minted each time
// Arbitrary is evaluated. Two instances are equal only if they share
// the same id — equality here is nominal, not structural.
type ArbitraryInstance struct {
	id uint64
}

// ID returns the instance's monotonic id, mostly useful for
// diagnostics.
func (a *ArbitraryInstance) ID() uint64 { return a.id }

func (a *ArbitraryInstance) Repr() string       { return fmt.Sprintf("?%d", a.id) }
func (a *ArbitraryInstance) ReprClosed() string { return a.Repr() }
func (a *ArbitraryInstance) String() string     { return a.Repr() }

func (a *ArbitraryInstance) Subst(Scope) ValSet         { return SingletonValSet(a) }
func (a *ArbitraryInstance) Eval(Scope, *World) ValSet { return SingletonValSet(a) }

func (a *ArbitraryInstance) Match(other Term, _ Scope) bool {
	return a.Equal(other)
}

func (a *ArbitraryInstance) Equal(other Term) bool {
	o, ok := other.(*ArbitraryInstance)
	return ok && o.id == a.id
}

func (a *ArbitraryInstance) Hash() uint64 {
	return 998439321 ^ a.id
}

func (a *ArbitraryInstance) CollectRefIds(map[SymID]struct{}) {}

func (a *ArbitraryInstance) Flatten() []Term { return flattenSelf(a) }
