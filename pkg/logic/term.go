package logic

import "hash/fnv"

// SymID names a symbol or a reference. Both kinds of names share the
// same identifier space; a term's own variant decides how the name is
// interpreted.
type SymID string

// hashString mixes a string into a 64-bit hash using FNV-1a. There is
// no domain-specific reason to hash content any differently from the
// rest of the standard library's hashing story, so we stay with
// hash/fnv rather than reaching for a third-party hashing package.
func hashString(s SymID) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Term is the closed set of expression nodes: Sym, Wildcard,
// WildcardTrace, Ref, Arbitrary, ArbitraryInstance, Lambda, Apply,
// Declare, and Constrain. All implementations live in this package;
// the interface is not meant to be implemented outside it.
type Term interface {
	// Repr renders the term's concrete syntax.
	Repr() string
	// ReprClosed renders the term parenthesized if it is not already
	// a single syntactic token.
	ReprClosed() string
	// String is an alias for Repr so terms satisfy fmt.Stringer.
	String() string

	// Subst returns the set of terms obtained by replacing free
	// references according to s.
	Subst(s Scope) ValSet
	// Eval returns the set of terms obtained by fully evaluating the
	// receiver against s and w.
	Eval(s Scope, w *World) ValSet

	// Match attempts to match the receiver, as the stored/pattern
	// side, against other, extending s with any new bindings. Match
	// never consults s for terms that are not Ref or WildcardTrace.
	Match(other Term, s Scope) bool

	// Equal reports structural equality (nominal for Lambda and
	// ArbitraryInstance).
	Equal(other Term) bool
	// Hash returns a content hash consistent with Equal.
	Hash() uint64

	// CollectRefIds inserts every Ref/WildcardTrace id reachable from
	// the receiver into ids.
	CollectRefIds(ids map[SymID]struct{})
	// Flatten reduces the receiver to a key sequence used by the fact
	// trie. The default is a single-element sequence holding the
	// receiver itself.
	Flatten() []Term
}

// flattenSelf is the default Flatten implementation shared by every
// variant in this package; none of them currently need a composite
// key.
func flattenSelf(t Term) []Term {
	return []Term{t}
}
