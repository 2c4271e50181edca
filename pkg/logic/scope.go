package logic

import "fmt"

// UnboundRefError reports that a reference name was looked up through
// MustGet without any frame in the scope chain defining it. Ordinary
// Subst/Match/Eval code never triggers this: every internal lookup
// uses Get's boolean result and falls back to leaving the reference
// unresolved, so this error is reserved for callers (tests, tooling)
// that want a hard failure instead.
type UnboundRefError struct {
	RefID SymID
}

func (e *UnboundRefError) Error() string {
	return fmt.Sprintf("unbound reference: %s", e.RefID)
}

// Scope is a lexically-scoped, stack-linked mapping from reference id
// to value set. Frame is the plain flavor; ShadowFrame additionally
// hides specific names from its parent.
type Scope interface {
	// Get returns the value set bound to k, consulting ancestors as
	// needed, and whether any frame defines k at all.
	Get(k SymID) (ValSet, bool)
	// Has reports whether k is visible from this frame.
	Has(k SymID) bool
	// Add binds k to vs in this frame, overwriting any existing local
	// binding.
	Add(k SymID, vs ValSet)
	// Squash materializes the full chain into a single flat mapping.
	Squash() FlatMap
}

// FlatMap is a scope chain collapsed into one map; it has no parent
// and satisfies Scope directly.
type FlatMap map[SymID]ValSet

// Get implements Scope.
func (m FlatMap) Get(k SymID) (ValSet, bool) {
	vs, ok := m[k]
	return vs, ok
}

// Has implements Scope.
func (m FlatMap) Has(k SymID) bool {
	_, ok := m[k]
	return ok
}

// Add implements Scope.
func (m FlatMap) Add(k SymID, vs ValSet) {
	m[k] = vs
}

// Squash implements Scope; a FlatMap squashes to itself.
func (m FlatMap) Squash() FlatMap {
	return m
}

// Frame is a plain scope frame: lookups miss locally fall through to
// parent.
type Frame struct {
	parent Scope
	locals map[SymID]ValSet
}

// NewFrame returns an empty frame chained to parent. parent may be
// nil to start a fresh top-level chain.
func NewFrame(parent Scope) *Frame {
	return &Frame{parent: parent, locals: make(map[SymID]ValSet)}
}

// Get implements Scope.
func (f *Frame) Get(k SymID) (ValSet, bool) {
	if vs, ok := f.locals[k]; ok {
		return vs, true
	}
	if f.parent != nil {
		return f.parent.Get(k)
	}
	return ValSet{}, false
}

// Has implements Scope.
func (f *Frame) Has(k SymID) bool {
	if _, ok := f.locals[k]; ok {
		return true
	}
	return f.parent != nil && f.parent.Has(k)
}

// Add implements Scope.
func (f *Frame) Add(k SymID, vs ValSet) {
	f.locals[k] = vs
}

// Squash implements Scope.
func (f *Frame) Squash() FlatMap {
	out := FlatMap{}
	if f.parent != nil {
		for k, v := range f.parent.Squash() {
			out[k] = v
		}
	}
	for k, v := range f.locals {
		out[k] = v
	}
	return out
}

// MustGet returns the value bound to k, or an UnboundRefError if no
// frame in the chain defines it.
func MustGet(s Scope, k SymID) (ValSet, error) {
	if vs, ok := s.Get(k); ok {
		return vs, nil
	}
	return ValSet{}, &UnboundRefError{RefID: k}
}

// ShadowFrame is a scope frame that hides a fixed set of names from
// its parent, even when the parent defines them, unless the name also
// has a local binding in this frame.
type ShadowFrame struct {
	parent   Scope
	locals   map[SymID]ValSet
	shadowed map[SymID]struct{}
}

// NewShadowFrame returns an empty shadowing frame chained to parent,
// hiding every name in hide.
func NewShadowFrame(parent Scope, hide ...SymID) *ShadowFrame {
	shadowed := make(map[SymID]struct{}, len(hide))
	for _, k := range hide {
		shadowed[k] = struct{}{}
	}
	return &ShadowFrame{parent: parent, locals: make(map[SymID]ValSet), shadowed: shadowed}
}

// Shadow marks k as hidden from the parent chain.
func (f *ShadowFrame) Shadow(k SymID) {
	f.shadowed[k] = struct{}{}
}

// Get implements Scope.
func (f *ShadowFrame) Get(k SymID) (ValSet, bool) {
	if vs, ok := f.locals[k]; ok {
		return vs, true
	}
	if _, hidden := f.shadowed[k]; hidden {
		return ValSet{}, false
	}
	if f.parent != nil {
		return f.parent.Get(k)
	}
	return ValSet{}, false
}

// Has implements Scope.
func (f *ShadowFrame) Has(k SymID) bool {
	if _, ok := f.locals[k]; ok {
		return true
	}
	if _, hidden := f.shadowed[k]; hidden {
		return false
	}
	return f.parent != nil && f.parent.Has(k)
}

// Add implements Scope.
func (f *ShadowFrame) Add(k SymID, vs ValSet) {
	f.locals[k] = vs
}

// Squash implements Scope.
func (f *ShadowFrame) Squash() FlatMap {
	out := FlatMap{}
	if f.parent != nil {
		for k, v := range f.parent.Squash() {
			out[k] = v
		}
	}
	for k := range f.shadowed {
		delete(out, k)
	}
	for k, v := range f.locals {
		out[k] = v
	}
	return out
}
