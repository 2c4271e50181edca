// Package logic implements a small term algebra for a symbolic,
// non-deterministic expression language. Terms evaluate to sets of
// result terms rather than single values, which lets the evaluator
// express pattern matching against a fact database alongside ordinary
// substitution and application.
//
// The package is a pure library: it performs no I/O and holds no
// global mutable state beyond the monotonic id counters needed to
// give Lambda and ArbitraryInstance values their nominal identity.
package logic
