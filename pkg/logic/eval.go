package logic

// Eval is the top-level entry point: it is nothing more than
// term.Eval(scope, world), kept as a free function so callers don't
// need to remember which argument order the method takes.
func Eval(term Term, scope Scope, world *World) ValSet {
	return term.Eval(scope, world)
}
