package logic

// Match is one binding produced by matching a query term against a
// stored fact: the fact that matched, and the flattened scope of
// bindings captured while matching it.
type Match struct {
	Fact  Term
	Scope FlatMap
}

// valTreeEdge is one outgoing edge of a trie node: a term used for
// structural matching (never ==) plus what lies beyond it.
type valTreeEdge struct {
	key   Term
	child *valTreeNode
	fact  Term
	leaf  bool
}

// valTreeNode is one level of the fact trie. Edges are kept in a
// slice, not a map, because lookup is always by Match against the
// query, never by native equality.
type valTreeNode struct {
	edges []valTreeEdge
}

// ValTree is a trie of facts keyed by each fact's flattened term
// sequence. In this system every Flatten is the single-element
// default, so the trie is effectively one level deep, but the
// multi-level structure is kept general in case a future term
// variant overrides Flatten.
type ValTree struct {
	root *valTreeNode
}

// NewValTree returns an empty fact trie.
func NewValTree() *ValTree {
	return &ValTree{root: &valTreeNode{}}
}

// Add inserts fact, keyed by fact.Flatten().
func (t *ValTree) Add(fact Term) {
	seq := fact.Flatten()
	node := t.root
	for i, term := range seq {
		last := i == len(seq)-1
		if last {
			node.edges = append(node.edges, valTreeEdge{key: term, fact: fact, leaf: true})
			return
		}
		var next *valTreeNode
		for _, e := range node.edges {
			if !e.leaf && e.key.Equal(term) {
				next = e.child
				break
			}
		}
		if next == nil {
			next = &valTreeNode{}
			node.edges = append(node.edges, valTreeEdge{key: term, child: next})
		}
		node = next
	}
}

// GetMatches returns every Match obtained by walking the trie against
// query's flattened sequence, matching each stored edge term (the
// pattern side) against the corresponding query element.
func (t *ValTree) GetMatches(query Term) []Match {
	seq := query.Flatten()
	return t.root.getMatches(seq, NewFrame(nil))
}

func (n *valTreeNode) getMatches(seq []Term, base Scope) []Match {
	if len(seq) == 0 {
		return nil
	}
	var out []Match
	for _, e := range n.edges {
		child := NewFrame(base)
		if !e.key.Match(seq[0], child) {
			continue
		}
		if e.leaf {
			if len(seq) == 1 {
				out = append(out, Match{Fact: e.fact, Scope: child.Squash()})
			}
			continue
		}
		if len(seq) > 1 {
			out = append(out, e.child.getMatches(seq[1:], child)...)
		}
	}
	return out
}

// World is a stack-linked chain of fact tries: queries are matched
// against every trie in the chain, outer frame first.
type World struct {
	parent *World
	facts  *ValTree
}

// NewWorld returns an empty, parentless world.
func NewWorld() *World {
	return &World{facts: NewValTree()}
}

// NewChild returns a world layered on top of w; adding facts to the
// child never affects w.
func (w *World) NewChild() *World {
	return &World{parent: w, facts: NewValTree()}
}

// Add inserts fact into the innermost (receiver's own) trie.
func (w *World) Add(fact Term) {
	w.facts.Add(fact)
}

// GetMatches unions matches from every trie in the chain, outer
// frames first, inner (the receiver's own trie) last.
func (w *World) GetMatches(query Term) []Match {
	var out []Match
	if w.parent != nil {
		out = append(out, w.parent.GetMatches(query)...)
	}
	out = append(out, w.facts.GetMatches(query)...)
	return out
}
