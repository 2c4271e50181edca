// Package parse turns the concrete syntax described in the logic
// language's grammar into logic.Term values. It is a thin
// collaborator: it imports pkg/logic but is never imported by it.
//
// The reader is structured the way the original implementation's own
// parser is — a position-tracking cursor over the source string plus
// one function per grammar production — re-expressed idiomatically in
// Go rather than translated line for line.
package parse

import (
	"regexp"
	"strings"

	"github.com/alephic/logic/pkg/logic"
)

// tracker is a position-tracking cursor over source text.
type tracker struct {
	s   string
	pos int
}

var (
	reSpace = regexp.MustCompile(`^\s*`)
	reIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
)

// skipSpace advances past leading whitespace.
func (t *tracker) skipSpace() {
	if m := reSpace.FindString(t.s[t.pos:]); m != "" {
		t.pos += len(m)
	}
}

// peek returns the next byte without consuming it, or 0 at EOF.
func (t *tracker) peek() byte {
	if t.pos >= len(t.s) {
		return 0
	}
	return t.s[t.pos]
}

// consume advances past b if it is next, reporting success.
func (t *tracker) consume(b byte) bool {
	if t.peek() != b {
		return false
	}
	t.pos++
	return true
}

// matchRe advances past a regexp match at the current position,
// returning the match text and whether one was found.
func (t *tracker) matchRe(re *regexp.Regexp) (string, bool) {
	m := re.FindString(t.s[t.pos:])
	if m == "" {
		return "", false
	}
	t.pos += len(m)
	return m, true
}

// Parse reads a single expression from src, returning false if src
// is not a well-formed expression (trailing garbage included).
func Parse(src string) (logic.Term, bool) {
	t := &tracker{s: src}
	term, ok := parseExpr(t)
	if !ok {
		return nil, false
	}
	t.skipSpace()
	if t.pos != len(t.s) {
		return nil, false
	}
	return term, true
}

// parseExpr reads a left-associative chain of juxtaposed applications.
func parseExpr(t *tracker) (logic.Term, bool) {
	head, ok := parseExprNotApply(t)
	if !ok {
		return nil, false
	}
	for {
		save := t.pos
		t.skipSpace()
		arg, ok := parseExprNotApply(t)
		if !ok {
			t.pos = save
			return head, true
		}
		head = logic.NewApply(head, arg)
	}
}

// parseExprNotApply reads one atomic or bracketed expression: not
// itself a juxtaposition chain, though it may contain one inside
// parens, <>, {}, or [].
func parseExprNotApply(t *tracker) (logic.Term, bool) {
	t.skipSpace()
	switch t.peek() {
	case '(':
		return parseParen(t)
	case '<':
		return parseLambda(t)
	case '{':
		return parseDeclare(t)
	case '[':
		return parseConstrain(t)
	case '*':
		t.pos++
		return logic.Wildcard, true
	case '?':
		t.pos++
		return logic.Arbitrary, true
	}
	return parseSymOrRef(t)
}

func parseParen(t *tracker) (logic.Term, bool) {
	if !t.consume('(') {
		return nil, false
	}
	e, ok := parseExpr(t)
	if !ok {
		return nil, false
	}
	t.skipSpace()
	if !t.consume(')') {
		return nil, false
	}
	return e, true
}

func parseLambda(t *tracker) (logic.Term, bool) {
	if !t.consume('<') {
		return nil, false
	}
	t.skipSpace()
	name, ok := t.matchRe(reIdent)
	if !ok {
		return nil, false
	}
	t.skipSpace()
	if !t.consume('>') {
		return nil, false
	}
	t.skipSpace()
	body, ok := parseExpr(t)
	if !ok {
		return nil, false
	}
	return logic.NewLambda(logic.SymID(name), body), true
}

func parseDeclare(t *tracker) (logic.Term, bool) {
	if !t.consume('{') {
		return nil, false
	}
	with, ok := parseExpr(t)
	if !ok {
		return nil, false
	}
	t.skipSpace()
	if !t.consume('}') {
		return nil, false
	}
	t.skipSpace()
	body, ok := parseExpr(t)
	if !ok {
		return nil, false
	}
	return logic.NewDeclare(with, body), true
}

func parseConstrain(t *tracker) (logic.Term, bool) {
	if !t.consume('[') {
		return nil, false
	}
	constraint, ok := parseExpr(t)
	if !ok {
		return nil, false
	}
	t.skipSpace()
	if !t.consume(']') {
		return nil, false
	}
	t.skipSpace()
	body, ok := parseExpr(t)
	if !ok {
		return nil, false
	}
	return logic.NewConstrain(constraint, body), true
}

// parseSymOrRef reads a bare identifier, disambiguating Sym from Ref
// by the case of its leading character: lower-case leads a Sym,
// upper-case leads a Ref. This is the convention chosen for this
// grammar; the original source's parser does not need to make the
// choice, since it carries an explicit PatternVar/Var distinction
// instead.
func parseSymOrRef(t *tracker) (logic.Term, bool) {
	name, ok := t.matchRe(reIdent)
	if !ok {
		return nil, false
	}
	if strings.ToUpper(name[:1]) == name[:1] {
		return logic.NewRef(logic.SymID(name)), true
	}
	return logic.NewSym(logic.SymID(name)), true
}
