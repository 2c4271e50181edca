package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bobappleyard/readline"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alephic/logic/internal/parse"
	"github.com/alephic/logic/pkg/logic"
)

const prompt = "> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		runRepl()
		return nil
	},
}

// session holds the persistent top-level scope and world a repl run
// shares across every line, plus the names bound with the #name
// shorthand (kept separately so they can be offered to readline's
// completer).
type session struct {
	scope *logic.Frame
	world *logic.World
	names []string
}

func newSession() *session {
	return &session{
		scope: logic.NewFrame(nil),
		world: logic.NewWorld(),
	}
}

func (sess *session) complete(query, ctx string) []string {
	var out []string
	for _, n := range sess.names {
		if strings.HasPrefix(n, query) {
			out = append(out, n)
		}
	}
	return out
}

// define implements the `#name expr` shorthand from the reference
// implementation's repl.py: it parses expr but does not evaluate it,
// binding it unevaluated under name in the persistent scope.
func (sess *session) define(line string) string {
	rest := strings.TrimSpace(line[1:])
	parts := strings.SplitN(rest, " ", 2)
	if len(parts) != 2 {
		return "Syntax error"
	}
	name, exprSrc := parts[0], parts[1]
	term, ok := parse.Parse(exprSrc)
	if !ok {
		log.Warnf("syntax error defining %q: %q", name, exprSrc)
		return "Syntax error"
	}
	sess.scope.Add(logic.SymID(name), logic.SingletonValSet(term))
	sess.names = append(sess.names, name)
	return "Definition added for " + name
}

func (sess *session) eval(line string) string {
	term, ok := parse.Parse(line)
	if !ok {
		log.Warnf("syntax error: %q", line)
		return "Syntax error"
	}
	results := logic.Eval(term, sess.scope, sess.world)
	var lines []string
	results.Each(func(r logic.Term) {
		lines = append(lines, r.Repr())
	})
	return strings.Join(lines, "\n")
}

func (sess *session) handle(line string) (out string, quit bool) {
	switch {
	case line == ":q":
		return "", true
	case strings.HasPrefix(line, "#"):
		return sess.define(line), false
	default:
		return sess.eval(line), false
	}
}

func runRepl() {
	sess := newSession()
	if term.IsTerminal(int(os.Stdin.Fd())) {
		runReplReadline(sess)
		return
	}
	runReplScanner(sess)
}

func runReplReadline(sess *session) {
	readline.Completer = sess.complete
	for {
		line, err := readline.String(prompt)
		if err != nil {
			if err != io.EOF {
				log.Warn(err)
			}
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		readline.AddHistory(line)
		out, quit := sess.handle(line)
		if quit {
			return
		}
		if out != "" {
			fmt.Println(out)
		}
	}
}

func runReplScanner(sess *session) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print(prompt)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Print(prompt)
			continue
		}
		out, quit := sess.handle(line)
		if quit {
			return
		}
		if out != "" {
			fmt.Println(out)
		}
		fmt.Print(prompt)
	}
	if err := scanner.Err(); err != nil {
		log.Warn(err)
	}
}
