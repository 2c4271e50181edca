package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alephic/logic/internal/parse"
	"github.com/alephic/logic/pkg/logic"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Parse and evaluate a single expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term, ok := parse.Parse(args[0])
		if !ok {
			return fmt.Errorf("syntax error")
		}
		log.Debugf("parsed: %s", term.Repr())

		scope := logic.NewFrame(nil)
		world := logic.NewWorld()
		results := logic.Eval(term, scope, world)

		results.Each(func(r logic.Term) {
			fmt.Println(r.Repr())
		})
		return nil
	},
}
