package main

import (
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "logic",
	Short:   "Evaluate symbolic, non-deterministic logic expressions",
	Long:    "logic evaluates expressions in a small symbolic language whose terms reduce to sets of results, matched against a world of declared facts.",
	Version: version(),
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	})
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
}

// Execute runs the root command, exiting the process with status 1
// on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	return info.Main.Version
}
