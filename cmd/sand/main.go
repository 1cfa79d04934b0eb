package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// defaultSaveDB is where the run and saves commands keep scenes unless told
// otherwise.
const defaultSaveDB = "sandfall-saves.db"

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:           "sand",
		Short:         "An interactive falling-sand simulation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "",
		"path to a config file (defaults to ./sandfall.yaml when present)")
	root.AddCommand(newRunCmd(&cfgPath), newBenchCmd(&cfgPath), newSavesCmd())
	return root
}
