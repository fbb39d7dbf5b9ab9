// Command boardctl prints the job board from the terminal using the same
// fetch, parse and filter pipeline as the engine.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pilibhitjob/PilibhitJob/internal/config"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	url        string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "boardctl",
		Short:         "Inspect the Pilibhit job board sheet",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config.yml (default: the engine's config in $"+config.EnvDataDir+")")
	root.PersistentFlags().StringVar(&opts.url, "url", "", "published CSV URL (overrides config)")

	root.AddCommand(newJobsCmd(opts), newCategoriesCmd(opts), newConfigCmd(opts))
	return root
}
