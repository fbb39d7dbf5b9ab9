package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pilibhitjob/PilibhitJob/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit the engine config file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config and any validation warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := readConfig(opts)
			if err != nil {
				return err
			}
			cfg, vr := config.NormalizeAndValidate(cfg)
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, b)
			for _, w := range vr.Warnings {
				pterm.Warning.WithWriter(cmd.ErrOrStderr()).Println(w)
			}
			for _, e := range vr.Errors {
				pterm.Error.WithWriter(cmd.ErrOrStderr()).Println(e)
			}
			return nil
		},
	}

	setURL := &cobra.Command{
		Use:   "set-url <csv-url>",
		Short: "Point the board at a different published sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				// Bootstrap the engine's file the way the engine would, so the
				// edit lands where the engine reads it.
				p, err := config.EnsureUserConfig(config.DataDir(), config.ShippedPath)
				if err != nil {
					return err
				}
				path = p
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg.Source.URL = args[0]
			if err := config.SaveAtomic(path, cfg); err != nil {
				return err
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("source.url updated in %s", path)
			return nil
		},
	}

	cmd.AddCommand(show, setURL)
	return cmd
}
