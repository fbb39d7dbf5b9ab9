package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
)

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category filters the board would show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			jobs, err := fetchJobs(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				return board.ErrEmptyDataset
			}
			for _, c := range board.Categories(jobs) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
