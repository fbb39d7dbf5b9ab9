package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
	"github.com/pilibhitjob/PilibhitJob/internal/domain"
	"github.com/pilibhitjob/PilibhitJob/internal/render"
)

func newJobsCmd(opts *rootOptions) *cobra.Command {
	var criteria domain.FilterCriteria
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs, optionally filtered by category and search text",
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
			return printJobs(cmd.OutOrStdout(), board.Filter(jobs, criteria), len(jobs))
		},
	}
	cmd.Flags().StringVar(&criteria.Category, "category", domain.CategoryAll, "category (Type column) to show")
	cmd.Flags().StringVar(&criteria.SearchText, "search", "", "case-insensitive text to match")
	return cmd
}

func printJobs(w io.Writer, jobs []domain.JobRecord, total int) error {
	if len(jobs) == 0 {
		_, err := fmt.Fprintln(w, "No jobs match your filters.")
		return err
	}
	rows := pterm.TableData{{"Title", "Company", "Type", "Location", "Salary", "Status", "Apply"}}
	for _, c := range render.Cards(jobs) {
		status := pterm.Green(c.Status)
		if c.Closed {
			status = pterm.Red(c.Status)
		}
		apply := c.ApplyURL
		if apply == "" {
			apply = c.ApplyLabel
		}
		rows = append(rows, []string{c.Title, c.Company, c.Category, c.Location, c.Salary, status, apply})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(rows).Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d jobs\n", len(jobs), total)
	return err
}
