package main

import (
	"fmt"
	"io"

	"github.com/dshills/aoc/internal/solver"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that have solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

func runList(w io.Writer) error {
	for _, day := range solver.Days() {
		s, err := solver.Lookup(day)
		if err != nil {
			return err
		}
		parts := 0
		if s.PartOne != nil {
			parts++
		}
		if s.PartTwo != nil {
			parts++
		}
		if _, err := fmt.Fprintf(w, "%02d  %-24s %d/2 parts\n", s.Day, s.Title, parts); err != nil {
			return err
		}
	}
	return nil
}
