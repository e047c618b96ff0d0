package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rick999-star/ElecTestSystem/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent grading runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runs, err := s.RunRepo().Recent(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No grading runs recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-36s  %s\n", "ID", "Timestamp", "Session", "Total")
		fmt.Println(strings.Repeat("─", 76))
		for _, r := range runs {
			fmt.Printf("%-5d  %-19s  %-36s  %g\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.SessionID,
				r.TotalScore,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().Int("limit", 20, "Maximum number of runs to show")
}
