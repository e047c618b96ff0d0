package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Rick999-star/ElecTestSystem/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "electest",
	Short: "LLM-assisted exam grading",
	Long:  "ElecTestSystem — grades free-text exam answers in bulk against a question bank through a completion endpoint.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env is optional; a missing file is not an error.
	cobra.OnInitialize(func() { _ = godotenv.Load() })

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ETS_DB env var)")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ETS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
