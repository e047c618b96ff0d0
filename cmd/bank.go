package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
	"github.com/Rick999-star/ElecTestSystem/internal/store"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the question bank",
}

var bankImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the question bank with questions from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := exam.LoadQuestions(args[0])
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			return fmt.Errorf("%s contains no questions", args[0])
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.QuestionRepo().ReplaceAll(context.Background(), questions); err != nil {
			return fmt.Errorf("import questions: %w", err)
		}

		fmt.Printf("Imported %d question(s).\n", len(questions))
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		questions, err := s.QuestionRepo().All(context.Background())
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		if len(questions) == 0 {
			fmt.Println("Question bank is empty.")
			return nil
		}

		fmt.Printf("%-12s  %-7s  %-5s  %s\n", "ID", "Points", "Parts", "Text")
		fmt.Println(strings.Repeat("─", 80))
		for _, q := range questions {
			text := q.Text
			if len(text) > 50 {
				text = text[:50] + "…"
			}
			fmt.Printf("%-12s  %-7g  %-5d  %s\n", q.ID, q.Points, len(q.Subs), text)
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankImportCmd)
	bankCmd.AddCommand(bankListCmd)
}
