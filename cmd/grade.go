package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
	"github.com/Rick999-star/ElecTestSystem/internal/grader"
	"github.com/Rick999-star/ElecTestSystem/internal/llm"
	"github.com/Rick999-star/ElecTestSystem/internal/store"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade an answer set against the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		answersPath, _ := cmd.Flags().GetString("answers")
		questionsPath, _ := cmd.Flags().GetString("questions")
		groupSize, _ := cmd.Flags().GetInt("group-size")
		mock, _ := cmd.Flags().GetBool("mock")

		if answersPath == "" {
			return fmt.Errorf("--answers is required")
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

		ctx := context.Background()

		var questions []exam.Question
		if questionsPath != "" {
			questions, err = exam.LoadQuestions(questionsPath)
		} else {
			questions, err = s.QuestionRepo().All(ctx)
		}
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		if len(questions) == 0 {
			return fmt.Errorf("question bank is empty; import one with 'electest bank import'")
		}

		answers, err := exam.LoadAnswers(answersPath)
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}

		gcfg := grader.DefaultConfig()
		if groupSize > 0 {
			gcfg.GroupSize = groupSize
		}

		provider, err := buildProvider(ctx, s, mock)
		if err != nil {
			return err
		}

		svc := grader.NewService(provider, gcfg, s.RunRepo())
		report, err := svc.Grade(ctx, questions, answers)
		if err != nil {
			return fmt.Errorf("grading failed: %w", err)
		}

		printReport(report, questions)
		return nil
	},
}

// buildProvider resolves the completion provider. Returns nil (mock mode)
// when mock is forced or no credential is configured anywhere.
func buildProvider(ctx context.Context, s *store.Store, mock bool) (llm.Provider, error) {
	if mock {
		return nil, nil
	}

	cfg := llm.ConfigFromEnv()
	if cfg.Provider == "mock" {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Println("No completion credential configured; grading in mock mode.")
			return nil, nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("configure completion provider: %w", err)
	}
	return provider, nil
}

// printReport writes the per-item results and the total to stdout.
func printReport(report *grader.Report, questions []exam.Question) {
	maxPoints := make(map[string]float64)
	var total float64
	for _, q := range questions {
		if len(q.Subs) == 0 {
			maxPoints[q.ID+"/"] = q.Points
			total += q.Points
			continue
		}
		for _, sub := range q.Subs {
			maxPoints[q.ID+"/"+sub.ID] = sub.Points
			total += sub.Points
		}
	}

	fmt.Printf("%-12s  %-6s  %-7s  %s\n", "Question", "Part", "Score", "Reason")
	fmt.Println(strings.Repeat("─", 72))
	for _, r := range report.Results {
		part := r.SubQuestionID
		if part == "" {
			part = "-"
		}
		points := maxPoints[r.QuestionID+"/"+r.SubQuestionID]
		fmt.Printf("%-12s  %-6s  %g/%-5g  %s\n", r.QuestionID, part, r.Score, points, r.Reason)
	}
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("Total: %g/%g  (session %s)\n", report.Total, total, report.SessionID)
}

func init() {
	gradeCmd.Flags().String("answers", "", "Path to the answers JSON file (required)")
	gradeCmd.Flags().String("questions", "", "Path to a questions JSON file (default: the question bank)")
	gradeCmd.Flags().Int("group-size", 0, "Items per completion request (default 8)")
	gradeCmd.Flags().Bool("mock", false, "Force mock mode (no network calls)")
}
