package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
	"github.com/Rick999-star/ElecTestSystem/internal/llm"
	"github.com/Rick999-star/ElecTestSystem/internal/store"
)

// Service grades answer sets by fanning out bounded item groups to a
// completion provider and reconciling the results.
type Service struct {
	provider llm.Provider
	cfg      Config
	runs     store.RunRepo
}

// NewService creates a grading service. A nil provider selects mock mode:
// deterministic scoring with no network activity, used when no credential
// is configured. runs may be nil to skip the result ledger.
func NewService(provider llm.Provider, cfg Config, runs store.RunRepo) *Service {
	return &Service{provider: provider, cfg: cfg, runs: runs}
}

// Report is the outcome of one grading call.
type Report struct {
	SessionID string   `json:"session_id"`
	Total     float64  `json:"total"`
	Results   []Result `json:"results"`
}

// groupOutcome holds one group's parsed results or its terminal failure,
// positionally aligned with the group slice.
type groupOutcome struct {
	raws []rawResult
	err  error
}

// Grade scores every gradable item derived from questions and answers.
// Failures are contained per group: affected items score 0 with an
// annotated reason, and grading always yields one Result per item. The
// returned error covers only pre-dispatch conditions.
func (s *Service) Grade(ctx context.Context, questions []exam.Question, answers exam.AnswerSet) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{SessionID: uuid.NewString()}

	items := exam.Flatten(questions, answers)
	if len(items) == 0 {
		s.recordRun(ctx, report)
		return report, nil
	}

	if s.provider == nil {
		report.Results = s.mockScore(items)
	} else {
		report.Results = s.gradeLive(ctx, items)
	}

	for _, r := range report.Results {
		report.Total += r.Score
	}

	s.recordRun(ctx, report)
	return report, nil
}

// gradeLive partitions items, dispatches one completion request per group
// concurrently, and reconciles outcomes in group order.
func (s *Service) gradeLive(ctx context.Context, items []exam.Item) []Result {
	groups := Partition(items, s.cfg.GroupSize)
	outcomes := make([]groupOutcome, len(groups))

	var g errgroup.Group
	g.SetLimit(max(s.cfg.MaxConcurrent, 1))
	for i, group := range groups {
		g.Go(func() error {
			outcomes[i] = s.gradeGroup(ctx, group)
			return nil
		})
	}
	// Workers never return errors; failures live in their outcome slot.
	g.Wait()

	results := make([]Result, 0, len(items))
	for i, group := range groups {
		if outcomes[i].err != nil {
			results = append(results, failGroup(group, failureReason(outcomes[i].err))...)
			continue
		}
		results = append(results, reconcile(group, outcomes[i].raws)...)
	}
	return results
}

// gradeGroup issues one completion request for a group under its own
// deadline and extracts the raw result array.
func (s *Service) gradeGroup(ctx context.Context, group []exam.Item) groupOutcome {
	ctx = llm.WithPurpose(ctx, "grading")
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGroupMessage(group)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return groupOutcome{err: err}
	}

	raws, err := parseResults(string(resp.Content))
	if err != nil {
		return groupOutcome{err: &llm.ErrInvalidResponse{Content: resp.Content, Err: err}}
	}
	return groupOutcome{raws: raws}
}

// mockScore is the credential-free degraded path: a fixed fraction of each
// item's points, rounded down, with no network calls.
func (s *Service) mockScore(items []exam.Item) []Result {
	results := make([]Result, len(items))
	for i, it := range items {
		results[i] = Result{
			QuestionID:    it.QuestionID,
			SubQuestionID: it.SubQuestionID,
			Score:         math.Floor(it.Points * s.cfg.MockScoreRatio),
			Reason:        "mock mode: no grading credential configured",
		}
	}
	return results
}

// recordRun appends the report to the run ledger. Ledger failures are
// warnings only; they never change what the caller receives.
func (s *Service) recordRun(ctx context.Context, report *Report) {
	if s.runs == nil {
		return
	}

	detail, err := json.Marshal(report.Results)
	if err != nil {
		detail = []byte("[]")
	}

	run := &store.GradingRun{
		SessionID:  report.SessionID,
		Timestamp:  time.Now().UTC(),
		TotalScore: report.Total,
		Detail:     detail,
	}
	if err := s.runs.Append(ctx, run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record grading run: %v\n", err)
	}
}
