package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
)

// QueryOpts configures event and run queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// QuestionRepo manages the question bank. Grading treats the bank as
// read-only and pre-loaded; ReplaceAll exists for the CLI importer.
type QuestionRepo interface {
	// All returns every question in bank order.
	All(ctx context.Context) ([]exam.Question, error)

	// ReplaceAll swaps the bank's contents for the given questions.
	ReplaceAll(ctx context.Context, questions []exam.Question) error
}

// GradingRun is one appended entry of the score ledger.
type GradingRun struct {
	ID         int64
	SessionID  string
	Timestamp  time.Time
	TotalScore float64
	Detail     json.RawMessage // serialized per-item results
}

// RunRepo is the write-only score/result sink plus a history view.
type RunRepo interface {
	// Append records a completed grading run.
	Append(ctx context.Context, run *GradingRun) error

	// Recent returns the newest runs, most recent first.
	Recent(ctx context.Context, opts QueryOpts) ([]GradingRun, error)
}

// LLMRequestEventData captures the data for a single completion request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored completion request event.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to completion request events.
type EventRepo interface {
	// AppendLLMRequest records a completion API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the newest events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by id.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEvent, error)
}
