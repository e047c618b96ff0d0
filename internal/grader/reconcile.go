package grader

import (
	"errors"
	"fmt"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
	"github.com/Rick999-star/ElecTestSystem/internal/llm"
)

// Result is the graded outcome for one item.
type Result struct {
	QuestionID    string  `json:"question_id"`
	SubQuestionID string  `json:"sub_question_id,omitempty"`
	Score         float64 `json:"score"`
	Reason        string  `json:"reason"`
}

const fallbackReason = "no result returned"

// reconcile maps raw model results back to the group's items by their
// group-local index. It always returns exactly one Result per item:
// unmatched or out-of-range raws are dropped, the first match per index
// wins, gaps get a zero-score fallback, and scores are clamped to
// [0, points].
func reconcile(items []exam.Item, raws []rawResult) []Result {
	matched := make([]*rawResult, len(items))
	for i := range raws {
		r := &raws[i]
		if r.Index == nil || *r.Index < 0 || *r.Index >= len(items) {
			continue
		}
		if matched[*r.Index] == nil {
			matched[*r.Index] = r
		}
	}

	results := make([]Result, len(items))
	for i, it := range items {
		res := Result{
			QuestionID:    it.QuestionID,
			SubQuestionID: it.SubQuestionID,
			Reason:        fallbackReason,
		}
		if m := matched[i]; m != nil {
			res.Score = clampScore(coerceScore(m.Score), it.Points)
			res.Reason = m.Reason
		}
		results[i] = res
	}
	return results
}

// failGroup produces zero-score results for every item in a group whose
// request or extraction failed, with a reason naming the failure class.
func failGroup(items []exam.Item, reason string) []Result {
	results := make([]Result, len(items))
	for i, it := range items {
		results[i] = Result{
			QuestionID:    it.QuestionID,
			SubQuestionID: it.SubQuestionID,
			Reason:        reason,
		}
	}
	return results
}

// failureReason classifies a group-level error for the per-item reason text.
func failureReason(err error) string {
	var rejected *llm.ErrRequestRejected
	if errors.As(err, &rejected) {
		return fmt.Sprintf("completion request rejected (HTTP %d)", rejected.StatusCode)
	}

	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		return "unparseable grading output"
	}

	// Transport failures, rate limiting, and 5xx all surface here after
	// the retry budget is spent.
	return "no response from completion endpoint"
}

// clampScore bounds a score to [0, points]. Models occasionally award more
// than the maximum or negative values; neither is allowed through.
func clampScore(score, points float64) float64 {
	if score < 0 {
		return 0
	}
	if points > 0 && score > points {
		return points
	}
	return score
}
