package grader

import (
	"strings"
	"testing"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
)

func TestBuildGroupMessage(t *testing.T) {
	items := []exam.Item{
		{QuestionID: "q1", Text: "What is the unit of current?", Points: 10, Criteria: "A or Ampere", Answer: "A"},
		{QuestionID: "q2", SubQuestionID: "a", Text: "Find the resistance.", Points: 5},
	}

	msg := buildGroupMessage(items)

	if !strings.Contains(msg, "Grade the following 2 item(s).") {
		t.Error("missing item count")
	}
	if !strings.Contains(msg, "Item 0\nQuestion: What is the unit of current?") {
		t.Error("missing item 0 listing")
	}
	if !strings.Contains(msg, "Max points: 10") {
		t.Error("missing points")
	}
	if !strings.Contains(msg, "Grading criteria: A or Ampere") {
		t.Error("missing criteria")
	}
	if !strings.Contains(msg, "Student answer: A\n") {
		t.Error("missing answer")
	}
	if !strings.Contains(msg, "Item 1\n") {
		t.Error("missing item 1 listing")
	}
	if !strings.Contains(msg, "Student answer: (not answered)") {
		t.Error("missing unanswered marker")
	}
	if strings.Contains(msg, "Item 1\nQuestion: Find the resistance.\nMax points: 5\nGrading criteria:") {
		t.Error("empty criteria should be omitted")
	}
}

func TestSystemPromptDemandsBareJSONArray(t *testing.T) {
	for _, want := range []string{
		"JSON array only",
		`Echo the "index"`,
		"exactly one element for every item",
		"missing answer scores 0",
	} {
		if !strings.Contains(systemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

// The documented example response must survive the extractor unchanged:
// it is the contract the model is asked to follow.
func TestExampleResponseRoundTrips(t *testing.T) {
	results, err := parseResults(exampleResponse)
	if err != nil {
		t.Fatalf("example response failed to parse: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Index == nil || *results[0].Index != 0 {
		t.Errorf("result 0 index = %v", results[0].Index)
	}
	if got := coerceScore(results[0].Score); got != 7.5 {
		t.Errorf("result 0 score = %g, want 7.5", got)
	}
	if results[0].Reason != "method correct, arithmetic slip" {
		t.Errorf("result 0 reason = %q", results[0].Reason)
	}
	if results[1].Index == nil || *results[1].Index != 1 {
		t.Errorf("result 1 index = %v", results[1].Index)
	}
	if got := coerceScore(results[1].Score); got != 0 {
		t.Errorf("result 1 score = %g, want 0", got)
	}
}
