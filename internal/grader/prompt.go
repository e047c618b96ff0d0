package grader

import (
	"fmt"
	"strings"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
)

const systemPrompt = `You are a strict exam grader scoring student answers against a rubric.

Rules:
- Score each item between 0 and its stated maximum points. Partial credit is allowed.
- Judge only against the question, the grading criteria, and the student's answer. Do not invent extra requirements.
- An empty or missing answer scores 0.
- Respond with a JSON array only. No prose, no explanations outside the array, no markdown code fences.
- Each array element is an object: {"index": <item index exactly as given>, "score": <number>, "reason": "<one short sentence>"}.
- Echo the "index" value of each item unchanged. Never renumber.
- Return exactly one element for every item, no more and no less.`

// exampleResponse documents the exact output shape the grader expects.
// It is included in the prompt and pinned by a round-trip test against
// the response extractor.
const exampleResponse = `[{"index":0,"score":7.5,"reason":"method correct, arithmetic slip"},{"index":1,"score":0,"reason":"not answered"}]`

// buildGroupMessage renders the item listing for one group. The index is
// the item's zero-based position within the group; the model is asked to
// echo it so results can be correlated back.
func buildGroupMessage(items []exam.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Grade the following %d item(s).\n", len(items))
	b.WriteString("Example response format:\n")
	b.WriteString(exampleResponse)
	b.WriteString("\n")

	for i, it := range items {
		fmt.Fprintf(&b, "\nItem %d\n", i)
		fmt.Fprintf(&b, "Question: %s\n", it.Text)
		fmt.Fprintf(&b, "Max points: %g\n", it.Points)
		if it.Criteria != "" {
			fmt.Fprintf(&b, "Grading criteria: %s\n", it.Criteria)
		}
		if it.Answer == "" {
			b.WriteString("Student answer: (not answered)\n")
		} else {
			fmt.Fprintf(&b, "Student answer: %s\n", it.Answer)
		}
	}

	return b.String()
}
