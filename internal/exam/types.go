package exam

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Question is one entry in the question bank. A question either carries
// sub-questions (and is graded per sub-question) or is graded as a whole.
type Question struct {
	ID          string        `json:"id"`
	Text        string        `json:"text"`
	Points      float64       `json:"points"`
	Criteria    string        `json:"criteria,omitempty"`
	ModelAnswer string        `json:"model_answer,omitempty"`
	Subs        []SubQuestion `json:"sub_questions,omitempty"`
}

// SubQuestion is one part of a multi-part question. Its ID is unique only
// within the parent question.
type SubQuestion struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Points   float64 `json:"points"`
	Criteria string  `json:"criteria,omitempty"`
}

// Answer holds the student's response to one question: either a single
// text or, for multi-part questions, a sub-question id → text mapping.
type Answer struct {
	Text string
	Sub  map[string]string
}

// AnswerSet maps question id → Answer.
type AnswerSet map[string]Answer

// UnmarshalJSON accepts a string, an object of sub-answers, or any scalar
// (coerced to its string form). Answers arrive from callers in loose JSON,
// so numbers and booleans are treated as text rather than rejected.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Text = s
		return nil
	}

	var sub map[string]json.RawMessage
	if err := json.Unmarshal(data, &sub); err == nil {
		a.Sub = make(map[string]string, len(sub))
		for k, v := range sub {
			a.Sub[k] = coerceString(v)
		}
		return nil
	}

	a.Text = coerceString(data)
	return nil
}

// coerceString renders a raw JSON scalar as answer text.
func coerceString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// LoadQuestions reads an ordered question list from a JSON file.
func LoadQuestions(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions file: %w", err)
	}
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("parse questions file: %w", err)
	}
	return qs, nil
}

// LoadAnswers reads an AnswerSet from a JSON file.
func LoadAnswers(path string) (AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var as AnswerSet
	if err := json.Unmarshal(data, &as); err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}
	return as, nil
}
