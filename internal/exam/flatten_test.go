package exam

import (
	"encoding/json"
	"testing"
)

func TestFlatten_LeafQuestions(t *testing.T) {
	qs := []Question{
		{ID: "q1", Text: "What is the unit of current?", Points: 10, Criteria: "A or Ampere"},
		{ID: "q2", Text: "State Ohm's law.", Points: 5},
	}
	answers := AnswerSet{
		"q1": {Text: "A"},
	}

	items := Flatten(qs, answers)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].QuestionID != "q1" || items[0].Answer != "A" {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[1].QuestionID != "q2" || items[1].Answer != "" {
		t.Errorf("expected empty answer for missing key, got %+v", items[1])
	}
}

func TestFlatten_SubQuestions(t *testing.T) {
	qs := []Question{
		{
			ID:       "q1",
			Text:     "Consider the circuit below.",
			Points:   20,
			Criteria: "per part",
			Subs: []SubQuestion{
				{ID: "a", Text: "Find the total resistance.", Points: 8},
				{ID: "b", Text: "Find the current.", Points: 12, Criteria: "I = V/R"},
			},
		},
	}
	answers := AnswerSet{
		"q1": {Sub: map[string]string{"b": "2A"}},
	}

	items := Flatten(qs, answers)
	if len(items) != 2 {
		t.Fatalf("expected 2 items (parent contributes none), got %d", len(items))
	}

	if items[0].SubQuestionID != "a" || items[0].Points != 8 {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[0].Criteria != "per part" {
		t.Errorf("expected inherited criteria, got %q", items[0].Criteria)
	}
	if items[0].Answer != "" {
		t.Errorf("expected empty answer for unanswered part, got %q", items[0].Answer)
	}

	if items[1].Criteria != "I = V/R" {
		t.Errorf("expected own criteria to win, got %q", items[1].Criteria)
	}
	if items[1].Answer != "2A" {
		t.Errorf("answer = %q", items[1].Answer)
	}
	if items[1].Text != "Consider the circuit below.\nFind the current." {
		t.Errorf("composed text = %q", items[1].Text)
	}
}

func TestFlatten_CountAndOrder(t *testing.T) {
	qs := []Question{
		{ID: "q1", Text: "a", Points: 1},
		{ID: "q2", Text: "b", Points: 1, Subs: []SubQuestion{
			{ID: "i", Text: "x", Points: 1},
			{ID: "ii", Text: "y", Points: 1},
			{ID: "iii", Text: "z", Points: 1},
		}},
		{ID: "q3", Text: "c", Points: 1},
	}

	items := Flatten(qs, nil)
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	wantOrder := []string{"q1/", "q2/i", "q2/ii", "q2/iii", "q3/"}
	for i, w := range wantOrder {
		got := items[i].QuestionID + "/" + items[i].SubQuestionID
		if got != w {
			t.Errorf("position %d: got %s, want %s", i, got, w)
		}
	}
}

func TestFlatten_EmptyInput(t *testing.T) {
	if items := Flatten(nil, nil); len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestAnswerSet_UnmarshalJSON(t *testing.T) {
	raw := `{
		"q1": "plain text",
		"q2": {"a": "part one", "b": 42},
		"q3": 3.14,
		"q4": true,
		"q5": null
	}`

	var as AnswerSet
	if err := json.Unmarshal([]byte(raw), &as); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if as["q1"].Text != "plain text" {
		t.Errorf("q1 = %q", as["q1"].Text)
	}
	if as["q2"].Sub["a"] != "part one" {
		t.Errorf("q2/a = %q", as["q2"].Sub["a"])
	}
	if as["q2"].Sub["b"] != "42" {
		t.Errorf("expected numeric sub-answer coerced to string, got %q", as["q2"].Sub["b"])
	}
	if as["q3"].Text != "3.14" {
		t.Errorf("q3 = %q", as["q3"].Text)
	}
	if as["q4"].Text != "true" {
		t.Errorf("q4 = %q", as["q4"].Text)
	}
	if as["q5"].Text != "" {
		t.Errorf("null should coerce to empty, got %q", as["q5"].Text)
	}
}
