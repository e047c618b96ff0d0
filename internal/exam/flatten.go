package exam

// Item is one gradable unit: a leaf question, or one sub-question of a
// multi-part question, paired with the student's answer text.
type Item struct {
	QuestionID    string
	SubQuestionID string // empty for questions without sub-questions
	Text          string
	Points        float64
	Criteria      string
	Answer        string
}

// Flatten turns an ordered question list into an ordered Item list.
// A question with sub-questions contributes one item per sub-question and
// none for the parent; a question without contributes exactly one item.
// Missing answers degrade to the empty string. Flatten never fails.
func Flatten(questions []Question, answers AnswerSet) []Item {
	var items []Item

	for _, q := range questions {
		ans := answers[q.ID]

		if len(q.Subs) == 0 {
			items = append(items, Item{
				QuestionID: q.ID,
				Text:       q.Text,
				Points:     q.Points,
				Criteria:   q.Criteria,
				Answer:     ans.Text,
			})
			continue
		}

		for _, sub := range q.Subs {
			// A bare-string answer to a multi-part question carries no
			// sub-question key, so every part reads as unanswered.
			criteria := sub.Criteria
			if criteria == "" {
				criteria = q.Criteria
			}
			items = append(items, Item{
				QuestionID:    q.ID,
				SubQuestionID: sub.ID,
				Text:          composeText(q.Text, sub.Text),
				Points:        sub.Points,
				Criteria:      criteria,
				Answer:        ans.Sub[sub.ID],
			})
		}
	}

	return items
}

// composeText joins the parent question stem with the sub-question text.
func composeText(parent, sub string) string {
	if parent == "" {
		return sub
	}
	if sub == "" {
		return parent
	}
	return parent + "\n" + sub
}
