package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
)

// questionRepo implements QuestionRepo. Sub-questions are stored as a JSON
// column: the bank is read whole and in order, never queried per part.
type questionRepo struct {
	db *sql.DB
}

func (r *questionRepo) All(ctx context.Context) ([]exam.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, points, criteria, model_answer, sub_questions
		FROM questions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []exam.Question
	for rows.Next() {
		var q exam.Question
		var subs string
		if err := rows.Scan(&q.ID, &q.Text, &q.Points, &q.Criteria, &q.ModelAnswer, &subs); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(subs), &q.Subs); err != nil {
			return nil, fmt.Errorf("parse sub-questions for %s: %w", q.ID, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}

func (r *questionRepo) ReplaceAll(ctx context.Context, questions []exam.Question) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions`); err != nil {
		return fmt.Errorf("clear questions: %w", err)
	}

	for i, q := range questions {
		subs, err := json.Marshal(q.Subs)
		if err != nil {
			return fmt.Errorf("marshal sub-questions for %s: %w", q.ID, err)
		}
		if q.Subs == nil {
			subs = []byte("[]")
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO questions (id, position, text, points, criteria, model_answer, sub_questions)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			q.ID, i, q.Text, q.Points, q.Criteria, q.ModelAnswer, string(subs))
		if err != nil {
			return fmt.Errorf("insert question %s: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
