package store

import (
	"context"
	"database/sql"
	"fmt"
)

// runRepo implements RunRepo, the append-only grading-run ledger.
type runRepo struct {
	db *sql.DB
}

func (r *runRepo) Append(ctx context.Context, run *GradingRun) error {
	detail := string(run.Detail)
	if detail == "" {
		detail = "[]"
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO grading_runs (session_id, timestamp, total_score, detail)
		VALUES (?, ?, ?, ?)`,
		run.SessionID, run.Timestamp, run.TotalScore, detail)
	if err != nil {
		return fmt.Errorf("insert grading run: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		run.ID = id
	}
	return nil
}

func (r *runRepo) Recent(ctx context.Context, opts QueryOpts) ([]GradingRun, error) {
	query := `
		SELECT id, session_id, timestamp, total_score, detail
		FROM grading_runs ORDER BY id DESC`
	args := []any{}
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query grading runs: %w", err)
	}
	defer rows.Close()

	var runs []GradingRun
	for rows.Next() {
		var run GradingRun
		var detail string
		if err := rows.Scan(&run.ID, &run.SessionID, &run.Timestamp, &run.TotalScore, &detail); err != nil {
			return nil, fmt.Errorf("scan grading run: %w", err)
		}
		run.Detail = []byte(detail)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate grading runs: %w", err)
	}
	return runs, nil
}
