package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// HistoryRepo handles persistence for answered questions.
type HistoryRepo struct{}

// Record inserts a solve history row.
func (r *HistoryRepo) Record(ctx context.Context, db *sql.DB, rec domain.SolveRecord) error {
	const q = `INSERT INTO solve_history (id, question, subject, confidence, final_answer, method, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, q,
		rec.ID,
		rec.Question,
		rec.Subject,
		rec.Confidence,
		rec.FinalAnswer,
		rec.Method,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record solve: %w", err)
	}
	return nil
}

// ListRecent returns the most recently answered questions, newest first.
func (r *HistoryRepo) ListRecent(ctx context.Context, db *sql.DB, limit int) ([]domain.SolveRecord, error) {
	const q = `SELECT id, question, subject, confidence, final_answer, method, created_at
FROM solve_history
ORDER BY created_at DESC, id DESC
LIMIT ?`

	rows, err := db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list solve history: %w", err)
	}
	defer rows.Close()
	return scanSolveRecords(rows)
}

// ListBySubject returns the most recent answers for one subject, newest
// first.
func (r *HistoryRepo) ListBySubject(ctx context.Context, db *sql.DB, subject domain.Subject, limit int) ([]domain.SolveRecord, error) {
	const q = `SELECT id, question, subject, confidence, final_answer, method, created_at
FROM solve_history
WHERE subject = ?
ORDER BY created_at DESC, id DESC
LIMIT ?`

	rows, err := db.QueryContext(ctx, q, subject, limit)
	if err != nil {
		return nil, fmt.Errorf("list solve history by subject: %w", err)
	}
	defer rows.Close()
	return scanSolveRecords(rows)
}

// CountBySubject returns how many questions were answered per subject.
func (r *HistoryRepo) CountBySubject(ctx context.Context, db *sql.DB) (map[domain.Subject]int, error) {
	const q = `SELECT subject, COUNT(*) FROM solve_history GROUP BY subject`

	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("count solve history: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Subject]int)
	for rows.Next() {
		var subject domain.Subject
		var n int
		if err := rows.Scan(&subject, &n); err != nil {
			return nil, fmt.Errorf("scan subject count: %w", err)
		}
		counts[subject] = n
	}
	return counts, rows.Err()
}

func scanSolveRecords(rows *sql.Rows) ([]domain.SolveRecord, error) {
	var records []domain.SolveRecord
	for rows.Next() {
		var rec domain.SolveRecord
		if err := rows.Scan(&rec.ID, &rec.Question, &rec.Subject, &rec.Confidence,
			&rec.FinalAnswer, &rec.Method, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan solve record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
