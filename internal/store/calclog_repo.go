package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// CalcLogRepo handles persistence for calculator invocations.
type CalcLogRepo struct{}

// Record inserts a calculator history row.
func (r *CalcLogRepo) Record(ctx context.Context, db *sql.DB, rec domain.CalcRecord) error {
	const q = `INSERT INTO calc_history (id, kind, input, output, success, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, q,
		rec.ID,
		rec.Kind,
		rec.Input,
		rec.Output,
		rec.Success,
		rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record calc: %w", err)
	}
	return nil
}

// ListRecent returns the most recent calculator invocations, newest first.
func (r *CalcLogRepo) ListRecent(ctx context.Context, db *sql.DB, limit int) ([]domain.CalcRecord, error) {
	const q = `SELECT id, kind, input, output, success, created_at
FROM calc_history
ORDER BY created_at DESC, id DESC
LIMIT ?`

	rows, err := db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list calc history: %w", err)
	}
	defer rows.Close()

	var records []domain.CalcRecord
	for rows.Next() {
		var rec domain.CalcRecord
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Input, &rec.Output,
			&rec.Success, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan calc record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
