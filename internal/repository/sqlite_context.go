package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/db"
)

// SQLiteContextRepo stores the single "current case" selection that the
// zero-argument export runs against.
type SQLiteContextRepo struct {
	db db.DBTX
}

func NewSQLiteContextRepo(conn db.DBTX) *SQLiteContextRepo {
	return &SQLiteContextRepo{db: conn}
}

func (r *SQLiteContextRepo) SetCurrentCase(ctx context.Context, caseID string) error {
	query := `INSERT INTO current_context (id, case_id, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET case_id = excluded.case_id, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, caseID, nowUTC()); err != nil {
		return fmt.Errorf("setting current case: %w", err)
	}
	return nil
}

func (r *SQLiteContextRepo) CurrentCaseID(ctx context.Context) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT case_id FROM current_context WHERE id = 1`).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoCurrentCase
		}
		return "", fmt.Errorf("reading current case: %w", err)
	}
	return id, nil
}

func (r *SQLiteContextRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM current_context`); err != nil {
		return fmt.Errorf("clearing current case: %w", err)
	}
	return nil
}
