package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
)

type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	query := `INSERT INTO plans (id, case_id, name, order_index) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.CaseID, p.Name, p.OrderIndex); err != nil {
		return fmt.Errorf("inserting plan %q: %w", p.Name, err)
	}
	return nil
}

// ListByCase returns plans in insertion order.
func (r *SQLitePlanRepo) ListByCase(ctx context.Context, caseID string) ([]*domain.Plan, error) {
	query := `SELECT id, case_id, name, order_index FROM plans
		WHERE case_id = ? ORDER BY order_index, rowid`
	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer closeRows(rows)

	var plans []*domain.Plan
	for rows.Next() {
		var p domain.Plan
		if err := rows.Scan(&p.ID, &p.CaseID, &p.Name, &p.OrderIndex); err != nil {
			return nil, fmt.Errorf("scanning plan row: %w", err)
		}
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}
