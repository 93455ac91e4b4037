package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
)

type SQLiteGoalRepo struct {
	db db.DBTX
}

func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, g *domain.Goal) error {
	if g.Kind == nil {
		return fmt.Errorf("inserting goal for ROI %q: %w", g.RegionName, domain.ErrUnknownGoalKind)
	}

	var recordedValue *float64
	var recordedAchieved interface{}
	if g.Recorded != nil {
		recordedValue = &g.Recorded.Value
		recordedAchieved = boolToInt(g.Recorded.Achieved)
	}

	query := `INSERT INTO goals (id, plan_id, roi_name, criteria, kind, acceptance_level,
		parameter_value, recorded_value, recorded_achieved, order_index)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		g.ID,
		g.PlanID,
		g.RegionName,
		string(g.Criteria),
		g.Kind.String(),
		g.AcceptanceLevel,
		g.ParameterValue,
		nullableFloat(recordedValue),
		recordedAchieved,
		g.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("inserting goal for ROI %q: %w", g.RegionName, err)
	}
	return nil
}

// ListByPlan returns goals in insertion order. A stored kind that is not
// recognized fails the whole listing.
func (r *SQLiteGoalRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.Goal, error) {
	query := `SELECT id, plan_id, roi_name, criteria, kind, acceptance_level, parameter_value,
			recorded_value, recorded_achieved, order_index
		FROM goals WHERE plan_id = ? ORDER BY order_index, rowid`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer closeRows(rows)

	var goals []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func scanGoal(rows *sql.Rows) (*domain.Goal, error) {
	var g domain.Goal
	var criteria, kind string
	var recValue sql.NullFloat64
	var recAchieved sql.NullInt64

	if err := rows.Scan(
		&g.ID, &g.PlanID, &g.RegionName, &criteria, &kind,
		&g.AcceptanceLevel, &g.ParameterValue,
		&recValue, &recAchieved, &g.OrderIndex,
	); err != nil {
		return nil, fmt.Errorf("scanning goal row: %w", err)
	}

	var err error
	if g.Kind, err = domain.ParseGoalKind(kind); err != nil {
		return nil, fmt.Errorf("goal %s (ROI %q): %w", g.ID, g.RegionName, err)
	}
	g.Criteria = domain.Criteria(criteria)

	if recValue.Valid {
		g.Recorded = &domain.RecordedResult{
			Value:    recValue.Float64,
			Achieved: recAchieved.Valid && intToBool(recAchieved.Int64),
		}
	}
	return &g, nil
}
