package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
)

type SQLiteDVHRepo struct {
	db db.DBTX
}

func NewSQLiteDVHRepo(conn db.DBTX) *SQLiteDVHRepo {
	return &SQLiteDVHRepo{db: conn}
}

// Save replaces any stored curve for the same plan and ROI.
func (r *SQLiteDVHRepo) Save(ctx context.Context, planID string, d domain.DVH) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM dvh_points WHERE plan_id = ? AND roi_name = ?`, planID, d.RegionName,
	); err != nil {
		return fmt.Errorf("clearing dvh %q: %w", d.RegionName, err)
	}
	for i, p := range d.Points {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO dvh_points (plan_id, roi_name, seq, dose_cgy, volume) VALUES (?, ?, ?, ?, ?)`,
			planID, d.RegionName, i, p.DoseCGy, p.Volume,
		); err != nil {
			return fmt.Errorf("inserting dvh %q point %d: %w", d.RegionName, i, err)
		}
	}
	return nil
}

// ListByPlan returns one DVH per ROI, ROIs in first-stored order.
func (r *SQLiteDVHRepo) ListByPlan(ctx context.Context, planID string) ([]domain.DVH, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT roi_name, dose_cgy, volume FROM dvh_points WHERE plan_id = ? ORDER BY rowid`, planID)
	if err != nil {
		return nil, fmt.Errorf("listing dvh points: %w", err)
	}
	defer closeRows(rows)

	var out []domain.DVH
	index := make(map[string]int)
	for rows.Next() {
		var roi string
		var p domain.DVHPoint
		if err := rows.Scan(&roi, &p.DoseCGy, &p.Volume); err != nil {
			return nil, fmt.Errorf("scanning dvh point: %w", err)
		}
		i, ok := index[roi]
		if !ok {
			i = len(out)
			index[roi] = i
			out = append(out, domain.DVH{RegionName: roi})
		}
		out[i].Points = append(out[i].Points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dvh points: %w", err)
	}
	return out, nil
}
