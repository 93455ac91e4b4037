package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
)

// LoadCase reads a complete case (patient, plans, goals and DVHs) through
// conn. Run it inside UnitOfWork.WithinReadTx for a consistent snapshot.
func LoadCase(ctx context.Context, conn db.DBTX, caseID string) (*domain.Case, error) {
	c, err := NewSQLiteCaseRepo(conn).GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	plans, err := NewSQLitePlanRepo(conn).ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	goals := NewSQLiteGoalRepo(conn)
	dvhs := NewSQLiteDVHRepo(conn)
	for _, p := range plans {
		if p.Goals, err = goals.ListByPlan(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("plan %q: %w", p.Name, err)
		}
		if p.DVHs, err = dvhs.ListByPlan(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("plan %q: %w", p.Name, err)
		}
	}
	c.Plans = plans
	return c, nil
}

// SaveCase writes a new case with all of its plans, goals and DVHs through
// conn. The patient is upserted by PatientID. Plan and goal order indexes
// are taken from slice position.
func SaveCase(ctx context.Context, conn db.DBTX, c *domain.Case) error {
	if err := NewSQLitePatientRepo(conn).Upsert(ctx, &c.Patient); err != nil {
		return err
	}
	if err := NewSQLiteCaseRepo(conn).Create(ctx, c); err != nil {
		return err
	}

	plans := NewSQLitePlanRepo(conn)
	goals := NewSQLiteGoalRepo(conn)
	dvhs := NewSQLiteDVHRepo(conn)
	for i, p := range c.Plans {
		p.CaseID = c.ID
		p.OrderIndex = i
		if err := plans.Create(ctx, p); err != nil {
			return err
		}
		for j, g := range p.Goals {
			g.PlanID = p.ID
			g.OrderIndex = j
			if err := goals.Create(ctx, g); err != nil {
				return fmt.Errorf("plan %q: %w", p.Name, err)
			}
		}
		for _, d := range p.DVHs {
			if err := dvhs.Save(ctx, p.ID, d); err != nil {
				return fmt.Errorf("plan %q: %w", p.Name, err)
			}
		}
	}
	return nil
}
