package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/goalaudit/internal/domain"
)

// ErrNotFound is wrapped by every lookup that finds no row.
var ErrNotFound = errors.New("not found")

// ErrNoCurrentCase is returned when no case has been made current.
var ErrNoCurrentCase = errors.New("no current case selected")

type PatientRepo interface {
	// Upsert inserts p or, when PatientID already exists, updates its name
	// and sets p.ID to the stored ID.
	Upsert(ctx context.Context, p *domain.Patient) error
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	GetByPatientID(ctx context.Context, patientID string) (*domain.Patient, error)
}

type CaseRepo interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	GetByName(ctx context.Context, patientID, caseName string) (*domain.Case, error)
	List(ctx context.Context) ([]domain.CaseSummary, error)
	Delete(ctx context.Context, id string) error
}

type PlanRepo interface {
	Create(ctx context.Context, p *domain.Plan) error
	ListByCase(ctx context.Context, caseID string) ([]*domain.Plan, error)
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	ListByPlan(ctx context.Context, planID string) ([]*domain.Goal, error)
}

type DVHRepo interface {
	Save(ctx context.Context, planID string, d domain.DVH) error
	ListByPlan(ctx context.Context, planID string) ([]domain.DVH, error)
}

type ContextRepo interface {
	SetCurrentCase(ctx context.Context, caseID string) error
	CurrentCaseID(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
