package app

import (
	"context"

	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/importer"
)

type ExportUseCase interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResponse, error)
	Preview(ctx context.Context, req PreviewRequest) (*PreviewResponse, error)
}

type ImportResult struct {
	Case      *domain.Case
	PlanCount int
	GoalCount int
	DVHCount  int
}

type ImportCaseUseCase interface {
	ImportCase(ctx context.Context, filePath string) (*ImportResult, error)
	ImportCaseFromSchema(ctx context.Context, schema *importer.CaseSchema) (*ImportResult, error)
}

// ContextUseCase manages the "current case" that a zero-argument export
// runs against.
type ContextUseCase interface {
	SetCurrent(ctx context.Context, patientID, caseName string) (*domain.Case, error)
	SetCurrentByID(ctx context.Context, caseID string) (*domain.Case, error)
	Current(ctx context.Context) (*domain.Case, error)
	ListCases(ctx context.Context) ([]domain.CaseSummary, error)
}
