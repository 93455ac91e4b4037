package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/goalaudit/internal/app"
	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/importer"
	"github.com/alexanderramin/goalaudit/internal/logger"
	"github.com/alexanderramin/goalaudit/internal/repository"
)

// ErrCaseExists is returned when the imported patient already has a case of
// the same name.
var ErrCaseExists = errors.New("case already exists")

type importService struct {
	uow      db.UnitOfWork
	log      logger.Logger
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, log logger.Logger, observers ...UseCaseObserver) ImportService {
	if log == nil {
		log = logger.Nop()
	}
	return &importService{uow: uow, log: log, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportCase(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadCaseSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading case file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportCaseFromSchema(ctx context.Context, schema *importer.CaseSchema) (*app.ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.CaseSchema) (result *app.ImportResult, err error) {
	fields := map[string]any{"patient": schema.Patient.PatientID, "case": schema.Case.Name}
	defer observe(ctx, s.observer, "import-case", time.Now().UTC(), fields, &err)

	if errs := importer.ValidateCaseSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	c, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting case file: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		_, err := repository.NewSQLiteCaseRepo(tx).GetByName(ctx, c.Patient.PatientID, c.Name)
		if err == nil {
			return fmt.Errorf("%w: %q for patient %s", ErrCaseExists, c.Name, c.Patient.PatientID)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		return repository.SaveCase(ctx, tx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("importing case: %w", err)
	}

	result = &app.ImportResult{Case: c, PlanCount: len(c.Plans)}
	for _, p := range c.Plans {
		result.GoalCount += len(p.Goals)
		result.DVHCount += len(p.DVHs)
	}
	fields["plans"] = result.PlanCount
	fields["goals"] = result.GoalCount
	s.log.Info("case imported", "patient", c.Patient.PatientID, "case", c.Name, "plans", result.PlanCount, "goals", result.GoalCount)
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("case file validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
