package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/goalaudit/internal/app"
	"github.com/alexanderramin/goalaudit/internal/audit"
	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/evaluation"
	"github.com/alexanderramin/goalaudit/internal/export"
	"github.com/alexanderramin/goalaudit/internal/logger"
	"github.com/alexanderramin/goalaudit/internal/repository"
)

// ExportOptions are the configured defaults of the export use case.
type ExportOptions struct {
	Dir    string
	Policy audit.Policy
	// Now defaults to time.Now. The export file name carries its date.
	Now func() time.Time
}

type exportService struct {
	uow      db.UnitOfWork
	eval     evaluation.DoseEvaluator
	opts     ExportOptions
	log      logger.Logger
	observer UseCaseObserver
}

func NewExportService(
	uow db.UnitOfWork,
	eval evaluation.DoseEvaluator,
	opts ExportOptions,
	log logger.Logger,
	observers ...UseCaseObserver,
) ExportService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if log == nil {
		log = logger.Nop()
	}
	return &exportService{
		uow:      uow,
		eval:     eval,
		opts:     opts,
		log:      log,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) Export(ctx context.Context, req app.ExportRequest) (resp *app.ExportResponse, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "export", time.Now().UTC(), fields, &err)

	c, err := s.loadCase(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}
	fields["patient"] = c.Patient.PatientID
	fields["case"] = c.Name

	table, err := s.aggregate(ctx, c, req.SkipFailedGoals)
	if err != nil {
		return nil, err
	}

	dir := req.OutputDir
	if dir == "" {
		dir = s.opts.Dir
	}
	now := s.opts.Now()
	if req.Now != nil {
		now = *req.Now
	}
	path := export.Path(dir, c.Patient.PatientID, now)

	if err := export.WriteFile(path, table); err != nil {
		return nil, &app.ExportError{Code: app.ExportErrIO, Message: "writing " + path, Err: err}
	}
	fields["rows"] = len(table.Rows)
	s.log.Info("export written", "path", path, "rows", len(table.Rows), "skipped", len(table.Skipped))

	return &app.ExportResponse{
		Path:      path,
		PatientID: c.Patient.PatientID,
		CaseName:  c.Name,
		RowCount:  len(table.Rows),
		Skipped:   table.Skipped,
		Table:     table,
	}, nil
}

func (s *exportService) Preview(ctx context.Context, req app.PreviewRequest) (*app.PreviewResponse, error) {
	c, err := s.loadCase(ctx, req.CaseID)
	if err != nil {
		return nil, err
	}
	table, err := s.aggregate(ctx, c, req.SkipFailedGoals)
	if err != nil {
		return nil, err
	}
	return &app.PreviewResponse{Case: c, Table: table}, nil
}

// loadCase reads the requested case, or the current one when caseID is
// empty, from a single read snapshot.
func (s *exportService) loadCase(ctx context.Context, caseID string) (*domain.Case, error) {
	var c *domain.Case
	err := s.uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		id := caseID
		if id == "" {
			var err error
			if id, err = repository.NewSQLiteContextRepo(tx).CurrentCaseID(ctx); err != nil {
				return err
			}
		}
		var err error
		c, err = repository.LoadCase(ctx, tx, id)
		return err
	})
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, repository.ErrNoCurrentCase):
		return nil, &app.ExportError{
			Code:    app.ExportErrContextUnavailable,
			Message: "no current patient case; select one with 'goalaudit case use'",
			Err:     err,
		}
	case errors.Is(err, repository.ErrNotFound):
		return nil, &app.ExportError{Code: app.ExportErrContextUnavailable, Message: "case not found", Err: err}
	case errors.Is(err, domain.ErrUnknownGoalKind):
		return nil, &app.ExportError{Code: app.ExportErrUnrecognizedKind, Message: "stored case has a goal of unknown kind", Err: err}
	}
	return nil, fmt.Errorf("loading case: %w", err)
}

func (s *exportService) aggregate(ctx context.Context, c *domain.Case, skipFailed bool) (*domain.ResultTable, error) {
	policy := s.opts.Policy
	if skipFailed {
		policy = audit.PolicySkip
	}

	log := s.log.With("patient", c.Patient.PatientID, "case", c.Name)
	table, err := audit.NewAggregator(s.eval, policy, log).Aggregate(ctx, c)
	if err == nil {
		return table, nil
	}

	var gerr *audit.GoalError
	if !errors.As(err, &gerr) {
		return nil, err
	}
	if audit.IsUnknownKind(err) {
		return nil, &app.ExportError{Code: app.ExportErrUnrecognizedKind, Message: "export aborted", Err: err}
	}
	return nil, &app.ExportError{Code: app.ExportErrEvaluation, Message: "export aborted", Err: err}
}
