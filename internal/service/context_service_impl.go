package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/repository"
)

type contextService struct {
	cases    repository.CaseRepo
	contexts repository.ContextRepo
	uow      db.UnitOfWork
}

func NewContextService(cases repository.CaseRepo, contexts repository.ContextRepo, uow db.UnitOfWork) ContextService {
	return &contextService{cases: cases, contexts: contexts, uow: uow}
}

func (s *contextService) SetCurrent(ctx context.Context, patientID, caseName string) (*domain.Case, error) {
	var c *domain.Case
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		c, err = repository.NewSQLiteCaseRepo(tx).GetByName(ctx, patientID, caseName)
		if err != nil {
			return fmt.Errorf("case %q for patient %s: %w", caseName, patientID, err)
		}
		return repository.NewSQLiteContextRepo(tx).SetCurrentCase(ctx, c.ID)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contextService) SetCurrentByID(ctx context.Context, caseID string) (*domain.Case, error) {
	var c *domain.Case
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		if c, err = repository.NewSQLiteCaseRepo(tx).GetByID(ctx, caseID); err != nil {
			return err
		}
		return repository.NewSQLiteContextRepo(tx).SetCurrentCase(ctx, c.ID)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contextService) Current(ctx context.Context) (*domain.Case, error) {
	id, err := s.contexts.CurrentCaseID(ctx)
	if err != nil {
		return nil, err
	}
	return s.cases.GetByID(ctx, id)
}

func (s *contextService) ListCases(ctx context.Context) ([]domain.CaseSummary, error) {
	return s.cases.List(ctx)
}
