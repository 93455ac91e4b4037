package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
)

// SQLiteCaseRepo implements CaseRepo. Cases are returned with their patient
// filled in and without plans; use LoadCase for a full snapshot.
type SQLiteCaseRepo struct {
	db db.DBTX
}

func NewSQLiteCaseRepo(conn db.DBTX) *SQLiteCaseRepo {
	return &SQLiteCaseRepo{db: conn}
}

const caseColumns = `c.id, c.name, c.created_at, p.id, p.patient_id, p.name, p.created_at`

func (r *SQLiteCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	query := `INSERT INTO cases (id, patient_ref, name, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query,
		c.ID, c.Patient.ID, c.Name, formatTimestamp(c.CreatedAt),
	); err != nil {
		return fmt.Errorf("inserting case %q: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteCaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + `
		FROM cases c JOIN patients p ON p.id = c.patient_ref
		WHERE c.id = ?`
	return scanCase(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCaseRepo) GetByName(ctx context.Context, patientID, caseName string) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + `
		FROM cases c JOIN patients p ON p.id = c.patient_ref
		WHERE p.patient_id = ? AND c.name = ?`
	return scanCase(r.db.QueryRowContext(ctx, query, patientID, caseName))
}

func (r *SQLiteCaseRepo) List(ctx context.Context) ([]domain.CaseSummary, error) {
	query := `SELECT c.id, c.name, p.patient_id, p.name,
			(SELECT COUNT(*) FROM plans pl WHERE pl.case_id = c.id),
			(SELECT COUNT(*) FROM goals g JOIN plans pl ON pl.id = g.plan_id WHERE pl.case_id = c.id)
		FROM cases c JOIN patients p ON p.id = c.patient_ref
		ORDER BY p.patient_id, c.created_at, c.name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	defer closeRows(rows)

	var out []domain.CaseSummary
	for rows.Next() {
		var s domain.CaseSummary
		if err := rows.Scan(&s.CaseID, &s.CaseName, &s.PatientID, &s.PatientName, &s.PlanCount, &s.GoalCount); err != nil {
			return nil, fmt.Errorf("scanning case row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cases: %w", err)
	}
	return out, nil
}

func (r *SQLiteCaseRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting case: %w", err)
	}
	return nil
}

func scanCase(row *sql.Row) (*domain.Case, error) {
	var c domain.Case
	var caseCreated, patientCreated string
	err := row.Scan(
		&c.ID, &c.Name, &caseCreated,
		&c.Patient.ID, &c.Patient.PatientID, &c.Patient.Name, &patientCreated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("case: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning case: %w", err)
	}
	c.CreatedAt = parseTimestamp(caseCreated)
	c.Patient.CreatedAt = parseTimestamp(patientCreated)
	return &c, nil
}
