package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
)

// SQLitePatientRepo implements PatientRepo using a SQLite database.
type SQLitePatientRepo struct {
	db db.DBTX
}

func NewSQLitePatientRepo(conn db.DBTX) *SQLitePatientRepo {
	return &SQLitePatientRepo{db: conn}
}

func (r *SQLitePatientRepo) Upsert(ctx context.Context, p *domain.Patient) error {
	query := `INSERT INTO patients (id, patient_id, name, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(patient_id) DO UPDATE SET name = excluded.name
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		p.ID, p.PatientID, p.Name, formatTimestamp(p.CreatedAt),
	).Scan(&p.ID); err != nil {
		return fmt.Errorf("upserting patient %q: %w", p.PatientID, err)
	}
	return nil
}

func (r *SQLitePatientRepo) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, patient_id, name, created_at FROM patients WHERE id = ?`, id)
	return scanPatient(row)
}

func (r *SQLitePatientRepo) GetByPatientID(ctx context.Context, patientID string) (*domain.Patient, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, patient_id, name, created_at FROM patients WHERE patient_id = ?`, patientID)
	return scanPatient(row)
}

func scanPatient(row *sql.Row) (*domain.Patient, error) {
	var p domain.Patient
	var createdAt string
	if err := row.Scan(&p.ID, &p.PatientID, &p.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("patient: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning patient: %w", err)
	}
	p.CreatedAt = parseTimestamp(createdAt)
	return &p, nil
}
