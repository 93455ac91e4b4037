package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertPatient(ctx context.Context, tx db.DBTX, id, patientID string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO patients (id, patient_id, name, created_at) VALUES (?, ?, '', '2026-10-19T00:00:00Z')`,
		id, patientID)
	return err
}

// patientExists looks the row up in its own read transaction.
func patientExists(t *testing.T, uow *db.SQLiteUnitOfWork, patientID string) bool {
	t.Helper()
	var n int
	require.NoError(t, uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM patients WHERE patient_id = ?`, patientID).Scan(&n)
	}))
	return n > 0
}

func TestWithinTx_Commits(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertPatient(ctx, tx, "p1", "RT000001")
	})
	require.NoError(t, err)
	assert.True(t, patientExists(t, uow, "RT000001"))
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	uow := newUoW(t)
	failure := errors.New("goal conversion failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertPatient(ctx, tx, "p2", "RT000002"); err != nil {
			return err
		}
		return failure
	})
	assert.ErrorIs(t, err, failure)
	assert.False(t, patientExists(t, uow, "RT000002"))
}

func TestWithinTx_RollsBackOnConstraintViolation(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertPatient(ctx, tx, "p3", "RT000003"); err != nil {
			return err
		}
		// patient_id is UNIQUE.
		return insertPatient(ctx, tx, "p4", "RT000003")
	})
	require.Error(t, err)
	assert.False(t, patientExists(t, uow, "RT000003"))
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertPatient(ctx, tx, "p5", "RT000005")
			panic("boom")
		})
	})
	assert.False(t, patientExists(t, uow, "RT000005"))
}

func TestWithinReadTx_DiscardsWrites(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertPatient(ctx, tx, "p6", "RT000006")
	})
	require.NoError(t, err)
	assert.False(t, patientExists(t, uow, "RT000006"))
}

func TestWithinReadTx_PropagatesError(t *testing.T) {
	uow := newUoW(t)
	failure := errors.New("snapshot failed")

	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return failure
	})
	assert.ErrorIs(t, err, failure)
}

func TestWithinTx_CancelledContext(t *testing.T) {
	uow := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
