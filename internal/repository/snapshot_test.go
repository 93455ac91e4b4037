package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/goalaudit/internal/db"
	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_SaveThenLoadKeepsOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := testutil.NewTestUoW(database)

	c := testutil.NewTestCase("Prostate", testutil.WithPlans(
		testutil.NewTestPlan("Zeta", testutil.WithGoals(
			testutil.NewVolumeAtDoseGoal("Rectum", 0.5, 4000),
			testutil.NewDoseAtVolumeGoal("PTV", 7600, 0.95),
		), testutil.WithDVH("Rectum", testutil.RectumPoints()...)),
		testutil.NewTestPlan("Alpha", testutil.WithGoals(
			testutil.NewVolumeAtDoseGoal("Bladder", 0.25, 6500),
		)),
	))
	require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return SaveCase(ctx, tx, c)
	}))

	var loaded *domain.Case
	require.NoError(t, uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		loaded, err = LoadCase(ctx, tx, c.ID)
		return err
	}))

	require.Len(t, loaded.Plans, 2)
	assert.Equal(t, "Zeta", loaded.Plans[0].Name)
	assert.Equal(t, "Alpha", loaded.Plans[1].Name)
	require.Len(t, loaded.Plans[0].Goals, 2)
	assert.Equal(t, "Rectum", loaded.Plans[0].Goals[0].RegionName)
	assert.Equal(t, "PTV", loaded.Plans[0].Goals[1].RegionName)
	assert.Equal(t, c.Patient.PatientID, loaded.Patient.PatientID)
	assert.Equal(t, 3, loaded.GoalCount())

	dvh, ok := loaded.Plans[0].DVHFor("Rectum")
	require.True(t, ok)
	assert.Equal(t, testutil.RectumPoints(), dvh.Points)
}

func TestSnapshot_LoadMissingCase(t *testing.T) {
	database := testutil.NewTestDB(t)

	_, err := LoadCase(context.Background(), database, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshot_FailedSaveRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: assert.AnError}

	c := testutil.NewTestCase("Prostate", testutil.WithPlans(
		testutil.NewTestPlan("Plan A", testutil.WithGoals(
			testutil.NewVolumeAtDoseGoal("Rectum", 0.5, 4000),
			testutil.NewDoseAtVolumeGoal("PTV", 7600, 0.95),
		)),
	))
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return SaveCase(ctx, tx, c)
	})
	require.ErrorIs(t, err, assert.AnError)

	for _, table := range []string{"patients", "cases", "plans", "goals"} {
		var n int
		require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
		assert.Zero(t, n, table)
	}
}
