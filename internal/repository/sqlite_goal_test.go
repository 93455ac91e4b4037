package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalRepo_ListPreservesOrderAndRecordedValues(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Plan A", testutil.WithGoals(
		testutil.NewVolumeAtDoseGoal("Rectum", 0.5, 4000, testutil.WithRecorded(0.45, true)),
		testutil.NewDoseAtVolumeGoal("PTV", 7600, 0.95),
		testutil.NewVolumeAtDoseGoal("Bladder", 0.25, 6500, testutil.WithRecorded(0.3, false)),
	))
	require.NoError(t, SaveCase(ctx, db, testutil.NewTestCase("Prostate", testutil.WithPlans(plan))))

	goals, err := NewSQLiteGoalRepo(db).ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, goals, 3)

	assert.Equal(t, []string{"Rectum", "PTV", "Bladder"},
		[]string{goals[0].RegionName, goals[1].RegionName, goals[2].RegionName})

	assert.Equal(t, domain.VolumeAtDose{}, goals[0].Kind)
	require.NotNil(t, goals[0].Recorded)
	assert.InDelta(t, 0.45, goals[0].Recorded.Value, 1e-9)
	assert.True(t, goals[0].Recorded.Achieved)

	assert.Equal(t, domain.DoseAtVolume{}, goals[1].Kind)
	assert.Equal(t, domain.CriteriaAtLeast, goals[1].Criteria)
	assert.Nil(t, goals[1].Recorded)

	require.NotNil(t, goals[2].Recorded)
	assert.False(t, goals[2].Recorded.Achieved)
}

func TestGoalRepo_CreateRejectsMissingKind(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Plan A")
	require.NoError(t, SaveCase(ctx, db, testutil.NewTestCase("Prostate", testutil.WithPlans(plan))))

	g := testutil.NewVolumeAtDoseGoal("Rectum", 0.5, 4000)
	g.PlanID = plan.ID
	g.Kind = nil
	assert.ErrorIs(t, NewSQLiteGoalRepo(db).Create(ctx, g), domain.ErrUnknownGoalKind)
}

func TestGoalRepo_UnknownStoredKindFailsListing(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Plan A", testutil.WithGoals(testutil.NewVolumeAtDoseGoal("Rectum", 0.5, 4000)))
	require.NoError(t, SaveCase(ctx, db, testutil.NewTestCase("Prostate", testutil.WithPlans(plan))))

	_, err := db.Exec(`UPDATE goals SET kind = 'AverageDose'`)
	require.NoError(t, err)

	_, err = NewSQLiteGoalRepo(db).ListByPlan(ctx, plan.ID)
	assert.ErrorIs(t, err, domain.ErrUnknownGoalKind)
}
