package cli

import (
	"testing"

	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/teatest"
	"github.com/stretchr/testify/assert"
)

func reviewFixture() (*domain.Case, *domain.ResultTable) {
	c := &domain.Case{
		Name:    "Prostate",
		Patient: domain.Patient{PatientID: "RT000123"},
		Plans:   []*domain.Plan{{Name: "Plan A"}, {Name: "Plan B"}},
	}
	table := &domain.ResultTable{Rows: []domain.NormalizedRow{
		{PlanName: "Plan B", Kind: domain.VolumeAtDose{}, RegionName: "Rectum", Criteria: domain.CriteriaAtMost, AcceptanceLevel: 50, ParameterLimit: 40.8, AchievedValue: 47, Achieved: true},
		{PlanName: "Plan B", Kind: domain.DoseAtVolume{}, RegionName: "PTV", Criteria: domain.CriteriaAtLeast, AcceptanceLevel: 57, ParameterLimit: 98, AchievedValue: 57.5, Achieved: false},
	}}
	return c, table
}

func TestReviewModel_ShowsAllRows(t *testing.T) {
	d := teatest.New(t, newReviewModel(reviewFixture()), teatest.WithSize(120, 30))
	d.DrainInit()

	d.RequireViewContains("RT000123  Prostate", "Rectum", "PTV", "40.80", "57.50", "FALSE", "1/2")
}

func TestReviewModel_SelectionDetail(t *testing.T) {
	d := teatest.New(t, newReviewModel(reviewFixture()), teatest.WithSize(120, 30))
	d.DrainInit()

	d.RequireViewContains("50.00 %", "40.80 Gy")

	d.Keys("down")
	d.RequireViewContains("57.00 Gy", "98.00 %", "57.50 Gy")
}

func TestReviewModel_FailedOnlyToggle(t *testing.T) {
	d := teatest.New(t, newReviewModel(reviewFixture()), teatest.WithSize(120, 30))
	d.DrainInit()

	d.Keys("f")
	d.RequireViewContains("[failed only]", "PTV")
	assert.NotContains(t, d.View(), "Rectum")

	d.Keys("f")
	d.RequireViewContains("Rectum", "PTV")
	assert.NotContains(t, d.View(), "[failed only]")
}

func TestReviewModel_AllMetMessage(t *testing.T) {
	c, table := reviewFixture()
	table.Rows = table.Rows[:1]

	d := teatest.New(t, newReviewModel(c, table), teatest.WithSize(120, 30))
	d.Keys("f")
	d.RequireViewContains("Every clinical goal is met.")
}

func TestReviewModel_EmptyTable(t *testing.T) {
	c, _ := reviewFixture()
	d := teatest.New(t, newReviewModel(c, &domain.ResultTable{}), teatest.WithSize(120, 30))
	d.RequireViewContains("No clinical goals found.", "0/0")
}

func TestReviewModel_Quit(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			d := teatest.New(t, newReviewModel(reviewFixture()), teatest.WithSize(120, 30))
			d.Keys(key)
			assert.True(t, d.Quitting)
		})
	}
}
