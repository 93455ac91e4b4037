package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/google/uuid"
)

var testPatientCounter atomic.Int64

// Case options
type CaseOption func(*domain.Case)

func WithPatientID(id string) CaseOption {
	return func(c *domain.Case) {
		c.Patient.PatientID = id
	}
}

func WithPlans(plans ...*domain.Plan) CaseOption {
	return func(c *domain.Case) {
		c.Plans = append(c.Plans, plans...)
	}
}

// NewTestCase builds an unsaved case with a fresh patient.
func NewTestCase(name string, opts ...CaseOption) *domain.Case {
	now := time.Now().UTC()
	n := testPatientCounter.Add(1)
	c := &domain.Case{
		ID:   uuid.New().String(),
		Name: name,
		Patient: domain.Patient{
			ID:        uuid.New().String(),
			PatientID: fmt.Sprintf("RT%06d", n),
			Name:      "Test^Patient",
			CreatedAt: now,
		},
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Plan options
type PlanOption func(*domain.Plan)

func WithGoals(goals ...*domain.Goal) PlanOption {
	return func(p *domain.Plan) {
		p.Goals = append(p.Goals, goals...)
	}
}

func WithDVH(roi string, points ...domain.DVHPoint) PlanOption {
	return func(p *domain.Plan) {
		p.DVHs = append(p.DVHs, domain.DVH{RegionName: roi, Points: points})
	}
}

func NewTestPlan(name string, opts ...PlanOption) *domain.Plan {
	p := &domain.Plan{ID: uuid.New().String(), Name: name}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Goal options
type GoalOption func(*domain.Goal)

func WithRecorded(value float64, achieved bool) GoalOption {
	return func(g *domain.Goal) {
		g.Recorded = &domain.RecordedResult{Value: value, Achieved: achieved}
	}
}

func WithCriteria(c domain.Criteria) GoalOption {
	return func(g *domain.Goal) {
		g.Criteria = c
	}
}

// NewVolumeAtDoseGoal builds "at most <level> of roi receives <doseCGy>".
func NewVolumeAtDoseGoal(roi string, level, doseCGy float64, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		ID:              uuid.New().String(),
		RegionName:      roi,
		Criteria:        domain.CriteriaAtMost,
		Kind:            domain.VolumeAtDose{},
		AcceptanceLevel: level,
		ParameterValue:  doseCGy,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewDoseAtVolumeGoal builds "at least <levelCGy> at <volume> of roi".
func NewDoseAtVolumeGoal(roi string, levelCGy, volume float64, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		ID:              uuid.New().String(),
		RegionName:      roi,
		Criteria:        domain.CriteriaAtLeast,
		Kind:            domain.DoseAtVolume{},
		AcceptanceLevel: levelCGy,
		ParameterValue:  volume,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RectumPoints is a simple cumulative DVH: 50% of the volume at 40 Gy,
// nothing above 60 Gy.
func RectumPoints() []domain.DVHPoint {
	return []domain.DVHPoint{
		{DoseCGy: 0, Volume: 1},
		{DoseCGy: 1000, Volume: 1},
		{DoseCGy: 4000, Volume: 0.5},
		{DoseCGy: 6000, Volume: 0},
	}
}
