package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated CaseSchema into a domain case ready for
// persistence. Call ValidateCaseSchema first; Convert only re-checks what it
// has to parse.
func Convert(schema *CaseSchema) (*domain.Case, error) {
	now := time.Now().UTC()

	c := &domain.Case{
		ID:   uuid.New().String(),
		Name: schema.Case.Name,
		Patient: domain.Patient{
			ID:        uuid.New().String(),
			PatientID: schema.Patient.PatientID,
			Name:      schema.Patient.Name,
			CreatedAt: now,
		},
		CreatedAt: now,
	}

	c.Plans = make([]*domain.Plan, 0, len(schema.Plans))
	for i, p := range schema.Plans {
		plan := &domain.Plan{
			ID:         uuid.New().String(),
			CaseID:     c.ID,
			Name:       p.Name,
			OrderIndex: i,
		}

		for j, g := range p.Goals {
			goal, err := convertGoal(g)
			if err != nil {
				return nil, fmt.Errorf("plan %q goal %d: %w", p.Name, j, err)
			}
			goal.PlanID = plan.ID
			goal.OrderIndex = j
			plan.Goals = append(plan.Goals, goal)
		}

		for _, d := range p.DVHs {
			plan.DVHs = append(plan.DVHs, toDomainDVH(d))
		}
		c.Plans = append(c.Plans, plan)
	}

	return c, nil
}

func convertGoal(g GoalImport) (*domain.Goal, error) {
	kind, err := domain.ParseGoalKind(g.Type)
	if err != nil {
		return nil, err
	}
	criteria, err := domain.ParseCriteria(g.Criteria)
	if err != nil {
		return nil, err
	}

	goal := &domain.Goal{
		ID:         uuid.New().String(),
		RegionName: g.ROI,
		Criteria:   criteria,
		Kind:       kind,
	}
	if g.AcceptanceLevel != nil {
		goal.AcceptanceLevel = *g.AcceptanceLevel
	}
	if g.ParameterValue != nil {
		goal.ParameterValue = *g.ParameterValue
	}
	if g.Recorded != nil {
		goal.Recorded = &domain.RecordedResult{Value: g.Recorded.Value, Achieved: g.Recorded.Achieved}
	}
	return goal, nil
}

func toDomainDVH(d DVHImport) domain.DVH {
	out := domain.DVH{RegionName: d.ROI, Points: make([]domain.DVHPoint, len(d.Points))}
	for i, p := range d.Points {
		out.Points[i] = domain.DVHPoint{DoseCGy: p.DoseCGy, Volume: p.Volume}
	}
	return out
}
