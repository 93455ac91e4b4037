// Package audit turns the clinical goals of a case into a normalized result
// table: every goal is evaluated, converted into percent/Gy display units
// and emitted as one row, whichever of the two goal kinds produced it.
package audit

import (
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/domain"
)

// EvaluatedGoal is a goal together with the dose-evaluation answers for it.
type EvaluatedGoal struct {
	Goal          *domain.Goal
	AchievedValue float64
	Achieved      bool
}

// Normalize projects one evaluated goal into a display row. The goal kind
// owns the unit conversion; Achieved is passed through untouched.
func Normalize(planName string, eg EvaluatedGoal) (domain.NormalizedRow, error) {
	g := eg.Goal
	if g == nil || g.Kind == nil {
		return domain.NormalizedRow{}, fmt.Errorf("%w: plan %q", domain.ErrUnknownGoalKind, planName)
	}

	display := g.Kind.ToDisplay(domain.GoalValues{
		AcceptanceLevel: g.AcceptanceLevel,
		ParameterValue:  g.ParameterValue,
		AchievedValue:   eg.AchievedValue,
	})

	return domain.NormalizedRow{
		PlanName:        planName,
		Kind:            g.Kind,
		RegionName:      g.RegionName,
		Criteria:        g.Criteria,
		AcceptanceLevel: display.AcceptanceLevel,
		ParameterLimit:  display.ParameterValue,
		AchievedValue:   display.AchievedValue,
		Achieved:        eg.Achieved,
	}, nil
}
