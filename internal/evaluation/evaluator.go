// Package evaluation provides the dose-evaluation capability clinical goals
// are checked against. All values are in raw planning-system units: volume
// fractions (0-1) and doses in cGy.
package evaluation

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/domain"
)

// ErrNoDoseData is returned when neither a DVH nor a recorded result exists
// for a goal, or when the DVH does not reach the goal's parameter.
var ErrNoDoseData = errors.New("no dose data for goal")

// DoseEvaluator answers the two questions a clinical goal asks of a plan.
type DoseEvaluator interface {
	ClinicalGoalValue(plan *domain.Plan, goal *domain.Goal) (float64, error)
	EvaluateClinicalGoal(plan *domain.Plan, goal *domain.Goal) (bool, error)
}

// DVHEvaluator computes goal values from the plan's cumulative DVHs.
type DVHEvaluator struct{}

func NewDVHEvaluator() *DVHEvaluator { return &DVHEvaluator{} }

func (e *DVHEvaluator) ClinicalGoalValue(plan *domain.Plan, goal *domain.Goal) (float64, error) {
	dvh, ok := plan.DVHFor(goal.RegionName)
	if !ok {
		return 0, fmt.Errorf("%w: plan %q has no DVH for ROI %q", ErrNoDoseData, plan.Name, goal.RegionName)
	}
	var (
		v   float64
		err error
	)
	switch goal.Kind.(type) {
	case domain.VolumeAtDose:
		v, err = dvh.VolumeAtDose(goal.ParameterValue)
	case domain.DoseAtVolume:
		v, err = dvh.DoseAtVolume(goal.ParameterValue)
	default:
		return 0, fmt.Errorf("%w: goal %s", domain.ErrUnknownGoalKind, goal.Describe())
	}
	if err != nil {
		return 0, fmt.Errorf("%w: plan %q: %w", ErrNoDoseData, plan.Name, err)
	}
	return v, nil
}

func (e *DVHEvaluator) EvaluateClinicalGoal(plan *domain.Plan, goal *domain.Goal) (bool, error) {
	v, err := e.ClinicalGoalValue(plan, goal)
	if err != nil {
		return false, err
	}
	return goal.Criteria.Satisfied(v, goal.AcceptanceLevel), nil
}

// RecordedEvaluator returns the values the planning system captured when
// the case was exported.
type RecordedEvaluator struct{}

func NewRecordedEvaluator() *RecordedEvaluator { return &RecordedEvaluator{} }

func (e *RecordedEvaluator) ClinicalGoalValue(plan *domain.Plan, goal *domain.Goal) (float64, error) {
	if goal.Recorded == nil {
		return 0, fmt.Errorf("%w: goal %s in plan %q has no recorded result", ErrNoDoseData, goal.Describe(), plan.Name)
	}
	return goal.Recorded.Value, nil
}

func (e *RecordedEvaluator) EvaluateClinicalGoal(plan *domain.Plan, goal *domain.Goal) (bool, error) {
	if goal.Recorded == nil {
		return false, fmt.Errorf("%w: goal %s in plan %q has no recorded result", ErrNoDoseData, goal.Describe(), plan.Name)
	}
	return goal.Recorded.Achieved, nil
}

// AutoEvaluator prefers a recorded result and falls back to the DVH.
type AutoEvaluator struct {
	recorded *RecordedEvaluator
	dvh      *DVHEvaluator
}

func NewAutoEvaluator() *AutoEvaluator {
	return &AutoEvaluator{recorded: NewRecordedEvaluator(), dvh: NewDVHEvaluator()}
}

func (e *AutoEvaluator) pick(goal *domain.Goal) DoseEvaluator {
	if goal.Recorded != nil {
		return e.recorded
	}
	return e.dvh
}

func (e *AutoEvaluator) ClinicalGoalValue(plan *domain.Plan, goal *domain.Goal) (float64, error) {
	return e.pick(goal).ClinicalGoalValue(plan, goal)
}

func (e *AutoEvaluator) EvaluateClinicalGoal(plan *domain.Plan, goal *domain.Goal) (bool, error) {
	return e.pick(goal).EvaluateClinicalGoal(plan, goal)
}

// ForMode returns the evaluator named by a config value.
func ForMode(mode string) (DoseEvaluator, error) {
	switch mode {
	case "", "auto":
		return NewAutoEvaluator(), nil
	case "dvh":
		return NewDVHEvaluator(), nil
	case "recorded":
		return NewRecordedEvaluator(), nil
	}
	return nil, fmt.Errorf("unknown evaluator %q", mode)
}
