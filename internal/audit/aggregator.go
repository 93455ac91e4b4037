package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/evaluation"
	"github.com/alexanderramin/goalaudit/internal/logger"
)

// Policy decides what happens when a single goal cannot be evaluated or
// normalized.
type Policy int

const (
	// PolicyAbort stops the whole run on the first failing goal.
	PolicyAbort Policy = iota
	// PolicySkip logs the failing goal, records it in ResultTable.Skipped
	// and continues.
	PolicySkip
)

// ErrNoCase is returned when Aggregate is called without a case.
var ErrNoCase = errors.New("no case to aggregate")

// GoalError identifies the goal that stopped an aborted run.
type GoalError struct {
	PlanName   string
	RegionName string
	Err        error
}

func (e *GoalError) Error() string {
	return fmt.Sprintf("plan %q, ROI %q: %v", e.PlanName, e.RegionName, e.Err)
}

func (e *GoalError) Unwrap() error { return e.Err }

// Aggregator walks a case plan by plan and goal by goal.
type Aggregator struct {
	eval   evaluation.DoseEvaluator
	policy Policy
	log    logger.Logger
}

func NewAggregator(eval evaluation.DoseEvaluator, policy Policy, log logger.Logger) *Aggregator {
	if log == nil {
		log = logger.Nop()
	}
	return &Aggregator{eval: eval, policy: policy, log: log}
}

// Aggregate builds the result table for c. Rows follow plan order, then goal
// order. A plan without goals contributes no rows.
func (a *Aggregator) Aggregate(ctx context.Context, c *domain.Case) (*domain.ResultTable, error) {
	if c == nil {
		return nil, ErrNoCase
	}
	table := &domain.ResultTable{Rows: make([]domain.NormalizedRow, 0, c.GoalCount())}

	for i, plan := range c.Plans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, fmt.Errorf("case %q: plan %d is missing", c.Name, i)
		}

		a.log.Info("processing plan", "plan", plan.Name)
		if len(plan.Goals) == 0 {
			a.log.Info("no clinical goals found", "plan", plan.Name)
			continue
		}
		a.log.Debug("clinical goals found", "plan", plan.Name, "count", len(plan.Goals))

		for _, goal := range plan.Goals {
			if goal == nil {
				return nil, fmt.Errorf("plan %q: missing goal", plan.Name)
			}
			row, err := a.row(plan, goal)
			if err == nil {
				table.Rows = append(table.Rows, row)
				continue
			}

			gerr := &GoalError{PlanName: plan.Name, RegionName: goal.RegionName, Err: err}
			if a.policy != PolicySkip {
				return nil, gerr
			}
			a.log.Warn("skipping clinical goal", "plan", plan.Name, "roi", goal.RegionName, "err", err)
			table.Skipped = append(table.Skipped, domain.SkippedGoal{
				PlanName:   plan.Name,
				RegionName: goal.RegionName,
				Reason:     err.Error(),
			})
		}
	}

	return table, nil
}

func (a *Aggregator) row(plan *domain.Plan, goal *domain.Goal) (domain.NormalizedRow, error) {
	if goal.Kind == nil {
		return domain.NormalizedRow{}, domain.ErrUnknownGoalKind
	}
	value, err := a.eval.ClinicalGoalValue(plan, goal)
	if err != nil {
		return domain.NormalizedRow{}, fmt.Errorf("clinical goal value: %w", err)
	}
	achieved, err := a.eval.EvaluateClinicalGoal(plan, goal)
	if err != nil {
		return domain.NormalizedRow{}, fmt.Errorf("evaluating clinical goal: %w", err)
	}
	return Normalize(plan.Name, EvaluatedGoal{Goal: goal, AchievedValue: value, Achieved: achieved})
}

// IsUnknownKind reports whether err stems from an unrecognized goal kind.
func IsUnknownKind(err error) bool {
	return errors.Is(err, domain.ErrUnknownGoalKind)
}
