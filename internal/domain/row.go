package domain

// NormalizedRow is the display-ready projection of one evaluated goal.
// Volume values are percentages (0-100) and doses are Gy. Kind tells which
// of the numeric fields is a percentage.
type NormalizedRow struct {
	PlanName        string
	Kind            GoalKind
	RegionName      string
	Criteria        Criteria
	AcceptanceLevel float64
	ParameterLimit  float64
	AchievedValue   float64
	Achieved        bool
}

// SkippedGoal records a goal left out of a table under the skip policy.
type SkippedGoal struct {
	PlanName   string
	RegionName string
	Reason     string
}

// ResultTable holds the rows of one export run in plan-then-goal order.
type ResultTable struct {
	Rows    []NormalizedRow
	Skipped []SkippedGoal
}

// RowsForPlan returns the rows attributed to the named plan.
func (t *ResultTable) RowsForPlan(planName string) []NormalizedRow {
	var out []NormalizedRow
	for _, r := range t.Rows {
		if r.PlanName == planName {
			out = append(out, r)
		}
	}
	return out
}

// AchievedCount returns how many rows met their goal.
func (t *ResultTable) AchievedCount() int {
	n := 0
	for _, r := range t.Rows {
		if r.Achieved {
			n++
		}
	}
	return n
}
