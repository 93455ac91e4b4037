package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalaudit/internal/domain"
)

// FormatResultTable renders the normalized goals of a case for the terminal,
// one section per plan. Plans without goals are listed with a note.
func FormatResultTable(c *domain.Case, table *domain.ResultTable) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Clinical goals  %s  %s", c.Patient.PatientID, c.Name)))
	b.WriteString("\n\n")

	if len(c.Plans) == 0 {
		b.WriteString(Dim("No plans in this case."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"ROI", "Criteria", "Level", "Parameter", "Value", "Achieved"}
	for _, plan := range c.Plans {
		b.WriteString(Bold(plan.Name))
		b.WriteString("\n")

		rows := table.RowsForPlan(plan.Name)
		if len(rows) == 0 {
			b.WriteString(Dim("  no clinical goals found"))
			b.WriteString("\n\n")
			continue
		}

		cells := make([][]string, 0, len(rows))
		for _, r := range rows {
			levelUnit, paramUnit, valueUnit := Units(r.Kind)
			cells = append(cells, []string{
				r.RegionName,
				CriteriaLabel(r.Criteria),
				WithUnit(r.AcceptanceLevel, levelUnit),
				WithUnit(r.ParameterLimit, paramUnit),
				WithUnit(r.AchievedValue, valueUnit),
				AchievedPill(r.Achieved),
			})
		}
		b.WriteString(RenderTable(headers, cells, AlignRight(2, 3, 4)))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Goals met  %s\n", RenderPassRate(table.AchievedCount(), len(table.Rows), 20)))
	if len(table.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatSkipped(table.Skipped))
	}
	return b.String()
}

// FormatSkipped lists goals left out under the skip policy.
func FormatSkipped(skipped []domain.SkippedGoal) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render(fmt.Sprintf("%d goal(s) skipped:", len(skipped))))
	b.WriteString("\n")
	for _, s := range skipped {
		b.WriteString(fmt.Sprintf("  %s %s / %s  %s\n",
			StyleYellow.Render("•"), s.PlanName, s.RegionName, Dim(s.Reason)))
	}
	return b.String()
}
