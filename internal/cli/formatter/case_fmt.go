package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalaudit/internal/domain"
)

// FormatCaseList renders stored cases, marking the current one.
func FormatCaseList(cases []domain.CaseSummary, currentID string) string {
	if len(cases) == 0 {
		return Dim("No cases imported. Use 'goalaudit import FILE' to add one.") + "\n"
	}

	headers := []string{"", "ID", "Patient", "Name", "Case", "Plans", "Goals"}
	rows := make([][]string, 0, len(cases))
	for _, c := range cases {
		marker := " "
		if c.CaseID == currentID {
			marker = StyleGreen.Render("●")
		}
		rows = append(rows, []string{
			marker,
			TruncID(c.CaseID),
			c.PatientID,
			c.PatientName,
			StylePurple.Render(c.CaseName),
			fmt.Sprintf("%d", c.PlanCount),
			fmt.Sprintf("%d", c.GoalCount),
		})
	}
	return RenderTable(headers, rows, AlignRight(5, 6))
}

// FormatCurrentCase renders the case a zero-argument export will use.
func FormatCurrentCase(c *domain.Case) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Patient"), Bold(c.Patient.PatientID)))
	if c.Patient.Name != "" {
		b.WriteString(fmt.Sprintf("%s     %s\n", Dim("Name"), c.Patient.Name))
	}
	b.WriteString(fmt.Sprintf("%s     %s\n", Dim("Case"), StylePurple.Render(c.Name)))
	b.WriteString(fmt.Sprintf("%s       %s", Dim("ID"), TruncID(c.ID)))
	return RenderBox("Current case", b.String())
}
