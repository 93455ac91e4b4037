package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalaudit/internal/app"
)

// FormatExportResult summarizes a finished export.
func FormatExportResult(resp *app.ExportResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Patient"), Bold(resp.PatientID)))
	b.WriteString(fmt.Sprintf("%s     %s\n", Dim("Case"), StylePurple.Render(resp.CaseName)))
	b.WriteString(fmt.Sprintf("%s     %d\n", Dim("Rows"), resp.RowCount))
	if resp.Table != nil {
		b.WriteString(fmt.Sprintf("%s      %s\n", Dim("Met"), RenderPassRate(resp.Table.AchievedCount(), resp.RowCount, 20)))
	}
	b.WriteString(fmt.Sprintf("%s     %s", Dim("File"), StyleBlue.Render(resp.Path)))
	if len(resp.Skipped) > 0 {
		b.WriteString("\n\n")
		b.WriteString(strings.TrimRight(FormatSkipped(resp.Skipped), "\n"))
	}
	return RenderBox("Export written", b.String())
}
