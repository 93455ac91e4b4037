package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalaudit/internal/cli/formatter"
	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/alexanderramin/goalaudit/internal/export"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reviewChrome is the number of lines around the table: title, blank line,
// detail, summary and help.
const reviewChrome = 7

// reviewModel is a read-only table over the normalized rows of one case.
// "f" toggles between all goals and failed goals only.
type reviewModel struct {
	c          *domain.Case
	result     *domain.ResultTable
	grid       table.Model
	visible    []domain.NormalizedRow
	failedOnly bool
	width      int
}

func newReviewModel(c *domain.Case, result *domain.ResultTable) reviewModel {
	columns := []table.Column{
		{Title: "Plan", Width: 18},
		{Title: "ROI", Width: 16},
		{Title: "Criteria", Width: 9},
		{Title: "Level", Width: 9},
		{Title: "Parameter", Width: 9},
		{Title: "Value", Width: 9},
		{Title: "Achieved", Width: 8},
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(lipgloss.Color("#504945")).
		Bold(false)

	m := reviewModel{
		c:      c,
		result: result,
		grid: table.New(
			table.WithColumns(columns),
			table.WithFocused(true),
			table.WithHeight(12),
			table.WithStyles(styles),
		),
	}
	m.refresh()
	return m
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if h := msg.Height - reviewChrome; h > 3 {
			m.grid.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "f":
			m.failedOnly = !m.failedOnly
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m *reviewModel) refresh() {
	m.visible = make([]domain.NormalizedRow, 0, len(m.result.Rows))
	rows := make([]table.Row, 0, len(m.result.Rows))
	for _, r := range m.result.Rows {
		if m.failedOnly && r.Achieved {
			continue
		}
		m.visible = append(m.visible, r)
		rows = append(rows, reviewRow(r))
	}
	m.grid.SetRows(rows)
	m.grid.GotoTop()
}

// reviewRow formats a row the way the export file does so the two can be
// compared side by side.
func reviewRow(r domain.NormalizedRow) table.Row {
	return table.Row{
		r.PlanName,
		r.RegionName,
		string(r.Criteria),
		fmt.Sprintf("%.2f", r.AcceptanceLevel),
		fmt.Sprintf("%.2f", r.ParameterLimit),
		fmt.Sprintf("%.2f", r.AchievedValue),
		export.FormatAchieved(r.Achieved),
	}
}

func (m reviewModel) selected() (domain.NormalizedRow, bool) {
	i := m.grid.Cursor()
	if i < 0 || i >= len(m.visible) {
		return domain.NormalizedRow{}, false
	}
	return m.visible[i], true
}

func (m reviewModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render(fmt.Sprintf("%s  %s", m.c.Patient.PatientID, m.c.Name)))
	if m.failedOnly {
		b.WriteString(formatter.StyleYellow.Render("  [failed only]"))
	}
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		if m.failedOnly {
			b.WriteString(formatter.StyleGreen.Render("Every clinical goal is met."))
		} else {
			b.WriteString(formatter.Dim("No clinical goals found."))
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.grid.View())
		b.WriteString("\n")
	}

	if r, ok := m.selected(); ok {
		level, param, value := formatter.Units(r.Kind)
		b.WriteString(fmt.Sprintf("%s %s %s %s  %s %s  %s %s  %s\n",
			formatter.Bold(r.RegionName),
			formatter.CriteriaLabel(r.Criteria),
			formatter.WithUnit(r.AcceptanceLevel, level),
			formatter.Dim("at"),
			formatter.WithUnit(r.ParameterLimit, param),
			formatter.Dim("value"),
			formatter.WithUnit(r.AchievedValue, value),
			formatter.Dim("→"),
			formatter.AchievedPill(r.Achieved),
		))
	} else {
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("Goals met %s", formatter.RenderPassRate(m.result.AchievedCount(), len(m.result.Rows), 20))
	if n := len(m.result.Skipped); n > 0 {
		summary += formatter.StyleYellow.Render(fmt.Sprintf("  %d skipped", n))
	}
	b.WriteString(summary + "\n")
	b.WriteString(formatter.Dim("↑/↓ move · f failed only · q quit"))

	return b.String()
}
