package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/goalaudit/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Units returns the display units of a row's acceptance level, parameter
// and achieved value.
func Units(kind domain.GoalKind) (level, param, value string) {
	switch kind.(type) {
	case domain.VolumeAtDose:
		return "%", "Gy", "%"
	case domain.DoseAtVolume:
		return "Gy", "%", "Gy"
	}
	return "", "", ""
}

// WithUnit formats a display value to two decimals followed by its unit.
func WithUnit(v float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, unit)
}

// CriteriaLabel renders the goal direction as a comparison symbol next to
// the planning-system word.
func CriteriaLabel(c domain.Criteria) string {
	switch c {
	case domain.CriteriaAtMost:
		return "≤ " + string(c)
	case domain.CriteriaAtLeast:
		return "≥ " + string(c)
	}
	return string(c)
}
