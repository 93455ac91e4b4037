package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/goalaudit/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func goalauditHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runForm runs a huh form on the terminal. Tests replace it.
var runForm = func(f *huh.Form) error {
	return f.Run()
}

// caseSelectForm builds a picker over all stored cases.
func caseSelectForm(ctx context.Context, app *App, result *string) (*huh.Form, error) {
	cases, err := app.Cases.ListCases(ctx)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases imported; use 'goalaudit import FILE' first")
	}

	options := make([]huh.Option[string], 0, len(cases))
	for _, c := range cases {
		label := fmt.Sprintf("%s  %s", c.PatientID, c.CaseName)
		if c.PatientName != "" {
			label += "  (" + c.PatientName + ")"
		}
		options = append(options, huh.NewOption(label, c.CaseID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which case?").
				Options(options...).
				Value(result),
		),
	).WithTheme(goalauditHuhTheme()).WithShowHelp(false), nil
}

// exportDirForm asks where the export file should go. dir holds the
// default on entry and the answer on return.
func exportDirForm(dir *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export directory").
				Description("The CSV file name is chosen from the patient ID and today's date.").
				Value(dir).
				Validate(validateExportDir),
		),
	).WithTheme(goalauditHuhTheme()).WithShowHelp(false)
}

// validateExportDir accepts an existing directory or a path that does not
// exist yet. An existing regular file is rejected.
func validateExportDir(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("directory is required")
	}
	info, err := os.Stat(s)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}
