package cli

import (
	"github.com/alexanderramin/goalaudit/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Export service.ExportService
	Import service.ImportService
	Cases  service.ContextService

	// ExportDir is the configured export directory, offered as the default
	// answer of the --prompt question.
	ExportDir string

	// IsInteractive reports whether stdin is a terminal. Pickers, prompts
	// and the review table are only offered when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "goalaudit" command and registers all
// subcommands against the provided App. Run without a subcommand it
// exports the current case.
func NewRootCmd(app *App) *cobra.Command {
	var opts exportOptions

	root := &cobra.Command{
		Use:           "goalaudit",
		Short:         "Audit treatment plans against their clinical goals",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, app, opts)
		},
	}
	opts.bind(root)

	root.AddCommand(
		newExportCmd(app),
		newImportCmd(app),
		newCaseCmd(app),
		newGoalsCmd(app),
		newReviewCmd(app),
	)

	return root
}
