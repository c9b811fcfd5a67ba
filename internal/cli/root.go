package cli

import (
	"github.com/alexanderramin/cadrage/internal/config"
	"github.com/alexanderramin/cadrage/internal/service"
	"github.com/spf13/cobra"
)

// App holds what CLI commands need from the outside world.
type App struct {
	Config config.Config

	// NewExporter builds the export service for one run, writing into outDir.
	NewExporter func(outDir string, summary bool) service.ExportService

	// IsInteractive reports whether a user sits at the terminal. Nil means no.
	IsInteractive func() bool

	// PickFormats asks the user for export formats. Defaults to a huh select.
	PickFormats func() ([]service.Format, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "cadrage" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.PickFormats == nil {
		app.PickFormats = pickFormats
	}

	root := &cobra.Command{
		Use:           "cadrage",
		Short:         "Project framing notes as slide decks, Word documents and PDFs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newExportCmd(app),
		newInspectCmd(app),
		newMarkupCmd(),
		newValidateCmd(),
	)

	return root
}
