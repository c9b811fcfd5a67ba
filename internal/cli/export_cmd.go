package cli

import (
	"fmt"

	"github.com/alexanderramin/cadrage/internal/cli/formatter"
	"github.com/alexanderramin/cadrage/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var formatFlag, outDir string
	var summary bool

	cmd := &cobra.Command{
		Use:   "export FILE...",
		Short: "Render snapshot files as deck, Word and/or PDF documents",
		Long: "Render snapshot files as deck, Word and/or PDF documents.\n\n" +
			"Every project gets its own Word and PDF file; a single deck holds all\n" +
			"projects. Without --format, a terminal session asks which format to\n" +
			"produce and a script gets every format.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := resolveFormats(app, formatFlag)
			if err != nil {
				return err
			}

			projects, err := service.LoadProjects(args...)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = app.Config.OutputDir
			}
			exporter := app.NewExporter(outDir, summary)

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Génération en cours...")
			}
			results, err := exporter.ExportBatch(cmd.Context(), projects, formats)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExportResults(results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "deck, docx, pdf or all")
	cmd.Flags().BoolVar(&summary, "summary", false, "Prepend the project summary slides to the deck")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default $CADRAGE_OUTPUT_DIR or .)")

	return cmd
}

// resolveFormats reads --format, asks on a terminal, and falls back to all.
func resolveFormats(app *App, flag string) ([]service.Format, error) {
	if flag != "" {
		return service.ParseFormat(flag)
	}
	if app.interactive() && app.PickFormats != nil {
		return app.PickFormats()
	}
	return service.AllFormats, nil
}
