package cli

import (
	"fmt"

	"github.com/alexanderramin/cadrage/internal/cli/formatter"
	"github.com/alexanderramin/cadrage/internal/importer"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check snapshot files without rendering anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				snaps, err := importer.Load(path)
				var errs []error
				if err != nil {
					errs = []error{err}
				} else {
					errs = importer.ValidateSnapshots(snaps)
				}
				if len(errs) > 0 {
					failed++
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatValidation(path, len(snaps), errs))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
			}
			return nil
		},
	}
}
