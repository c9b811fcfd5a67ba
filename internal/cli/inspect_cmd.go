package cli

import (
	"fmt"

	"github.com/alexanderramin/cadrage/internal/aggregate"
	"github.com/alexanderramin/cadrage/internal/cli/formatter"
	"github.com/alexanderramin/cadrage/internal/service"
	"github.com/spf13/cobra"
)

func newInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show a terminal summary of every project in a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := service.LoadProjects(args[0])
			if err != nil {
				return err
			}
			for i, p := range projects {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectInspect(aggregate.Build(p)))
			}
			return nil
		},
	}
}
