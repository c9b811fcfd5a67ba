package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/cadrage/internal/cli/formatter"
	"github.com/alexanderramin/cadrage/internal/markup"
	"github.com/spf13/cobra"
)

func newMarkupCmd() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "markup FILE|-",
		Short: "Show how a rich-text field is parsed",
		Long:  "Show the block sequence a rich-text field parses into. Use - to read stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading markup: %w", err)
			}

			blocks := markup.Parse(string(data))
			if preview {
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderBlocks(blocks))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBlockDump(blocks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "Render the text instead of listing blocks")
	return cmd
}
