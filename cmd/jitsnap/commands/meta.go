package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newMetaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meta [query]",
		Short: "Print the metafile or the result of a gjson query against it",
		Example: `  jitsnap meta
  jitsnap meta 'outputs.dist/main\.js.imports.#.path'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}

			result, err := c.app.Meta(cmd.Context(), query)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
