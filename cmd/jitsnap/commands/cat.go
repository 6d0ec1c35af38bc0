package commands

import "github.com/spf13/cobra"

func (c *CLI) newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print the content of a bundle output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Read(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}
