package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/jitsnap/internal/ui/style"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every bundle output to a content addressed directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("out")

			index, err := c.app.Export(cmd.Context(), dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.json {
				return writeJSON(out, index)
			}

			s := c.styles(out)
			for _, a := range index.Artifacts {
				_, _ = fmt.Fprintln(out, s.Success.Render(style.Check)+" "+s.Tag.Render(a.Digest)+"  "+a.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "Export directory (default .jitsnap/export)")
	return cmd
}
