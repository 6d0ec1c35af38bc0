package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/jitsnap/internal/ui/style"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <path>...",
		Short: "Print the static imports of bundle outputs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := c.app.Dependencies(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.json {
				return writeJSON(out, results)
			}

			s := c.styles(out)
			for _, r := range results {
				_, _ = fmt.Fprintln(out, s.Path.Render(r.Path))
				if len(r.Dependencies) == 0 {
					_, _ = fmt.Fprintln(out, "  "+s.Muted.Render("no static imports"))
					continue
				}
				for _, dep := range r.Dependencies {
					_, _ = fmt.Fprintln(out, "  "+s.Muted.Render(style.Arrow)+" "+dep)
				}
			}
			return nil
		},
	}
}
