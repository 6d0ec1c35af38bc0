package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (c *CLI) newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List every bundle output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.app.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.json {
				return writeJSON(out, entries)
			}

			width := 0
			var total uint64
			for _, e := range entries {
				width = max(width, len(e.Path))
				total += uint64(e.Size) //nolint:gosec // Sizes are never negative
			}

			s := c.styles(out)
			for _, e := range entries {
				size := humanize.Bytes(uint64(e.Size)) //nolint:gosec // Sizes are never negative
				_, _ = fmt.Fprintln(out, s.Path.Width(width).Render(e.Path)+"  "+s.Muted.Render(size))
			}
			_, _ = fmt.Fprintln(out, s.Muted.Render(fmt.Sprintf("%d files, %s", len(entries), humanize.Bytes(total))))
			return nil
		},
	}
}
