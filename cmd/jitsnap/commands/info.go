package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <path>...",
		Short: "Print the freshness tag of paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := c.app.FileInfos(cmd.Context(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.json {
				return writeJSON(out, infos)
			}

			width := 0
			for _, info := range infos {
				width = max(width, len(info.Path))
			}

			s := c.styles(out)
			for _, info := range infos {
				line := s.Path.Width(width).Render(info.Path) + "  " + s.Tag.Render(info.ETag)
				if info.Generated {
					line += "  " + s.Muted.Render(humanize.Bytes(uint64(info.Size))) //nolint:gosec // Sizes are never negative
				} else {
					line += "  " + s.Muted.Render("source")
				}
				_, _ = fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
