// Package commands implements the CLI commands for jitsnap.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/jitsnap/internal/app"
	"go.trai.ch/jitsnap/internal/build"
	"go.trai.ch/jitsnap/internal/core/domain"
	"go.trai.ch/jitsnap/internal/ui/output"
	"go.trai.ch/jitsnap/internal/ui/style"
)

// CLI represents the command line interface for jitsnap.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	json    bool
}

// Application represents the application logic interface.
type Application interface {
	Configure(s app.Settings)
	Dependencies(ctx context.Context, paths []string) ([]domain.PathDependencies, error)
	FileInfos(ctx context.Context, paths []string) ([]domain.FileInfo, error)
	Read(ctx context.Context, path string, w io.Writer) error
	List(ctx context.Context) ([]domain.ListEntry, error)
	Meta(ctx context.Context, query string) (string, error)
	Export(ctx context.Context, dir string) (*domain.ExportIndex, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "jitsnap",
		Short:         "Query a lazily built esbuild snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", ".", "Path to jitsnap.yaml or a directory to search from")
	rootCmd.PersistentFlags().Bool("json", false, "Print results and logs as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs, including bundle and tag spans")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		configPath, _ := cmd.Flags().GetString("config")
		jsonMode, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")

		c.json = jsonMode
		c.app.Configure(app.Settings{
			ConfigPath: configPath,
			JSON:       jsonMode,
			Verbose:    verbose,
		})
	}

	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newCatCmd())
	rootCmd.AddCommand(c.newLsCmd())
	rootCmd.AddCommand(c.newMetaCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) styles(w io.Writer) style.Styles {
	return style.New(output.Renderer(w))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
