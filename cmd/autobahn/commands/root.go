// Package commands implements the CLI commands for autobahn.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/autobahn/internal/app"
	"go.trai.ch/autobahn/internal/build"
)

// CLI represents the command line interface for autobahn.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	verbose    bool
	jsonOutput bool
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) error
	Locate(ctx context.Context, opts app.LocateOptions) error
	Missing(ctx context.Context, opts app.MissingOptions) error
	ConfigureLogging(jsonOutput, verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "autobahn",
		Short:         "Run foreign binaries on NixOS by generating an FHS environment",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.ConfigureLogging(c.jsonOutput, c.verbose)
		},
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

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Project config file (default: autobahn.yaml next to the binary)")
	rootCmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Log debug output")
	rootCmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Log as JSON")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newLocateCmd())
	rootCmd.AddCommand(c.newMissingCmd())
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
