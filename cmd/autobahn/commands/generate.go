package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autobahn/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	var opts app.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate BINARY",
		Short: "Write a launcher that runs BINARY with its missing libraries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Binary = args[0]
			}
			opts.ConfigPath = c.configPath
			return c.app.Generate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.Libraries, "library", "l", nil, "Resolve this library even if the scanner misses it")
	cmd.Flags().StringArrayVarP(&opts.Packages, "package", "p", nil, "Always include this package")
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "Selection strategy: all or interactive")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Launcher path, relative to the binary's directory")
	cmd.Flags().BoolVar(&opts.List, "list", false, "Print the included packages and the libraries they provide")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print the environment expression instead of writing the launcher")

	return cmd
}
