package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autobahn/internal/app"
)

func (c *CLI) newMissingCmd() *cobra.Command {
	var libraries []string

	cmd := &cobra.Command{
		Use:   "missing BINARY",
		Short: "List the libraries BINARY fails to load",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.MissingOptions{
				ConfigPath: c.configPath,
				Libraries:  libraries,
			}
			if len(args) == 1 {
				opts.Binary = args[0]
			}
			return c.app.Missing(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringArrayVarP(&libraries, "library", "l", nil, "Add this library to the reported set")

	return cmd
}
