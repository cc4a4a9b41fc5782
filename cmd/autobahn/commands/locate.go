package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/autobahn/internal/app"
)

func (c *CLI) newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate LIBRARY...",
		Short: "List the packages that provide each library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Locate(cmd.Context(), app.LocateOptions{
				Libraries:  args,
				ConfigPath: c.configPath,
			})
		},
	}
}
