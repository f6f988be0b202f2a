package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newProcessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Download scaffold files for the installed drupal/core version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Process(cmd.Context(), c.dir())
		},
	}
}
