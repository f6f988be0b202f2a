package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/scaffold/internal/adapters/events"
	"go.trai.ch/zerr"
)

func (c *CLI) newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Replay package manager lifecycle events and scaffold when drupal/core changed",
		Long: "Reads JSON lines such as {\"event\":\"post-package-install\",\"package\":{...}} " +
			"from --events or standard input. Scaffolding runs on post-install-cmd or post-update-cmd " +
			"when drupal/core was installed or updated.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()

			path, _ := cmd.Flags().GetString("events")
			if path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to open event stream"), "path", path)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			return c.app.HandleEvents(cmd.Context(), c.dir(), events.Decode(in))
		},
	}
	cmd.Flags().StringP("events", "e", "", "File with one JSON event per line (default stdin)")
	return cmd
}
