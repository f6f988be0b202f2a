package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// optionsView is the printed form of the effective options.
type optionsView struct {
	OmitDefaults bool     `yaml:"omit-defaults"`
	Method       string   `yaml:"method"`
	Source       string   `yaml:"source"`
	Excludes     []string `yaml:"excludes"`
	Settings     []string `yaml:"settings"`
}

func (c *CLI) newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Print the effective drupal-scaffold options as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.app.Options(c.dir())
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(optionsView{
				OmitDefaults: opts.OmitDefaults,
				Method:       string(opts.Method),
				Source:       opts.Source,
				Excludes:     opts.Excludes,
				Settings:     opts.Settings,
			})
			if err != nil {
				return zerr.Wrap(err, "failed to encode options")
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
