// Package commands implements the CLI commands for scaffold.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/scaffold/internal/app"
	"go.trai.ch/scaffold/internal/build"
)

// EnvPrefix prefixes the environment variables that override persistent flags.
const EnvPrefix = "SCAFFOLD"

// CLI represents the command line interface for scaffold.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
	v       *viper.Viper
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "scaffold",
		Short:         "Download Drupal scaffold files after drupal/core changes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Project directory containing composer.json")
	rootCmd.PersistentFlags().String("runner", "", "Task runner command line (default \"vendor/bin/robo\")")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	_ = v.BindPFlag("dir", rootCmd.PersistentFlags().Lookup("dir"))
	_ = v.BindPFlag("runner", rootCmd.PersistentFlags().Lookup("runner"))

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		v:       v,
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.WithRunner(c.v.GetString("runner"))
	}

	rootCmd.AddCommand(c.newHookCmd())
	rootCmd.AddCommand(c.newProcessCmd())
	rootCmd.AddCommand(c.newOptionsCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

// SetInput replaces standard input. Used for testing.
func (c *CLI) SetInput(r io.Reader) {
	c.rootCmd.SetIn(r)
}

func (c *CLI) dir() string {
	return c.v.GetString("dir")
}
