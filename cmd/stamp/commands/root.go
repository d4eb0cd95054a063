// Package commands implements the CLI commands for the stamp tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/stampkit/stamp/internal/app"
)

// CLI represents the command line interface for stamp.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stamp",
		Short:         "Validity cache and checksum stamping for compiled native extensions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress log and progress output")
	rootCmd.PersistentFlags().String("config-base", "", "Build-configuration base identifier folded into every digest")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		base, err := cmd.Flags().GetString("config-base")
		if err != nil {
			return err
		}
		a.SetConfigBase(base)

		quiet, err := cmd.Flags().GetBool("quiet")
		if err != nil {
			return err
		}
		if quiet {
			a.SetQuiet()
		}
		return nil
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
