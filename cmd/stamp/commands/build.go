package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "build <source>",
		Short: "Build the artifact for a source if its cached one is invalid, then stamp it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := c.app.Build(cmd.Context(), args[0], force)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), artifact)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Rebuild even if the cached artifact is valid")
	return cmd
}
