package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stampkit/stamp/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrArtifactsInvalid is returned by check when at least one artifact needs a
// rebuild, so the process exits non-zero without extra logging.
var ErrArtifactsInvalid = zerr.New("one or more artifacts need rebuilding")

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <source>...",
		Short: "Report whether the compiled artifacts for the given sources are still valid",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return domain.ErrNoSourcesSpecified
			}

			results, err := c.app.CheckAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			anyInvalid := false
			for _, res := range results {
				state := "valid"
				if !res.Verdict.Valid {
					state = "invalid"
					anyInvalid = true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", res.Source, res.Artifact, state)
			}

			if anyInvalid {
				return ErrArtifactsInvalid
			}
			return nil
		},
	}
}
