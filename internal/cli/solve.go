// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/batch"
)

// newSolveCmd creates the solve command. Every file is reported on its own
// line; the command fails if any file could not be loaded.
func newSolveCmd() *cobra.Command {
	var showCost bool

	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Find the cheapest start-to-finish route of each road system",
		Example: `  roadpath solve samples/*.xml
  roadpath solve --workers 8 -v city.xml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)
			out := cmd.OutOrStdout()

			prog := newProgress(logger)
			p := batch.New(batch.WithConfig(cfg), batch.WithLogger(logger))
			results := p.Process(ctx, args)

			for _, r := range results {
				name := filepath.Base(r.Source)
				switch r.Status {
				case batch.StatusFound:
					if showCost {
						printSuccess(out, "%s: %s %s", name, StyleSuccess.Render(r.Text), StyleDim.Render(fmt.Sprintf("(cost %g)", r.Cost)))
					} else {
						printSuccess(out, "%s: %s", name, StyleSuccess.Render(r.Text))
					}
				case batch.StatusNoPath:
					printWarning(out, "%s: %s", name, r.Text)
				default:
					printError(out, "%s: %s", name, r.Text)
					if r.Err != nil && r.Err.Error() != r.Text {
						logger.Debug("load failure detail", "source", r.Source, "err", r.Err)
					}
				}
			}

			found, noPath, failed := batch.Counts(results)
			prog.done(fmt.Sprintf("Solved %d road systems: %d found, %d without path, %d failed",
				len(results), found, noPath, failed))

			if err := ctx.Err(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d road systems failed to load", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCost, "cost", false, "print the total weight of each route")

	return cmd
}
