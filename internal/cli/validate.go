// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/bfs"
	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/loader"
)

// newValidateCmd creates the validate command. It loads each file without
// searching for a route and reports whether Finish is reachable at all.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check road-system descriptions without solving them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			invalid := 0
			for _, path := range args {
				if err := ctx.Err(); err != nil {
					return err
				}
				name := filepath.Base(path)

				g, err := loader.LoadFromPath(path)
				if err != nil {
					invalid++
					reason := err.Error()
					if le, ok := loader.AsLoadError(err); ok {
						reason = le.Reason
						logger.Debug("invalid description", "source", path, "kind", le.Kind, "err", err)
					}
					printError(out, "%s: %s", name, reason)
					if cause := errors.Unwrap(err); cause != nil {
						printDetail(out, "%v", cause)
					}
					continue
				}

				reachable, err := finishReachable(g)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if reachable {
					printSuccess(out, "%s: valid, finish reachable", name)
				} else {
					printWarning(out, "%s: valid, finish unreachable", name)
				}
				printStats(out, g.NodeCount(), g.EdgeCount(), countCrashed(g))
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d descriptions are invalid", invalid, len(args))
			}
			return nil
		},
	}
}

// finishReachable walks enabled nodes from Start.
func finishReachable(g *core.Graph) (bool, error) {
	start, _ := g.Start()
	finish, _ := g.Finish()
	if finish.Disabled() {
		return false, nil
	}
	res, err := bfs.BFS(g, start)
	if err != nil {
		return false, err
	}
	return res.Reached(finish.ID()), nil
}

func countCrashed(g *core.Graph) int {
	n := 0
	for node := range g.All() {
		if node.Disabled() {
			n++
		}
	}
	return n
}
