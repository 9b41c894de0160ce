// SPDX-License-Identifier: MIT

// Package cli implements the roadpath command-line interface.
//
// # Commands
//
//   - solve:    find the Start→Finish route of each description file
//   - validate: load descriptions and report their shape and reachability
//   - generate: write a synthetic description (chain, grid or random)
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context and retrieved with loggerFromContext.
package cli

import (
	"context"
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/config"
	"github.com/katalvlaran/roadpath/telemetry"
)

const appName = "roadpath"

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOpts holds the persistent flags shared by every command.
type globalOpts struct {
	verbose       bool
	configPath    string
	workers       int
	trace         bool
	traceEndpoint string

	cfg      config.Config
	shutdown telemetry.ShutdownFunc
}

// resolve loads the config file (if any) and applies flag overrides.
func (g *globalOpts) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = g.workers
	}
	if flags.Changed("trace") {
		cfg.Trace.Enabled = g.trace
	}
	if flags.Changed("trace-endpoint") {
		cfg.Trace.Endpoint = g.traceEndpoint
		cfg.Trace.Enabled = true
	}
	if g.verbose {
		cfg.LogLevel = charmlog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g.cfg = cfg
	return nil
}

// Execute runs the roadpath CLI with ctx and returns the first command error.
//
// Example:
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2025-12-20")
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	opts := &globalOpts{}
	err := newRootCmd(opts).ExecuteContext(ctx)
	if opts.shutdown != nil {
		if serr := opts.shutdown(context.WithoutCancel(ctx)); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

// newRootCmd builds the command tree. Tests drive it with SetArgs/SetOut.
// The caller owns opts.shutdown once the command has run.
func newRootCmd(opts *globalOpts) *cobra.Command {

	root := &cobra.Command{
		Use:           appName,
		Short:         "Roadpath finds the cheapest route through a road system",
		Long:          `Roadpath loads road-system descriptions (XML), skips crashed intersections and reports the cheapest route from the start node to the finish node.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.cfg.Level())
			ctx := withLogger(cmd.Context(), logger)

			if opts.cfg.Trace.Enabled {
				shutdown, err := telemetry.Init(ctx, appName, version, opts.cfg.Trace.Endpoint, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				opts.shutdown = shutdown
				logger.Debug("tracing enabled", "endpoint", opts.cfg.Trace.Endpoint)
			}

			cmd.SetContext(withConfig(ctx, opts.cfg))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&opts.configPath, "config", "", "TOML configuration file")
	pf.IntVar(&opts.workers, "workers", 0, "number of sources processed concurrently")
	pf.BoolVar(&opts.trace, "trace", false, "export OpenTelemetry traces")
	pf.StringVar(&opts.traceEndpoint, "trace-endpoint", "", "OTLP/HTTP endpoint URL (implies --trace)")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

// configKey is the context key for the resolved configuration.
const configKey ctxKey = 1

func withConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the resolved configuration or config.Default.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// writerOrDiscard keeps output helpers safe with a nil writer.
func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
