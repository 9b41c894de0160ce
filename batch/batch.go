// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roadpath/config"
	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/loader"
	"github.com/katalvlaran/roadpath/telemetry"
)

var tracer = telemetry.Tracer("roadpath/batch")

// Status is the outcome class of one source.
type Status int

const (
	// StatusFound means a route from Start to Finish exists.
	StatusFound Status = iota
	// StatusNoPath means the source loaded but Finish is unreachable.
	StatusNoPath
	// StatusFailed means the source could not be loaded.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPath:
		return "no-path"
	default:
		return "failed"
	}
}

// Result is the outcome for one source.
type Result struct {
	Source string
	Status Status
	// Text is what gets shown to the user.
	Text string
	// Path and Cost are set for StatusFound.
	Path []int
	Cost float64
	// Err holds the full cause for StatusFailed.
	Err error
}

// HasError reports whether the source failed to load or search.
func (r Result) HasError() bool { return r.Status == StatusFailed }

// LoadFunc turns a source into a graph.
type LoadFunc func(source string) (*core.Graph, error)

// Processor runs sources through load and search.
type Processor struct {
	workers    int
	separator  string
	noPathText string
	load       LoadFunc
	finder     *dijkstra.Finder
	logger     *log.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithConfig applies workers, separator and no-path text from cfg.
func WithConfig(cfg config.Config) Option {
	return func(p *Processor) {
		if cfg.Workers > 0 {
			p.workers = cfg.Workers
		}
		p.separator = cfg.Separator
		if cfg.NoPathText != "" {
			p.noPathText = cfg.NoPathText
		}
	}
}

// WithWorkers bounds concurrency; n < 1 is ignored.
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithLoader replaces loader.LoadFromPath as the source reader.
func WithLoader(fn LoadFunc) Option {
	return func(p *Processor) {
		if fn != nil {
			p.load = fn
		}
	}
}

// WithFinder replaces the default dijkstra.Finder.
func WithFinder(f *dijkstra.Finder) Option {
	return func(p *Processor) {
		if f != nil {
			p.finder = f
		}
	}
}

// WithLogger sets the logger used for per-source outcomes.
func WithLogger(l *log.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Processor reading files with loader.LoadFromPath.
func New(opts ...Option) *Processor {
	cfg := config.Default()
	p := &Processor{
		workers:    cfg.Workers,
		separator:  cfg.Separator,
		noPathText: cfg.NoPathText,
		load:       loader.LoadFromPath,
		finder:     dijkstra.New(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Process handles every source and returns results in input order.
func (p *Processor) Process(ctx context.Context, sources []string) []Result {
	runID := uuid.New().String()
	logger := p.logger.With("run", runID)
	ctx, span := tracer.Start(ctx, "batch.Process",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("sources", len(sources)),
			attribute.Int("workers", p.workers),
		),
	)
	defer span.End()

	start := time.Now()
	results := make([]Result, len(sources))

	var eg errgroup.Group
	eg.SetLimit(p.workers)
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			results[i] = p.failed(src, err)
			continue
		}
		eg.Go(func() error {
			results[i] = p.processOne(ctx, logger, src)
			return nil
		})
	}
	_ = eg.Wait()

	found, noPath, failed := Counts(results)
	span.SetAttributes(
		attribute.Int("found", found),
		attribute.Int("no_path", noPath),
		attribute.Int("failed", failed),
	)
	logger.Info("batch finished",
		"sources", len(sources), "found", found, "no_path", noPath, "failed", failed,
		"elapsed", time.Since(start).Round(time.Millisecond))

	return results
}

// processOne never returns an error; failures become StatusFailed results.
func (p *Processor) processOne(ctx context.Context, logger *log.Logger, src string) Result {
	_, span := tracer.Start(ctx, "batch.ProcessSource",
		trace.WithAttributes(attribute.String("source", src)),
	)
	defer span.End()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "context cancelled")
		return p.failed(src, err)
	}

	g, err := p.load(src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("load failed", "source", src, "err", err)
		return p.failed(src, err)
	}

	res, err := p.finder.Search(g)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("search failed", "source", src, "err", err)
		return p.failed(src, err)
	}
	span.SetAttributes(
		attribute.Int("nodes", g.NodeCount()),
		attribute.Int("edges", g.EdgeCount()),
		attribute.Int("expanded", res.Expanded),
		attribute.Int("pruned", res.Pruned),
		attribute.Bool("found", res.Found()),
	)

	if !res.Found() {
		logger.Debug("no path", "source", src, "nodes", g.NodeCount(), "expanded", res.Expanded)
		return Result{Source: src, Status: StatusNoPath, Text: p.noPathText}
	}

	ids := res.IDs()
	logger.Debug("path found", "source", src, "hops", len(ids)-1, "cost", res.Cost,
		"expanded", res.Expanded, "pruned", res.Pruned)

	return Result{
		Source: src,
		Status: StatusFound,
		Text:   JoinIDs(ids, p.separator),
		Path:   ids,
		Cost:   res.Cost,
	}
}

// failed reports a load error by its reason and anything else by its message.
func (p *Processor) failed(src string, err error) Result {
	text := err.Error()
	if le, ok := loader.AsLoadError(err); ok {
		text = le.Reason
	}

	return Result{Source: src, Status: StatusFailed, Text: text, Err: err}
}

// JoinIDs renders ids with sep between them.
func JoinIDs(ids []int, sep string) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}

// Counts tallies results by status.
func Counts(results []Result) (found, noPath, failed int) {
	for _, r := range results {
		switch r.Status {
		case StatusFound:
			found++
		case StatusNoPath:
			noPath++
		default:
			failed++
		}
	}

	return found, noPath, failed
}
