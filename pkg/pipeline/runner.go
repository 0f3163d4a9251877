package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/designlint/pkg/document"
	"github.com/matzehuels/designlint/pkg/lint"
	"github.com/matzehuels/designlint/pkg/observability"
	"github.com/matzehuels/designlint/pkg/source"
)

// Runner loads sources and lints them with one engine.
//
// A Runner holds no per-run state; several goroutines may call Run at once.
type Runner struct {
	Engine *lint.Engine
	Loader source.Loader
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(engine *lint.Engine, loader source.Loader, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Engine: engine,
		Loader: loader,
		Logger: logger,
	}
}

// Run loads and lints every source. Per-document load failures are kept in
// the result; Run itself fails only on cancellation or, with FailFast, on
// the first load failure.
func (r *Runner) Run(ctx context.Context, sources []string, opts Options) (*Result, error) {
	opts.SetDefaults()
	start := time.Now()

	result := &Result{
		ID:        uuid.NewString(),
		Documents: make([]DocumentResult, len(sources)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, src := range sources {
		g.Go(func() error {
			res := r.runOne(gctx, src, opts.Refresh)
			result.Documents[i] = res
			if res.Failed() && opts.FailFast {
				return res.Err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.tally()
	result.Stats.Duration = time.Since(start)

	r.Logger.Debug("lint complete",
		"documents", result.Stats.Documents,
		"failed", result.Stats.Failed,
		"nodes", result.Stats.Nodes,
		"violations", result.Stats.Violations,
		"duration", result.Stats.Duration.Round(time.Millisecond))

	return result, nil
}

func (r *Runner) runOne(ctx context.Context, src string, refresh bool) DocumentResult {
	name := source.Redact(src)
	hooks := observability.Lint()
	hooks.OnLintStart(ctx, name)
	start := time.Now()

	doc, err := r.Loader.Load(ctx, src, refresh)
	if err != nil {
		hooks.OnLintComplete(ctx, name, 0, 0, time.Since(start), err)
		r.Logger.Debug("load failed", "source", name, "err", err)
		return DocumentResult{Source: name, Err: err, Duration: time.Since(start)}
	}

	res := r.LintDocument(ctx, name, doc)
	res.Duration = time.Since(start)
	hooks.OnLintComplete(ctx, name, res.NodesChecked, len(res.Violations), res.Duration, nil)
	return res
}

// LintDocument lints an already loaded document.
func (r *Runner) LintDocument(ctx context.Context, src string, doc *document.Document) DocumentResult {
	report := r.Engine.LintDocument(doc)

	hooks := observability.Lint()
	for _, v := range report.Violations {
		hooks.OnViolation(ctx, src, v.Type)
	}

	r.Logger.Debug("linted document",
		"source", src,
		"nodes", report.NodesChecked,
		"violations", len(report.Violations))

	return DocumentResult{
		Source:       src,
		Name:         doc.Name,
		Document:     doc,
		Violations:   report.Violations,
		NodesChecked: report.NodesChecked,
	}
}
