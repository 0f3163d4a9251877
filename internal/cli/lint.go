package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/designlint/pkg/config"
	"github.com/matzehuels/designlint/pkg/errors"
	"github.com/matzehuels/designlint/pkg/lint"
	"github.com/matzehuels/designlint/pkg/observability"
	"github.com/matzehuels/designlint/pkg/pipeline"
	"github.com/matzehuels/designlint/pkg/report"
	"github.com/matzehuels/designlint/pkg/source"
)

// lintOpts holds the command-line flags for the lint command. Flags that are
// set override the discovered configuration.
type lintOpts struct {
	configPath  string
	format      string
	radii       string
	disable     []string
	concurrency int
	refresh     bool
	noCache     bool
	interactive bool
	fail        bool
	failFast    bool
}

// lintCommand creates the lint command.
func (c *CLI) lintCommand() *cobra.Command {
	opts := lintOpts{concurrency: pipeline.DefaultConcurrency}

	cmd := &cobra.Command{
		Use:   "lint <file-or-url>...",
		Short: "Check design exports for values that bypass the style library",
		Long: `Check design exports for values that bypass the style library.

Each argument is a path to an exported document (JSON) or an http(s) URL
that returns one. Remote exports are cached according to the [cache]
section of the configuration.

Examples:
  designlint lint home.json checkout.json
  designlint lint --format sarif exports/*.json > designlint.sarif
  designlint lint --radii 0,4,8 --disable effects https://example.com/export.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, cfg); err != nil {
				return err
			}
			return c.runLint(cmd.Context(), cmd.OutOrStdout(), cfg, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: discovered designlint.toml)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: text, json, sarif")
	cmd.Flags().StringVar(&opts.radii, "radii", "", "allowed corner radii, comma-separated (replaces config)")
	cmd.Flags().StringSliceVar(&opts.disable, "disable", nil, "rules to disable (repeatable)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", opts.concurrency, "documents linted in parallel")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached remote documents")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse violations interactively (terminal only)")
	cmd.Flags().BoolVar(&opts.fail, "fail", false, "exit with status 1 when violations are found")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first document that cannot be loaded")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"text", "json", "sarif"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("disable", cobra.FixedCompletions(
		lint.RuleNames, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// apply merges the flags that were set into cfg and revalidates it.
func (o *lintOpts) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(o.format)
	}
	if flags.Changed("radii") {
		radii, err := parseRadiiFlag(o.radii)
		if err != nil {
			return err
		}
		cfg.Rules.Radii = radii
	}
	if len(o.disable) > 0 {
		cfg.Rules.Disabled = append(cfg.Rules.Disabled, o.disable...)
	}
	if o.fail {
		cfg.Output.FailOnViolation = true
	}
	return cfg.Validate()
}

// parseRadiiFlag parses "0,4,8" into an allow-list.
func parseRadiiFlag(s string) ([]float64, error) {
	var radii []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid radius %q", part)
		}
		radii = append(radii, r)
	}
	if len(radii) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "--radii needs at least one value")
	}
	return radii, nil
}

// runLint lints sources and writes the report to w.
func (c *CLI) runLint(ctx context.Context, w io.Writer, cfg *config.Config, sources []string, opts lintOpts) error {
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	runner, closeCache, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer closeCache()

	targets, err := resolveTargets(sources)
	if err != nil {
		return err
	}

	styled := format == report.FormatText && isTerminal(os.Stdout)
	prog := newProgress(c.Logger)

	var spinner *Spinner
	if isTerminal(os.Stderr) {
		spinner = newSpinner(ctx, os.Stderr, fmt.Sprintf("Linting %d document(s)...", len(targets)))
		restore := trackProgress(spinner, len(targets))
		defer restore()
		spinner.Start()
	}

	result, err := runner.Run(ctx, targets, pipeline.Options{
		Concurrency: opts.concurrency,
		Refresh:     opts.refresh,
		FailFast:    opts.failFast,
	})
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Lint failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	// Report the arguments as given, not the resolved paths.
	for i := range result.Documents {
		result.Documents[i].Source = source.Redact(sources[i])
	}
	prog.done(fmt.Sprintf("Linted %d document(s)", result.Stats.Documents))

	switch {
	case opts.interactive && isTerminal(os.Stdout):
		if err := runBrowser(flattenViolations(result)); err != nil {
			return fmt.Errorf("violation browser: %w", err)
		}
	case opts.interactive:
		c.Logger.Warn("--interactive needs a terminal; printing the report instead")
		fallthrough
	default:
		if styled {
			printLintResult(w, result)
		} else if err := report.NewReporter(w, format).Report(result); err != nil {
			return err
		}
	}

	if err := result.Err(); err != nil {
		return fmt.Errorf("%d document(s) could not be linted", result.Stats.Failed)
	}
	if cfg.Output.FailOnViolation && result.HasViolations() {
		return ErrViolations
	}
	return nil
}

// resolveTargets makes local paths absolute; URLs pass through.
func resolveTargets(sources []string) ([]string, error) {
	targets := make([]string, len(sources))
	for i, src := range sources {
		if errors.IsURL(src) {
			targets[i] = src
			continue
		}
		abs, err := filepath.Abs(src)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", src)
		}
		targets[i] = abs
	}
	return targets, nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// progressHooks forwards lint events and counts finished documents into the
// spinner message.
type progressHooks struct {
	observability.LintHooks
	spinner *Spinner
	total   int
	done    atomic.Int64
}

func (h *progressHooks) OnLintComplete(ctx context.Context, source string, nodes, violations int, d time.Duration, err error) {
	h.LintHooks.OnLintComplete(ctx, source, nodes, violations, d, err)
	n := h.done.Add(1)
	h.spinner.Update(fmt.Sprintf("Linting %d/%d documents...", n, h.total))
}

// trackProgress installs progress hooks for the duration of a run and
// returns a func that restores the previous hooks.
func trackProgress(s *Spinner, total int) func() {
	prev := observability.Lint()
	observability.SetLintHooks(&progressHooks{LintHooks: prev, spinner: s, total: total})
	return func() { observability.SetLintHooks(prev) }
}
