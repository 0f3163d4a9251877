package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/matzehuels/designlint/pkg/buildinfo"
	"github.com/matzehuels/designlint/pkg/cache"
	"github.com/matzehuels/designlint/pkg/config"
	"github.com/matzehuels/designlint/pkg/lint"
	"github.com/matzehuels/designlint/pkg/observability"
	"github.com/matzehuels/designlint/pkg/pipeline"
	"github.com/matzehuels/designlint/pkg/source"
)

const appName = "designlint"

// Log levels accepted by New.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries the logger every subcommand shares.
type CLI struct {
	Logger *log.Logger
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the command tree. Its pre-run attaches the logger to
// the command context and routes observability events into it.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "designlint checks design exports for values that bypass the style library",
		Long: `designlint walks the node tree of a design export and reports layers whose
colors, text, effects, strokes or corner radii are not backed by a shared
style, or that use a style reserved for a different kind of layer.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))

			hooks := observability.NewLogHooks(c.Logger)
			observability.SetLintHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.lintCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. Local paths resolve
// against the OS root; the caller passes absolute paths. The returned close
// func releases the cache.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) (*pipeline.Runner, func() error, error) {
	engine, err := lint.NewEngine(cfg.EngineOptions())
	if err != nil {
		return nil, nil, err
	}

	dc, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, nil, err
	}

	var keyer cache.Keyer
	if cfg.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.Prefix)
	}
	loader := &source.Resolver{
		Files: osfs.New("/"),
		HTTP:  source.NewHTTP(dc, keyer, cfg.CacheTTL(), httpHeaders()),
	}
	return pipeline.NewRunner(engine, loader, c.Logger), dc.Close, nil
}

// newCache builds the configured document cache. A file cache that cannot
// be created degrades to no caching with a warning.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
	default:
		fc, err := cache.NewFileCache(cfg.CacheDir())
		if err != nil {
			c.Logger.Warn("Caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	}
}

// httpHeaders returns headers sent with every document request.
// DESIGNLINT_TOKEN is sent as a bearer token when set.
func httpHeaders() map[string]string {
	headers := map[string]string{"Accept": "application/json"}
	if token := os.Getenv("DESIGNLINT_TOKEN"); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

// loadConfig discovers the configuration from the working directory.
func loadConfig(explicit string) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return config.Discover(explicit, wd)
}
