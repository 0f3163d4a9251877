package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/designlint/pkg/observability"
	"github.com/matzehuels/designlint/pkg/server"
)

// serveCommand creates the serve command for the HTTP lint API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lint API over HTTP",
		Long: `Serve the lint API over HTTP.

Routes:
  GET  /healthz     liveness probe
  GET  /v1/rules    built-in rules and whether each is enabled
  POST /v1/lint     lint the document export in the request body
  GET  /v1/stats    documents, violations and cache hits since startup

POST /v1/lint accepts ?radii=0,4,8 to override the radius allow-list for a
single request. The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			srv, err := server.New(cfg.EngineOptions(), loggerFromContext(ctx))
			if err != nil {
				return err
			}
			observability.SetLintHooks(observability.FanOutLint(observability.Lint(), srv.Counters()))
			observability.SetCacheHooks(observability.FanOutCache(observability.Cache(), srv.Counters()))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default: discovered designlint.toml)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
