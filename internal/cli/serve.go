package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/contribchart/internal/config"
	"github.com/matzehuels/contribchart/pkg/view"
	"github.com/matzehuels/contribchart/pkg/web"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noShare bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host the chart generator page",
		Long: `Serve the chart generator page over HTTP. Each browser session gets its
own username field, theme and chart. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv := newServer(cfg, c, !noShare)
			printInfo("Listening on %s", StyleLink.Render(cfg.Server.Addr))
			return srv.ListenAndServe(cmd.Context(), cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noShare, "no-share", false, "hide the share button")

	return cmd
}

func newServer(cfg *config.Config, c *CLI, share bool) *web.Server {
	fetcher := newFetcher(cfg)
	opts := web.Options{
		NewController: func() *view.Controller { return newController(cfg, fetcher) },
		Logger:        c.Logger,
		SessionTTL:    cfg.Server.SessionTTL.Duration,
	}
	if share {
		opts.Sharer = newSharer(cfg)
	}
	return web.New(opts)
}
