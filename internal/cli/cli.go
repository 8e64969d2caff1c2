package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/contribchart/internal/config"
	"github.com/matzehuels/contribchart/pkg/buildinfo"
	"github.com/matzehuels/contribchart/pkg/contrib"
	"github.com/matzehuels/contribchart/pkg/export"
	"github.com/matzehuels/contribchart/pkg/observability"
	"github.com/matzehuels/contribchart/pkg/render/chart"
	"github.com/matzehuels/contribchart/pkg/view"
)

// appName is the application name used for directories and display.
const appName = "contribchart"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "contribchart draws all your GitHub contributions in one image",
		Long:         `contribchart fetches a user's contribution calendar and draws every year of it into a single themed PNG, from the command line, an interactive terminal UI or a small web page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := newLogHooks(c.Logger)
			observability.SetChartHooks(hooks)
			observability.SetHTTPHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+appName+"/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file once per process.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.config = cfg
	return cfg, nil
}

// =============================================================================
// Component Factories
// =============================================================================

func newFetcher(cfg *config.Config) *contrib.Client {
	return contrib.NewClient(cfg.API.BaseURL,
		contrib.WithToken(cfg.API.Token),
		contrib.WithUserAgent(buildinfo.UserAgent()),
	)
}

func newSharer(cfg *config.Config) *export.Sharer {
	return export.NewSharer(
		export.WithUploadURL(cfg.Share.UploadURL),
		export.WithIntentURL(cfg.Share.IntentURL),
		export.WithClientID(cfg.Share.ClientID),
		export.WithText(cfg.Share.Text),
	)
}

func newController(cfg *config.Config, f view.Fetcher) *view.Controller {
	return view.New(f, chart.New(chart.WithScale(cfg.Chart.Scale)),
		view.WithTheme(cfg.Chart.Theme),
		view.WithFooter(cfg.Chart.Footer),
	)
}
