package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/contribchart/internal/config"
	"github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/export"
	"github.com/matzehuels/contribchart/pkg/httputil"
	"github.com/matzehuels/contribchart/pkg/view"
)

// generateOptions holds flags for the generate command.
type generateOptions struct {
	theme   string
	output  string
	scale   float64
	share   bool
	baseURL string
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "generate <username>",
		Aliases: []string{"gen"},
		Short:   "Draw a user's contribution chart to a PNG file",
		Long: `Fetch every year of a user's contribution calendar and draw it into a single PNG.

Use --share to upload the image and print a link that posts it.`,
		Example: `  contribchart generate octocat
  contribchart generate octocat -t dracula -o octocat.png
  contribchart generate octocat --share`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), args[0], opts.apply(*cfg), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "chart theme (see 'contribchart themes')")
	cmd.Flags().StringVarP(&opts.output, "output", "o", export.Filename, "output file")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixel scale factor (default from config, 2)")
	cmd.Flags().BoolVar(&opts.share, "share", false, "upload the chart and print a share link")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "contributions API base URL")

	cmd.RegisterFlagCompletionFunc("theme", themeCompletion)

	return cmd
}

// apply layers the flags that were set over cfg.
func (o generateOptions) apply(cfg config.Config) *config.Config {
	if o.theme != "" {
		cfg.Chart.Theme = o.theme
	}
	if o.scale > 0 {
		cfg.Chart.Scale = o.scale
	}
	if o.baseURL != "" {
		cfg.API.BaseURL = o.baseURL
	}
	return &cfg
}

func (c *CLI) runGenerate(ctx context.Context, username string, cfg *config.Config, opts generateOptions) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	ctrl := newController(cfg, newFetcher(cfg))
	ctrl.SetUsername(username)

	status, err := c.submit(ctx, ctrl)
	if err != nil {
		return err
	}
	state := ctrl.State()
	if status != view.Ready {
		printError("%s", state.Err)
		return errors.New(errors.ErrCodeFetchFailed, "%s: %s", username, status)
	}
	if state.Err != "" {
		printError("%s", state.Err)
		return errors.New(errors.ErrCodeRenderFailed, "draw chart for %s", username)
	}

	prog := newProgress(logger)
	if _, err := export.SaveFile(ctrl.Canvas(), opts.output); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	prog.done("Saved chart")

	years := len(state.Data.Years)
	printSuccess("Drew %d years of contributions for @%s", years, username)
	printFile(opts.output)

	if opts.share {
		link, err := ctrl.Share(ctx, newSharer(cfg))
		if err != nil {
			printWarning("%s", errors.UserMessage(err))
			return err
		}
		printKeyValue("Share", StyleLink.Render(link))
	} else {
		printNextStep("Share it", "contribchart generate "+username+" --share")
	}
	return nil
}

// submit runs the fetch behind a spinner. A cancelled fetch still resolves
// the controller, as failed, and then reports ctx's error.
func (c *CLI) submit(ctx context.Context, ctrl *view.Controller) (view.Status, error) {
	username, err := ctrl.Begin()
	if err != nil {
		return ctrl.Status(), err
	}

	var spin *Spinner
	if isTerminal(os.Stderr) {
		spin = newSpinner(ctx, "Please wait, I'm visiting your profile...")
		spin.Start()
	}
	data, fetchErr := ctrl.Fetch(ctx, username)
	if spin != nil {
		spin.Stop()
	}

	status := ctrl.Resolve(ctx, username, data, fetchErr)
	if httputil.Canceled(ctx, fetchErr) {
		return status, ctx.Err()
	}
	if fetchErr != nil {
		loggerFromContext(ctx).Debug("Fetch failed", "err", fetchErr)
	}
	return status, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
