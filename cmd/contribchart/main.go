package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/contribchart/internal/cli"
	cerrors "github.com/matzehuels/contribchart/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		code := exitCode(err)
		if code != exitCanceled {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}

const (
	exitFailure  = 1
	exitUsage    = 2
	exitCanceled = 130 // Standard shell convention for SIGINT
)

// exitCode maps err to the process exit status. Bad input and bad
// configuration exit with 2 so that scripts can tell them from failed
// fetches, draws and uploads.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return exitCanceled
	}
	switch cerrors.GetCode(err) {
	case cerrors.ErrCodeInvalidInput, cerrors.ErrCodeInvalidTheme, cerrors.ErrCodeInvalidConfig:
		return exitUsage
	}
	return exitFailure
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is only known once flags are parsed.
	preRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return preRun(cmd, args)
	}

	return root.ExecuteContext(ctx)
}
