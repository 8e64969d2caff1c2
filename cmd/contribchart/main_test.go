package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	cerrors "github.com/matzehuels/contribchart/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"canceled", context.Canceled, exitCanceled},
		{"wrapped cancel", fmt.Errorf("fetch: %w", context.Canceled), exitCanceled},
		{"invalid config", cerrors.New(cerrors.ErrCodeInvalidConfig, "chart.scale must be greater than 0"), exitUsage},
		{"invalid theme", cerrors.New(cerrors.ErrCodeInvalidTheme, "unknown theme"), exitUsage},
		{"invalid input", cerrors.New(cerrors.ErrCodeInvalidInput, "tui needs a terminal"), exitUsage},
		{"fetch failed", cerrors.New(cerrors.ErrCodeFetchFailed, "octocat: failed"), exitFailure},
		{"plain", errors.New("unknown command"), exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
