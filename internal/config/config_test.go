package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	cerrors "github.com/matzehuels/contribchart/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Chart.Theme != "standard" {
		t.Errorf("theme = %q, want default", cfg.Chart.Theme)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !cerrors.Is(err, cerrors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want %s", err, cerrors.ErrCodeInvalidConfig)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[api]
base_url = "http://localhost:9000/v1"

[chart]
theme = "panda"
scale = 1.5

[server]
addr = "127.0.0.1:3000"
session_ttl = "45m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.BaseURL != "http://localhost:9000/v1" {
		t.Errorf("base_url = %q", cfg.API.BaseURL)
	}
	if cfg.Chart.Theme != "panda" || cfg.Chart.Scale != 1.5 {
		t.Errorf("chart = %+v", cfg.Chart)
	}
	if cfg.Server.Addr != "127.0.0.1:3000" || cfg.Server.SessionTTL.Duration != 45*time.Minute {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Share.UploadURL == "" {
		t.Error("untouched sections should keep their defaults")
	}
}

func TestLoad_XDGPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if err := os.MkdirAll(filepath.Join(home, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, appName, "config.toml"), []byte("[chart]\ntheme = \"pink\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Chart.Theme != "pink" {
		t.Errorf("theme = %q, want pink", cfg.Chart.Theme)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"unknown theme", "[chart]\ntheme = \"solarized\"\n", "chart.theme"},
		{"zero scale", "[chart]\nscale = 0.0\n", "chart.scale"},
		{"huge scale", "[chart]\nscale = 10.0\n", "chart.scale"},
		{"bad url", "[api]\nbase_url = \"not a url\"\n", "api.base_url"},
		{"bad addr", "[server]\naddr = \"localhost\"\n", "server.addr"},
		{"unknown key", "[chart]\ncolour = \"red\"\n", "chart.colour"},
		{"bad duration", "[server]\nsession_ttl = \"soon\"\n", ""},
		{"syntax", "[chart\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !cerrors.Is(err, cerrors.ErrCodeInvalidConfig) {
				t.Fatalf("Load() error = %v, want %s", err, cerrors.ErrCodeInvalidConfig)
			}
			if tt.field != "" && !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should name %s", err, tt.field)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	var c *Config
	if !cerrors.Is(c.Validate(), cerrors.ErrCodeInvalidConfig) {
		t.Error("nil config should be invalid")
	}
}
