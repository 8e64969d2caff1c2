// Package config loads the optional contribchart configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/contribchart/config.toml
// (~/.config/contribchart/config.toml when XDG_CONFIG_HOME is unset). Every
// key is optional; a missing file yields [Default]. Command-line flags are
// applied on top by the CLI.
//
//	[api]
//	base_url = "https://github-contributions.vercel.app/api/v1"
//
//	[chart]
//	theme = "dracula"
//	scale = 2
//
//	[share]
//	upload_url = "https://api.imgur.com/3/image"
//	client_id  = "..."
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/contribchart/pkg/contrib"
	cerrors "github.com/matzehuels/contribchart/pkg/errors"
	"github.com/matzehuels/contribchart/pkg/export"
	"github.com/matzehuels/contribchart/pkg/render/chart"
	"github.com/matzehuels/contribchart/pkg/theme"
	"github.com/matzehuels/contribchart/pkg/view"
)

const appName = "contribchart"

// Config is the full set of tunables.
type Config struct {
	API    API    `toml:"api"`
	Chart  Chart  `toml:"chart"`
	Share  Share  `toml:"share"`
	Server Server `toml:"server"`
}

// API configures the contributions endpoint.
type API struct {
	BaseURL string `toml:"base_url" validate:"required,http_url"`
	Token   string `toml:"token"`
}

// Chart configures drawing.
type Chart struct {
	Theme  string  `toml:"theme" validate:"required,theme"`
	Scale  float64 `toml:"scale" validate:"gt=0,lte=4"`
	Footer string  `toml:"footer"`
}

// Share configures the image host and share intent.
type Share struct {
	UploadURL string `toml:"upload_url" validate:"required,http_url"`
	IntentURL string `toml:"intent_url" validate:"required,http_url"`
	ClientID  string `toml:"client_id"`
	Text      string `toml:"text"`
}

// Server configures the web page host.
type Server struct {
	Addr       string   `toml:"addr" validate:"required,hostname_port"`
	SessionTTL Duration `toml:"session_ttl" validate:"-"`
}

// Duration decodes TOML strings such as "30m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: API{BaseURL: contrib.DefaultBaseURL},
		Chart: Chart{
			Theme:  theme.Default,
			Scale:  chart.DefaultScale,
			Footer: view.DefaultFooter,
		},
		Share: Share{
			UploadURL: export.DefaultUploadURL,
			IntentURL: export.DefaultIntentURL,
			Text:      export.DefaultShareText,
		},
		Server: Server{
			Addr:       ":8080",
			SessionTTL: Duration{2 * time.Hour},
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path over the defaults and validates the result. An empty path
// means [Path]; a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return cfg, nil
	case err != nil:
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
