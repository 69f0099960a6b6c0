// Package config loads the tube-api server configuration from a YAML
// file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the tube-api server settings.
type Config struct {
	Server Server `yaml:"server"`
	Source Source `yaml:"source"`
}

// Server configures the HTTP listener.
type Server struct {
	Port int    `yaml:"port" validate:"gte=1,lte=65535"`
	Env  string `yaml:"env" validate:"oneof=development staging production"`
}

// Source configures where status snapshots come from: the scraped board or
// the TfL Unified API.
type Source struct {
	Kind string `yaml:"kind" validate:"oneof=scrape api"`

	// URL of the service board (scrape) or API base (api). Empty uses the
	// source's default.
	URL string `yaml:"url" validate:"omitempty,url"`

	// TfL app credentials, api kind only.
	AppID  string `yaml:"app_id"`
	AppKey string `yaml:"app_key"`

	// RefreshSeconds between reloads; 0 disables periodic refresh.
	RefreshSeconds int `yaml:"refresh_seconds" validate:"gte=0"`
}

// Default is the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: Server{Port: 4000, Env: "development"},
		Source: Source{Kind: "scrape", RefreshSeconds: 60},
	}
}

// Load reads and validates the configuration at path, filling anything
// unset from Default. A missing file is not an error; the defaults are
// returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
