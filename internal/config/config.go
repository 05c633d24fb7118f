// Package config loads the environment-supplied settings the portal needs
// before it can talk to the workspace: the integration token and the URL
// of the page that holds the support databases.
//
// Environment variables take precedence over the persisted config file;
// they are the deployment-time inputs, the file is the remembered ones.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds the environment inputs consumed by supportctl.
type Config struct {
	// Token is the workspace integration token.
	Token string `env:"SUPPORT_NOTION_TOKEN"`

	// PageURL is the workspace page under which the support databases live.
	PageURL string `env:"SUPPORT_NOTION_PAGE_URL"`

	// ConfigDir overrides the default ~/.supportctl state directory.
	ConfigDir string `env:"SUPPORT_CONFIG_DIR"`
}

// Load parses the configuration from environment variables.
// All fields are optional here; commands report what they are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
