package openapi

import (
	"fmt"
	"net/url"
	"os"
)

// Config holds document metadata. ServerURL, when set, is advertised in
// the servers list instead of the API base path, which is what clients
// behind a reverse proxy need.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	ServerURL   string `toml:"server_url"`
}

// ConfigEnv names the environment variables that override Config fields.
type ConfigEnv struct {
	Title       string
	Description string
	ServerURL   string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.Title == "" {
		c.Title = "Assay API"
	}
	if c.Description == "" {
		c.Description = "Client evaluation scoring, tiering, and recommendation service."
	}
	if env != nil {
		override(&c.Title, env.Title)
		override(&c.Description, env.Description)
		override(&c.ServerURL, env.ServerURL)
	}

	if c.ServerURL != "" {
		u, err := url.Parse(c.ServerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid server_url: %q", c.ServerURL)
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.ServerURL != "" {
		c.ServerURL = overlay.ServerURL
	}
}

// Server returns ServerURL when configured, otherwise basePath.
func (c *Config) Server(basePath string) string {
	if c.ServerURL != "" {
		return c.ServerURL
	}
	return basePath
}

func override(dst *string, key string) {
	if key == "" {
		return
	}
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
