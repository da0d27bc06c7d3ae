package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	EnvAuthTokenSecret = "ASSAY_AUTH_TOKEN_SECRET"
	EnvAuthTokenTTL    = "ASSAY_AUTH_TOKEN_TTL"
	EnvAuthIssuer      = "ASSAY_AUTH_ISSUER"
	EnvAuthBcryptCost  = "ASSAY_AUTH_BCRYPT_COST"
	EnvAuthRequire     = "ASSAY_AUTH_REQUIRE"
)

// AuthConfig holds credential hashing and token issuance parameters.
// Require puts every route except registration and login behind a
// bearer token.
type AuthConfig struct {
	TokenSecret string `toml:"token_secret"`
	TokenTTL    string `toml:"token_ttl"`
	Issuer      string `toml:"issuer"`
	BcryptCost  int    `toml:"bcrypt_cost"`
	Require     bool   `toml:"require"`
}

// TokenTTLDuration returns TokenTTL as a time.Duration.
func (c *AuthConfig) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *AuthConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *AuthConfig) Merge(overlay *AuthConfig) {
	if overlay.TokenSecret != "" {
		c.TokenSecret = overlay.TokenSecret
	}
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.BcryptCost != 0 {
		c.BcryptCost = overlay.BcryptCost
	}
	if overlay.Require {
		c.Require = true
	}
}

func (c *AuthConfig) loadDefaults() {
	if c.TokenTTL == "" {
		c.TokenTTL = "1h"
	}
	if c.Issuer == "" {
		c.Issuer = "assay"
	}
	if c.BcryptCost == 0 {
		c.BcryptCost = bcrypt.DefaultCost
	}
}

func (c *AuthConfig) loadEnv() {
	if v := os.Getenv(EnvAuthTokenSecret); v != "" {
		c.TokenSecret = v
	}
	if v := os.Getenv(EnvAuthTokenTTL); v != "" {
		c.TokenTTL = v
	}
	if v := os.Getenv(EnvAuthIssuer); v != "" {
		c.Issuer = v
	}
	if v := os.Getenv(EnvAuthBcryptCost); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BcryptCost = n
		}
	}
	if v := os.Getenv(EnvAuthRequire); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Require = b
		}
	}
}

func (c *AuthConfig) validate() error {
	if c.TokenSecret == "" {
		return fmt.Errorf("token_secret required")
	}
	d, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost %d outside [%d, %d]", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
