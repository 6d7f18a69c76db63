package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load.
// For example, server.port is configured via PATTERNLAB_SERVER_PORT.
const envPrefix = "PATTERNLAB"

// configKeys lists every known configuration key. Viper's AutomaticEnv
// does not surface env-only keys through Unmarshal, so each key is
// bound explicitly.
var configKeys = []string{
	"server.port",
	"server.log_level",
	"gallery.path",
	"auth.jwt_secret",
	"auth.admin_password_hash",
	"auth.token_lifetime_minutes",
	"catalog.path",
}

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Returns a populated Config struct or an error
// if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for everything that has a sensible one. Secrets have no
	// default and must be provided by the environment.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("gallery.path", "patternlab.db")
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("catalog.path", "docs/catalog.yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
