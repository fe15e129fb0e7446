package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// PlaceholderAppPath is the compiled-in default for the app path. It is
// deliberately unusable: any attempt to serve with it still in place must
// fail at startup rather than silently scanning the wrong tree.
const PlaceholderAppPath = "/path/to/fleet-app"

// EnvAppPath is the environment variable holding the Laravel app root.
const EnvAppPath = "FLEETLENS_APP_PATH"

// Config is the full runtime configuration. Only AppPath is required;
// everything else has spec-level defaults.
type Config struct {
	AppPath        string        `mapstructure:"app_path"`
	PHPBinary      string        `mapstructure:"php_binary"`
	RouteCacheTTL  time.Duration `mapstructure:"route_cache_ttl"`
	ArtisanTimeout time.Duration `mapstructure:"artisan_timeout"`
	AnalyzeTimeout time.Duration `mapstructure:"analyze_timeout"`
}

// Load builds the configuration from defaults, an optional
// .fleetlens/config.json next to the app, and environment overrides.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app_path", PlaceholderAppPath)
	v.SetDefault("php_binary", "php")
	v.SetDefault("route_cache_ttl", "300s")
	v.SetDefault("artisan_timeout", "15s")
	v.SetDefault("analyze_timeout", "30s")

	v.SetEnvPrefix("FLEETLENS")
	v.BindEnv("app_path")
	v.BindEnv("php_binary")

	v.SetConfigName("config")
	v.SetConfigType("json")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".fleetlens"))
	}
	v.AddConfigPath(".fleetlens")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the app path has been configured and points at
// something that looks like the fleet app (an artisan script at its root).
func (c *Config) Validate() error {
	if c.AppPath == "" || c.AppPath == PlaceholderAppPath {
		return fmt.Errorf("app path not configured: set %s to the Laravel application root", EnvAppPath)
	}
	info, err := os.Stat(c.AppPath)
	if err != nil {
		return fmt.Errorf("app path %s: %w", c.AppPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("app path %s is not a directory", c.AppPath)
	}
	if _, err := os.Stat(filepath.Join(c.AppPath, "artisan")); err != nil {
		return fmt.Errorf("app path %s does not look like a Laravel root (no artisan script)", c.AppPath)
	}
	return nil
}
