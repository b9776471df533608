// Package config holds application configuration, loaded from file, env
// and flags in that order of precedence (lowest first).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr        string
	BodyLimitMB int `mapstructure:"body_limit_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Caller bool
}

// Load reads configuration from an optional file plus WAKARU_-prefixed
// env vars. An empty path falls back to ~/.config/wakaru/config.toml if
// one exists; a missing config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("server.body_limit_mb", 32)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.caller", false)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "wakaru"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WAKARU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named file must exist; the default one need not.
		if path != "" {
			return Config{}, fmt.Errorf("reading config %q: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
