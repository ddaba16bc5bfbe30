// Package config handles the configuration directory and the settings
// loaded from config.yaml and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	// AppName is the application directory name.
	AppName = "tasksync"

	// ConfigFile is the settings filename inside the config directory.
	ConfigFile = "config.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// EnvPrefix prefixes environment overrides, e.g. TASKSYNC_BASE_URL.
	EnvPrefix = "TASKSYNC"
)

// Backends.
const (
	BackendREST        = "rest"
	BackendGoogleTasks = "googletasks"
)

// Defaults.
const (
	DefaultBaseURL   = "http://localhost:8080/api/tasks"
	DefaultListen    = ":8501"
	DefaultLogFormat = "text"
)

// Config holds configuration paths and settings.
// It is built once at startup and passed to everything that needs it.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Backend selects the task store: "rest" or "googletasks".
	Backend string

	// BaseURL is the REST store collection endpoint.
	BaseURL string

	// Listen is the web UI listen address.
	Listen string

	// Timeout bounds each store call. Zero means no override.
	Timeout time.Duration

	// LogFormat is "text" or "json".
	LogFormat string

	// DetailAllErrors makes every failure notice carry the store's error
	// text, not only update.
	DetailAllErrors bool
}

// New creates a Config for the default or specified config directory and
// loads config.yaml from it (if present) plus TASKSYNC_* environment overrides.
// If configDir is empty, uses XDG_CONFIG_HOME/tasksync or $HOME/.config/tasksync.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) load() error {
	v := viper.New()
	v.SetDefault("backend", BackendREST)
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("listen", DefaultListen)
	v.SetDefault("timeout", "0s")
	v.SetDefault("log_format", DefaultLogFormat)
	v.SetDefault("detail_all_errors", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if c.HasConfigFile() {
		v.SetConfigFile(c.ConfigPath())
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	c.Backend = v.GetString("backend")
	c.BaseURL = v.GetString("base_url")
	c.Listen = v.GetString("listen")
	c.Timeout = v.GetDuration("timeout")
	c.LogFormat = v.GetString("log_format")
	c.DetailAllErrors = v.GetBool("detail_all_errors")

	return c.Validate()
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendREST, BackendGoogleTasks:
	default:
		return fmt.Errorf("unknown backend: %s", c.Backend)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %s", c.LogFormat)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasConfigFile checks if config.yaml exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
