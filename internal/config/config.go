// Package config loads slackline settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SLACKLINE_TIMEZONE.
const EnvPrefix = "SLACKLINE"

// Defaults.
const (
	DefaultAPIURL      = "https://slack.com/api/"
	DefaultTimezone    = "UTC"
	DefaultConcurrency = 8
	DefaultRateLimit   = 20.0
	DefaultColor       = "auto"
)

// ErrInvalid marks configuration that cannot be loaded or used.
var ErrInvalid = errors.New("invalid configuration")

// tokenEnvVars are consulted in order when no token is configured.
var tokenEnvVars = []string{"SLACK_TOKEN", "SLACK_BOT_TOKEN", "SLACK_USER_TOKEN"}

// Config holds application configuration loaded from YAML.
type Config struct {
	Token       string   `yaml:"token,omitempty" mapstructure:"token"`
	Cookie      string   `yaml:"cookie,omitempty" mapstructure:"cookie"`
	APIURL      string   `yaml:"api_url" mapstructure:"api_url"`
	Timezone    string   `yaml:"timezone" mapstructure:"timezone"`
	Concurrency int      `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimit   float64  `yaml:"rate_limit" mapstructure:"rate_limit"`
	Color       string   `yaml:"color" mapstructure:"color"`
	Include     []string `yaml:"include" mapstructure:"include"`
	Exclude     []string `yaml:"exclude" mapstructure:"exclude"`

	configFile string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		APIURL:      DefaultAPIURL,
		Timezone:    DefaultTimezone,
		Concurrency: DefaultConcurrency,
		RateLimit:   DefaultRateLimit,
		Color:       DefaultColor,
	}
}

// DefaultConfigPath returns ~/.config/slackline/config.yaml, or "" when the
// home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "slackline", "config.yaml")
}

// Load reads configuration from path, or from DefaultConfigPath when path is
// empty and that file exists. SLACKLINE_* variables override the file.
// An explicit path that cannot be read is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	def := Default()
	v.SetDefault("token", "")
	v.SetDefault("cookie", "")
	v.SetDefault("api_url", def.APIURL)
	v.SetDefault("timezone", def.Timezone)
	v.SetDefault("concurrency", def.Concurrency)
	v.SetDefault("rate_limit", def.RateLimit)
	v.SetDefault("color", def.Color)
	v.SetDefault("include", []string{})
	v.SetDefault("exclude", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path == "" {
		if p := DefaultConfigPath(); p != "" {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: reading %s: %w", ErrInvalid, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.configFile = v.ConfigFileUsed()

	if cfg.Token == "" {
		for _, name := range tokenEnvVars {
			if tok := strings.TrimSpace(os.Getenv(name)); tok != "" {
				cfg.Token = tok
				break
			}
		}
	}
	if cfg.Cookie == "" {
		cfg.Cookie = os.Getenv("SLACK_COOKIE")
	}

	return &cfg, nil
}

// ConfigFile returns the path of the file the config was read from, or ""
// when only defaults and the environment were used.
func (c *Config) ConfigFile() string {
	return c.configFile
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalid, c.Concurrency)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: rate_limit must not be negative, got %g", ErrInvalid, c.RateLimit)
	}
	switch strings.ToLower(c.Color) {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}
	return nil
}

// Location returns the display time zone.
func (c *Config) Location() (*time.Location, error) {
	tz := c.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", ErrInvalid, tz, err)
	}
	return loc, nil
}

// Save writes the config as YAML, creating parent directories. The file is
// readable only by its owner since it may hold a token.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// RedactedToken returns the token with all but its prefix and last four
// characters masked.
func (c *Config) RedactedToken() string {
	tok := c.Token
	if tok == "" {
		return ""
	}
	if len(tok) <= 9 {
		return strings.Repeat("*", len(tok))
	}
	return tok[:5] + strings.Repeat("*", len(tok)-9) + tok[len(tok)-4:]
}
