package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/config"
	"github.com/co42/slackline/internal/output"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return current.printer.Print(newConfigInfo(current.cfg))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	// the target file may not exist yet
	PersistentPreRunE: setupDefaults,
	RunE: func(_ *cobra.Command, _ []string) error {
		path := flagConfig
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if path == "" {
			return fmt.Errorf("%w: cannot determine home directory, pass --config", config.ErrInvalid)
		}
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		return current.printer.Success("Wrote " + path)
	},
}

// ConfigInfo is the effective configuration with the token redacted.
type ConfigInfo struct {
	Path        string   `json:"path"`
	Token       string   `json:"token"`
	CookieSet   bool     `json:"cookie_set"`
	APIURL      string   `json:"api_url"`
	Timezone    string   `json:"timezone"`
	Concurrency int      `json:"concurrency"`
	RateLimit   float64  `json:"rate_limit"`
	Color       string   `json:"color"`
	Include     []string `json:"include"`
	Exclude     []string `json:"exclude"`
}

func newConfigInfo(cfg *config.Config) ConfigInfo {
	token := cfg.RedactedToken()
	if flagToken != "" {
		token = (&config.Config{Token: flagToken}).RedactedToken()
	}
	info := ConfigInfo{
		Path:        cfg.ConfigFile(),
		Token:       token,
		CookieSet:   cfg.Cookie != "",
		APIURL:      cfg.APIURL,
		Timezone:    cfg.Timezone,
		Concurrency: cfg.Concurrency,
		RateLimit:   cfg.RateLimit,
		Color:       cfg.Color,
		Include:     cfg.Include,
		Exclude:     cfg.Exclude,
	}
	if info.Include == nil {
		info.Include = []string{}
	}
	if info.Exclude == nil {
		info.Exclude = []string{}
	}
	return info
}

func (c ConfigInfo) WriteHuman(w io.Writer, t *output.Theme) {
	path := c.Path
	if path == "" {
		path = "(defaults)"
	}
	token := c.Token
	if token == "" {
		token = t.Red.Sprint("(not set)")
	}
	rate := "unlimited"
	if c.RateLimit > 0 {
		rate = fmt.Sprintf("%g req/s", c.RateLimit)
	}
	fmt.Fprintf(w, "%s %s\n", t.Cyan.Sprint("Config file:"), path)
	fmt.Fprintf(w, "%s %s\n", t.Cyan.Sprint("Token:      "), token)
	fmt.Fprintf(w, "%s %t\n", t.Cyan.Sprint("Cookie set: "), c.CookieSet)
	fmt.Fprintf(w, "%s %s\n", t.Cyan.Sprint("API URL:    "), c.APIURL)
	fmt.Fprintf(w, "%s %s\n", t.Cyan.Sprint("Timezone:   "), c.Timezone)
	fmt.Fprintf(w, "%s %d\n", t.Cyan.Sprint("Concurrency:"), c.Concurrency)
	fmt.Fprintf(w, "%s %s\n", t.Cyan.Sprint("Rate limit: "), rate)
	fmt.Fprintf(w, "%s %s\n", t.Cyan.Sprint("Color:      "), c.Color)
	fmt.Fprintf(w, "%s %s\n", t.Cyan.Sprint("Include:    "), formatPatterns(c.Include))
	fmt.Fprintf(w, "%s %s\n", t.Cyan.Sprint("Exclude:    "), formatPatterns(c.Exclude))
}

// formatPatterns formats a slice of patterns for display.
func formatPatterns(patterns []string) string {
	if len(patterns) == 0 {
		return "(none)"
	}
	return "[" + strings.Join(patterns, ", ") + "]"
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
