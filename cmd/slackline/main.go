package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/co42/slackline/internal/config"
	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/slack"
)

// Version information, injected at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagJSON    bool
	flagQuiet   bool
	flagToken   string
	flagConfig  string
	flagVerbose bool
	flagColor   string
)

// app is the state shared by the commands of one invocation.
type app struct {
	cfg     *config.Config
	printer *output.Printer
	log     *slog.Logger
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "slackline",
	Short: "Read-only Slack CLI for scripts and agents",
	Long: `slackline is a read-only command-line client for the Slack Web API.

Every command prints human-readable text by default, or JSON with --json.
The token comes from --token, SLACKLINE_TOKEN, SLACK_TOKEN, SLACK_BOT_TOKEN
or SLACK_USER_TOKEN, in that order. A .env file in the working directory is
loaded first.`,
	Version:           fmt.Sprintf("%s (build %s, %s)", Version, Build, BuildTime),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "output JSON")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "suppress human-readable output")
	pf.StringVar(&flagToken, "token", "", "Slack token (overrides config and environment)")
	pf.StringVarP(&flagConfig, "config", "c", "", "config file (default ~/.config/slackline/config.yaml)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log API calls and degraded lookups to stderr")
	pf.StringVar(&flagColor, "color", "", "color output: auto, always or never")
}

// setup loads configuration and builds the printer and logger.
func setup(cmd *cobra.Command, _ []string) error {
	return prepare(cmd, true)
}

// setupDefaults is setup for commands that must not read the config file.
func setupDefaults(cmd *cobra.Command, _ []string) error {
	return prepare(cmd, false)
}

func prepare(cmd *cobra.Command, loadConfig bool) error {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ignoring .env", "error", err)
	}

	cfg := config.Default()
	if loadConfig {
		var err error
		if cfg, err = config.Load(flagConfig); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = flagColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	mode, err := output.ParseColorMode(cfg.Color)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}

	current = &app{
		cfg: cfg,
		printer: output.New(output.Options{
			JSON:     flagJSON,
			Quiet:    flagQuiet,
			Stdout:   cmd.OutOrStdout(),
			Stderr:   cmd.ErrOrStderr(),
			Color:    mode,
			Location: loc,
		}),
		log: logger,
	}
	if f := cfg.ConfigFile(); f != "" {
		logger.Debug("loaded config", "path", f)
	}
	return nil
}

// client builds the Slack session. --token beats every other source.
func (a *app) client() (*slack.Client, error) {
	token := a.cfg.Token
	if flagToken != "" {
		token = flagToken
	}
	creds, err := slack.NewCredentials(token, a.cfg.Cookie)
	if err != nil {
		return nil, err
	}
	a.log.Debug("slack session", "token_kind", creds.TokenKind(), "api_url", a.cfg.APIURL)
	return slack.NewClient(creds).
		WithBaseURL(a.cfg.APIURL).
		WithRateLimit(a.cfg.RateLimit).
		WithLogger(a.log), nil
}

// run executes the root command and maps its error to an exit code.
func run(ctx context.Context, args []string) int {
	current = nil
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	p := output.New(output.Options{Stdout: rootCmd.OutOrStdout(), Stderr: rootCmd.ErrOrStderr(), Color: output.ColorNever})
	if current != nil {
		p = current.printer
	}
	if perr := p.Error(err.Error()); perr != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return exitCode(err)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
