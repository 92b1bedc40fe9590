package main

import (
	"errors"

	"github.com/co42/slackline/internal/config"
	"github.com/co42/slackline/internal/slack"
)

// Exit codes.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Missing token or unusable configuration
	ExitAuthError   = 3 // Token rejected or missing scope
	ExitNotFound    = 4 // Channel, user, file or message not found
	ExitRateLimited = 5 // Slack rate limit hit
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, slack.ErrNoToken), errors.Is(err, config.ErrInvalid):
		return ExitConfigError
	case errors.Is(err, slack.ErrAuth):
		return ExitAuthError
	case errors.Is(err, slack.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, slack.ErrRateLimited):
		return ExitRateLimited
	}
	return ExitError
}
