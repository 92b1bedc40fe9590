package slack

import (
	"errors"
	"fmt"

	slackapi "github.com/rusq/slack"
)

// Error kinds that APIError unwraps to.
var (
	ErrNoToken       = errors.New("no Slack token found: set SLACK_TOKEN, SLACK_BOT_TOKEN or SLACK_USER_TOKEN, or use --token")
	ErrAuth          = errors.New("authentication error")
	ErrNotFound      = errors.New("not found")
	ErrRateLimited   = errors.New("rate limited")
	ErrNoDownloadURL = errors.New("no download URL available")
)

// APIError is a failed Slack Web API call.
type APIError struct {
	Method string // API method, e.g. "conversations.info"
	Code   string // Slack error code, e.g. "channel_not_found"
	Kind   error  // one of ErrAuth, ErrNotFound, ErrRateLimited, or nil
	Err    error  // underlying library error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("slack API error: %s: %s", e.Method, e.Code)
}

func (e *APIError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func kindOf(code string) error {
	switch code {
	case "invalid_auth", "not_authed", "token_revoked", "token_expired", "account_inactive", "missing_scope", "not_allowed_token_type":
		return ErrAuth
	case "channel_not_found", "user_not_found", "file_not_found", "thread_not_found", "message_not_found", "users_not_found":
		return ErrNotFound
	case "ratelimited":
		return ErrRateLimited
	}
	return nil
}

// wrapErr annotates a library error with the API method that produced it.
func wrapErr(method string, err error) error {
	if err == nil {
		return nil
	}
	var rl *slackapi.RateLimitedError
	if errors.As(err, &rl) {
		return &APIError{Method: method, Code: "ratelimited", Kind: ErrRateLimited, Err: err}
	}
	var se slackapi.SlackErrorResponse
	if errors.As(err, &se) {
		return &APIError{Method: method, Code: se.Err, Kind: kindOf(se.Err), Err: err}
	}
	return fmt.Errorf("%s: %w", method, err)
}
