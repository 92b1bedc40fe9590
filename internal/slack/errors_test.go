package slack

import (
	"errors"
	"fmt"
	"testing"

	slackapi "github.com/rusq/slack"
)

func TestWrapErr_Nil(t *testing.T) {
	if err := wrapErr("auth.test", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestWrapErr_SlackError(t *testing.T) {
	err := wrapErr("users.info", fmt.Errorf("call: %w", slackapi.SlackErrorResponse{Err: "user_not_found"}))

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "slack API error: users.info: user_not_found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestWrapErr_UnknownCode(t *testing.T) {
	err := wrapErr("files.info", slackapi.SlackErrorResponse{Err: "something_odd"})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Kind != nil {
		t.Errorf("expected no kind, got %v", apiErr.Kind)
	}
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrRateLimited) {
		t.Error("unknown code should not match any kind")
	}
}

func TestWrapErr_RateLimited(t *testing.T) {
	err := wrapErr("search.messages", &slackapi.RateLimitedError{})
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestWrapErr_Transport(t *testing.T) {
	base := errors.New("connection refused")
	err := wrapErr("auth.test", base)

	if !errors.Is(err, base) {
		t.Error("expected underlying error to be preserved")
	}
	if err.Error() != "auth.test: connection refused" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
