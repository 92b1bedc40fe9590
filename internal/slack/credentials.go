// Package slack provides the Slack Web API session used by every command:
// credentials, a rate-limited client over github.com/rusq/slack, timestamp
// helpers and user name resolution.
package slack

import (
	"fmt"
	"net/http"
	"strings"
)

// Token prefixes issued by Slack.
const (
	prefixUser    = "xoxp-"
	prefixBot     = "xoxb-"
	prefixSession = "xoxc-"
)

// NewCredentials builds credentials from a token and an optional 'd' cookie.
// Session tokens (xoxc-) are rejected without a cookie.
func NewCredentials(token, cookie string) (*Credentials, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNoToken
	}
	creds := &Credentials{Token: token}
	cookie = strings.TrimSpace(cookie)
	if cookie != "" {
		creds.Cookies = []*http.Cookie{{Name: "d", Value: cookie}}
	}
	if strings.HasPrefix(token, prefixSession) && len(creds.Cookies) == 0 {
		return nil, fmt.Errorf("%w: xoxc tokens need the 'd' cookie (set SLACK_COOKIE)", ErrNoToken)
	}
	return creds, nil
}

// TokenKind reports which kind of token the credentials carry.
func (c *Credentials) TokenKind() string {
	switch {
	case strings.HasPrefix(c.Token, prefixUser):
		return "user"
	case strings.HasPrefix(c.Token, prefixBot):
		return "bot"
	case strings.HasPrefix(c.Token, prefixSession):
		return "session"
	default:
		return "unknown"
	}
}
