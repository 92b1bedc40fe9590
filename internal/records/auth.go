package records

import (
	"fmt"
	"io"

	slackapi "github.com/rusq/slack"

	"github.com/co42/slackline/internal/output"
)

// AuthInfo is the identity behind the current token.
type AuthInfo struct {
	URL    string `json:"url"`
	Team   string `json:"team"`
	User   string `json:"user"`
	TeamID string `json:"team_id"`
	UserID string `json:"user_id"`
}

// NewAuthInfo maps an auth.test response.
func NewAuthInfo(r *slackapi.AuthTestResponse) AuthInfo {
	return AuthInfo{
		URL:    r.URL,
		Team:   r.Team,
		User:   r.User,
		TeamID: r.TeamID,
		UserID: r.UserID,
	}
}

func (a AuthInfo) WriteHuman(w io.Writer, t *output.Theme) {
	fmt.Fprintf(w, "%s: %s\n", t.Cyan.Sprint("Team"), a.Team)
	fmt.Fprintf(w, "%s: %s\n", t.Cyan.Sprint("User"), a.User)
	fmt.Fprintf(w, "%s: %s\n", t.Dim.Sprint("Team ID"), a.TeamID)
	fmt.Fprintf(w, "%s: %s\n", t.Dim.Sprint("User ID"), a.UserID)
	fmt.Fprintf(w, "%s: %s\n", t.Dim.Sprint("URL"), a.URL)
}
