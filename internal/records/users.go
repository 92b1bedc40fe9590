package records

import (
	"fmt"
	"io"
	"strings"

	slackapi "github.com/rusq/slack"
	"github.com/samber/lo"

	"github.com/co42/slackline/internal/output"
)

// UserInfo describes a workspace member.
type UserInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RealName    *string `json:"real_name"`
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
	Title       *string `json:"title"`
	IsAdmin     bool    `json:"is_admin"`
	IsBot       bool    `json:"is_bot"`
	Deleted     bool    `json:"deleted"`
	TZ          *string `json:"tz"`
}

// NewUserInfo maps a user.
func NewUserInfo(u slackapi.User) UserInfo {
	realName := u.Profile.RealName
	if realName == "" {
		realName = u.RealName
	}
	return UserInfo{
		ID:          u.ID,
		Name:        u.Name,
		RealName:    optString(realName),
		DisplayName: optString(u.Profile.DisplayName),
		Email:       optString(u.Profile.Email),
		Title:       optString(u.Profile.Title),
		IsAdmin:     u.IsAdmin,
		IsBot:       u.IsBot,
		Deleted:     u.Deleted,
		TZ:          optString(u.TZ),
	}
}

// ActiveUsers maps users, dropping deleted accounts.
func ActiveUsers(us []slackapi.User) []UserInfo {
	return lo.FilterMap(us, func(u slackapi.User, _ int) (UserInfo, bool) {
		return NewUserInfo(u), !u.Deleted
	})
}

// MatchUsers keeps users whose name, real name, display name or email
// contains query, ignoring case.
func MatchUsers(us []UserInfo, query string) []UserInfo {
	q := strings.ToLower(query)
	contains := func(s *string) bool {
		return s != nil && strings.Contains(strings.ToLower(*s), q)
	}
	return lo.Filter(us, func(u UserInfo, _ int) bool {
		return strings.Contains(strings.ToLower(u.Name), q) ||
			contains(u.RealName) || contains(u.DisplayName) || contains(u.Email)
	})
}

func (u UserInfo) WriteHuman(w io.Writer, t *output.Theme) {
	var status string
	switch {
	case u.Deleted:
		status = t.Red.Sprint(" (deleted)")
	case u.IsBot:
		status = t.Cyan.Sprint(" (bot)")
	case u.IsAdmin:
		status = t.Yellow.Sprint(" (admin)")
	}
	display := deref(u.DisplayName, deref(u.RealName, u.Name))

	fmt.Fprintf(w, "@%s - %s%s\n", t.Green.Sprint(u.Name), t.Bold.Sprint(display), status)
	if u.Title != nil && *u.Title != "" {
		fmt.Fprintf(w, "  %s\n", t.Dim.Sprint(*u.Title))
	}
	if u.Email != nil {
		fmt.Fprintf(w, "  %s\n", t.Dim.Sprint(*u.Email))
	}
}

// PresenceInfo is a user's presence.
type PresenceInfo struct {
	UserID   string `json:"user_id"`
	Presence string `json:"presence"`
	Online   bool   `json:"online"`
}

// NewPresenceInfo maps a users.getPresence response.
func NewPresenceInfo(userID string, p *slackapi.UserPresence) PresenceInfo {
	return PresenceInfo{
		UserID:   userID,
		Presence: p.Presence,
		Online:   p.Presence == "active",
	}
}

func (p PresenceInfo) WriteHuman(w io.Writer, t *output.Theme) {
	status := t.Dim.Sprint("away")
	if p.Online {
		status = t.Green.Sprint("online")
	}
	fmt.Fprintf(w, "%s: %s\n", p.UserID, status)
}
