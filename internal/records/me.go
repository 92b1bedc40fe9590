package records

import (
	"fmt"
	"io"

	slackapi "github.com/rusq/slack"
	"github.com/samber/lo"

	"github.com/co42/slackline/internal/output"
	"github.com/co42/slackline/internal/unread"
)

// MyChannel is a conversation the current user belongs to. HasUnread is
// absent until an unread check ran and reached a verdict.
type MyChannel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsPrivate   bool   `json:"is_private"`
	IsIM        bool   `json:"is_im"`
	IsMpIM      bool   `json:"is_mpim"`
	NumMembers  *int   `json:"num_members"`
	UnreadCount *int   `json:"unread_count"`
	HasUnread   *bool  `json:"has_unread,omitempty"`
}

// NewMyChannels maps a page of users.conversations, preserving order.
func NewMyChannels(cs []slackapi.Channel) []MyChannel {
	return lo.Map(cs, func(c slackapi.Channel, _ int) MyChannel {
		name := c.Name
		if name == "" {
			name = "DM"
		}
		return MyChannel{
			ID:          c.ID,
			Name:        name,
			IsPrivate:   c.IsPrivate,
			IsIM:        c.IsIM,
			IsMpIM:      c.IsMpIM,
			NumMembers:  optInt(c.NumMembers),
			UnreadCount: optInt(c.UnreadCount),
		}
	})
}

func (c *MyChannel) ChannelID() string { return c.ID }

func (c *MyChannel) Counter() *int { return c.UnreadCount }

func (c *MyChannel) SetSignal(s unread.Signal) { c.HasUnread = s.Bool() }

func (c MyChannel) WriteHuman(w io.Writer, t *output.Theme) {
	dm := c.IsIM || c.IsMpIM
	prefix := "#"
	switch {
	case dm:
		prefix = "DM"
	case c.IsPrivate:
		prefix = "🔒"
	}

	var badge string
	switch {
	case c.UnreadCount != nil && *c.UnreadCount > 0:
		badge = t.Red.Sprintf(" [%d]", *c.UnreadCount)
	case c.HasUnread != nil && *c.HasUnread:
		badge = t.Red.Sprint(" [unread]")
	}

	var members string
	if c.NumMembers != nil && !dm {
		members = t.Dim.Sprintf(" (%d members)", *c.NumMembers)
	}

	fmt.Fprintf(w, "%s %s%s%s\n", prefix, t.Bold.Sprint(c.Name), members, badge)
}
