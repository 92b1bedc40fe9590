package records

import (
	"fmt"
	"io"
	"time"

	slackapi "github.com/rusq/slack"
	"github.com/samber/lo"

	"github.com/co42/slackline/internal/output"
)

// DMConversation is a direct or group-direct conversation.
// UserName is set only when resolved.
type DMConversation struct {
	ID       string   `json:"id"`
	UserID   *string  `json:"user_id"`
	UserName *string  `json:"user_name,omitempty"`
	IsOpen   bool     `json:"is_open"`
	Priority *float64 `json:"priority"`
}

// NewDMConversations maps a page of im and mpim conversations.
func NewDMConversations(cs []slackapi.Channel) []DMConversation {
	return lo.Map(cs, func(c slackapi.Channel, _ int) DMConversation {
		user := c.User
		if user == "" {
			user = c.Creator
		}
		dm := DMConversation{
			ID:     c.ID,
			UserID: optString(user),
			IsOpen: c.IsIM || c.IsMpIM,
		}
		if c.Priority != 0 {
			p := c.Priority
			dm.Priority = &p
		}
		return dm
	})
}

func (d DMConversation) WriteHuman(w io.Writer, t *output.Theme) {
	var status string
	if !d.IsOpen {
		status = t.Dim.Sprint(" (closed)")
	}
	user := deref(d.UserName, deref(d.UserID, "unknown"))
	fmt.Fprintf(w, "DM %s → user %s%s\n", t.Dim.Sprint(d.ID), t.Green.Sprint(user), status)
}

// DMMessage is a message in direct-message history.
type DMMessage struct {
	TS        string     `json:"ts"`
	User      *string    `json:"user"`
	Text      string     `json:"text"`
	Timestamp *time.Time `json:"timestamp"`
}

// NewDMMessages maps a page of history, preserving order.
func NewDMMessages(ms []slackapi.Message) []DMMessage {
	return lo.Map(ms, func(m slackapi.Message, _ int) DMMessage {
		return DMMessage{
			TS:        m.Timestamp,
			User:      optString(m.User),
			Text:      m.Text,
			Timestamp: timestampOf(m.Timestamp),
		}
	})
}

func (m DMMessage) WriteHuman(w io.Writer, t *output.Theme) {
	writeSimpleMessage(w, t, m.TS, m.User, m.Text, m.Timestamp)
}
