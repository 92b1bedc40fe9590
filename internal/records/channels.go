package records

import (
	"fmt"
	"io"
	"time"

	slackapi "github.com/rusq/slack"
	"github.com/samber/lo"

	"github.com/co42/slackline/internal/output"
)

// ChannelInfo describes a conversation.
type ChannelInfo struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Topic      *string `json:"topic"`
	Purpose    *string `json:"purpose"`
	NumMembers *int    `json:"num_members"`
	IsPrivate  bool    `json:"is_private"`
	IsArchived bool    `json:"is_archived"`
}

// NewChannelInfo maps a conversation.
func NewChannelInfo(c slackapi.Channel) ChannelInfo {
	return ChannelInfo{
		ID:         c.ID,
		Name:       c.Name,
		Topic:      optString(c.Topic.Value),
		Purpose:    optString(c.Purpose.Value),
		NumMembers: optInt(c.NumMembers),
		IsPrivate:  c.IsPrivate,
		IsArchived: c.IsArchived,
	}
}

// NewChannelInfos maps a page of conversations, preserving order.
func NewChannelInfos(cs []slackapi.Channel) []ChannelInfo {
	return lo.Map(cs, func(c slackapi.Channel, _ int) ChannelInfo { return NewChannelInfo(c) })
}

func (c ChannelInfo) WriteHuman(w io.Writer, t *output.Theme) {
	prefix := "#"
	if c.IsPrivate {
		prefix = "🔒"
	}
	var members, archived string
	if c.NumMembers != nil {
		members = t.Dim.Sprintf(" (%d members)", *c.NumMembers)
	}
	if c.IsArchived {
		archived = t.Dim.Sprint(" (archived)")
	}
	fmt.Fprintf(w, "%s%s%s%s\n", prefix, t.Bold.Sprint(c.Name), members, archived)
	if c.Topic != nil && *c.Topic != "" {
		fmt.Fprintf(w, "  %s\n", t.Dim.Sprint(*c.Topic))
	}
}

// MessageInfo is a message in channel history.
type MessageInfo struct {
	TS         string     `json:"ts"`
	User       *string    `json:"user"`
	Text       string     `json:"text"`
	Timestamp  *time.Time `json:"timestamp"`
	ThreadTS   *string    `json:"thread_ts"`
	ReplyCount *int       `json:"reply_count"`
}

// NewMessageInfo maps a history message.
func NewMessageInfo(m slackapi.Message) MessageInfo {
	return MessageInfo{
		TS:         m.Timestamp,
		User:       optString(m.User),
		Text:       m.Text,
		Timestamp:  timestampOf(m.Timestamp),
		ThreadTS:   optString(m.ThreadTimestamp),
		ReplyCount: optInt(m.ReplyCount),
	}
}

// NewMessageInfos maps a page of history, preserving order.
func NewMessageInfos(ms []slackapi.Message) []MessageInfo {
	return lo.Map(ms, func(m slackapi.Message, _ int) MessageInfo { return NewMessageInfo(m) })
}

func (m MessageInfo) WriteHuman(w io.Writer, t *output.Theme) {
	var thread string
	if m.ReplyCount != nil && *m.ReplyCount > 0 {
		thread = t.Cyan.Sprintf(" [%d replies]", *m.ReplyCount)
	}
	fmt.Fprintf(w, "%s %s%s:\n", t.Dim.Sprint(displayTime(m.Timestamp, t.Location, m.TS)),
		t.Green.Sprint(deref(m.User, "unknown")), thread)
	fmt.Fprintf(w, "  %s\n\n", m.Text)
}

// MemberInfo is a conversation member. Name is set only when resolved.
type MemberInfo struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// NewMemberInfos maps member IDs, preserving order.
func NewMemberInfos(ids []string) []MemberInfo {
	return lo.Map(ids, func(id string, _ int) MemberInfo { return MemberInfo{ID: id} })
}

func (m MemberInfo) WriteHuman(w io.Writer, _ *output.Theme) {
	fmt.Fprintf(w, "  @%s\n", deref(m.Name, m.ID))
}
