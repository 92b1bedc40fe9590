package records

import (
	"fmt"
	"io"
	"time"

	slackapi "github.com/rusq/slack"
	"github.com/samber/lo"

	"github.com/co42/slackline/internal/output"
)

// ReplyInfo is a message in a thread.
type ReplyInfo struct {
	TS        string     `json:"ts"`
	User      *string    `json:"user"`
	Text      string     `json:"text"`
	Timestamp *time.Time `json:"timestamp"`
}

// NewReplyInfos maps a thread, preserving order.
func NewReplyInfos(ms []slackapi.Message) []ReplyInfo {
	return lo.Map(ms, func(m slackapi.Message, _ int) ReplyInfo {
		return ReplyInfo{
			TS:        m.Timestamp,
			User:      optString(m.User),
			Text:      m.Text,
			Timestamp: timestampOf(m.Timestamp),
		}
	})
}

func (r ReplyInfo) WriteHuman(w io.Writer, t *output.Theme) {
	writeSimpleMessage(w, t, r.TS, r.User, r.Text, r.Timestamp)
}

// PermalinkInfo is the shareable URL of a message.
type PermalinkInfo struct {
	Channel   string `json:"channel"`
	MessageTS string `json:"message_ts"`
	Permalink string `json:"permalink"`
}

func (p PermalinkInfo) WriteHuman(w io.Writer, t *output.Theme) {
	fmt.Fprintln(w, t.Cyan.Sprint(p.Permalink))
}

func writeSimpleMessage(w io.Writer, t *output.Theme, ts string, user *string, text string, at *time.Time) {
	fmt.Fprintf(w, "%s %s:\n", t.Dim.Sprint(displayTime(at, t.Location, ts)), t.Green.Sprint(deref(user, "unknown")))
	fmt.Fprintf(w, "  %s\n\n", text)
}
