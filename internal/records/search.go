package records

import (
	"fmt"
	"io"
	"time"

	slackapi "github.com/rusq/slack"
	"github.com/samber/lo"

	"github.com/co42/slackline/internal/output"
)

// SearchResult is a search.messages hit.
type SearchResult struct {
	TS          string     `json:"ts"`
	Text        string     `json:"text"`
	User        *string    `json:"user"`
	Username    *string    `json:"username"`
	ChannelID   string     `json:"channel_id"`
	ChannelName *string    `json:"channel_name"`
	Permalink   string     `json:"permalink"`
	Timestamp   *time.Time `json:"timestamp"`
}

// NewSearchResults maps the matches of a search, preserving order.
func NewSearchResults(ms []slackapi.SearchMessage) []SearchResult {
	return lo.Map(ms, func(m slackapi.SearchMessage, _ int) SearchResult {
		return SearchResult{
			TS:          m.Timestamp,
			Text:        m.Text,
			User:        optString(m.User),
			Username:    optString(m.Username),
			ChannelID:   m.Channel.ID,
			ChannelName: optString(m.Channel.Name),
			Permalink:   m.Permalink,
			Timestamp:   timestampOf(m.Timestamp),
		}
	})
}

func (r SearchResult) WriteHuman(w io.Writer, t *output.Theme) {
	user := deref(r.Username, deref(r.User, "unknown"))
	channel := deref(r.ChannelName, r.ChannelID)
	fmt.Fprintf(w, "%s %s in #%s:\n", t.Dim.Sprint(displayTime(r.Timestamp, t.Location, r.TS)),
		t.Green.Sprint(user), t.Cyan.Sprint(channel))
	fmt.Fprintf(w, "  %s\n", truncate(r.Text, SearchTextMaxLen))
	fmt.Fprintf(w, "  %s\n\n", t.Dim.Sprint(r.Permalink))
}
