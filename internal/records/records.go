// Package records defines the display records printed by slackline commands
// and the mappers that build them from Slack API values.
//
// Every record encodes to JSON as itself and renders to text through
// WriteHuman. Optional fields are pointers so that JSON carries an explicit
// null when Slack left them empty.
package records

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/co42/slackline/internal/slack"
)

// SearchTextMaxLen is the number of characters of a search hit shown in
// human output.
const SearchTextMaxLen = 200

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// optInt maps zero to nil. The decoded Slack structs cannot tell an absent
// count from a reported zero, so both encode as null.
func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

// timestampOf derives the whole-second UTC time of a Slack ts, or nil when
// ts cannot be parsed.
func timestampOf(ts string) *time.Time {
	t, err := slack.ParseTimestamp(ts)
	if err != nil {
		return nil
	}
	return &t
}

// displayTime formats t in loc, falling back to fallback when t is nil.
func displayTime(t *time.Time, loc *time.Location, fallback string) string {
	if t == nil {
		return fallback
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02 15:04")
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// truncate shortens s to n characters, appending "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	var b strings.Builder
	for i, r := range []rune(s) {
		if i == n {
			break
		}
		b.WriteRune(r)
	}
	b.WriteString("...")
	return b.String()
}
