// Package unread decides, for many conversations at once, whether each one
// has messages newer than the caller's last-read marker.
package unread

import (
	"github.com/co42/slackline/internal/slack"
)

// Signal is the outcome of an unread check.
type Signal int

const (
	// Unknown means the check could not reach a verdict.
	Unknown Signal = iota
	Read
	Unread
)

func (s Signal) String() string {
	switch s {
	case Read:
		return "read"
	case Unread:
		return "unread"
	}
	return "unknown"
}

// Bool maps Unknown to nil, Read to false and Unread to true.
func (s Signal) Bool() *bool {
	if s != Read && s != Unread {
		return nil
	}
	b := s == Unread
	return &b
}

// Compute compares the latest message ts with the last-read marker.
// Either value being empty or unparseable yields Unknown.
func Compute(lastRead, latest string) Signal {
	if lastRead == "" || latest == "" {
		return Unknown
	}
	cmp, err := slack.CompareTimestamps(latest, lastRead)
	if err != nil {
		return Unknown
	}
	if cmp > 0 {
		return Unread
	}
	return Read
}

// Keep reports whether a conversation belongs in an unread-only listing:
// a positive counter, or an Unread signal. Unknown counts as read.
func Keep(count *int, s Signal) bool {
	return (count != nil && *count > 0) || s == Unread
}
