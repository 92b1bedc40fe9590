package slack

import (
	"net/http"
)

// Credentials holds authentication data for Slack API access.
type Credentials struct {
	Token   string         // xoxp-, xoxb- or xoxc- token
	Cookies []*http.Cookie // Session cookies, the 'd' cookie for xoxc tokens
}

// User is the minimal identity used for name resolution.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RealName string `json:"real_name,omitempty"`
}

// ConversationsQuery selects a single page of conversations.
type ConversationsQuery struct {
	Types           []string
	ExcludeArchived bool
	Limit           int
}

// HistoryQuery selects a single page of channel history.
// Oldest and Latest are Slack timestamps; empty means unbounded.
type HistoryQuery struct {
	ChannelID string
	Limit     int
	Oldest    string
	Latest    string
}

// FilesQuery selects a single page of files.
type FilesQuery struct {
	Channel string
	User    string
	Limit   int
}

// Conversation types accepted by conversations.list and users.conversations.
const (
	TypePublic  = "public_channel"
	TypePrivate = "private_channel"
	TypeIM      = "im"
	TypeMPIM    = "mpim"
)
