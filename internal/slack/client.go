package slack

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	slackapi "github.com/rusq/slack"
	"golang.org/x/time/rate"
)

const (
	// DefaultAPIURL is the base URL for the Slack Web API.
	DefaultAPIURL = "https://slack.com/api/"

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRateLimit is the default number of API calls per second.
	DefaultRateLimit = 20.0
)

// Client is the remote session shared by all commands. It is safe for
// concurrent use: every call waits on a shared limiter and goes through an
// immutable rusq/slack client.
type Client struct {
	creds      *Credentials
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	log        *slog.Logger
	api        *slackapi.Client
}

// NewClient creates a new Web API client with the given credentials.
func NewClient(creds *Credentials) *Client {
	c := &Client{
		creds:      creds,
		httpClient: &http.Client{Timeout: DefaultHTTPTimeout},
		baseURL:    DefaultAPIURL,
		limiter:    newLimiter(DefaultRateLimit),
		log:        slog.New(slog.DiscardHandler),
	}
	c.api = c.newAPI()
	return c
}

// WithBaseURL returns a new Client with the specified base URL.
// Useful for testing with mock servers.
func (c *Client) WithBaseURL(baseURL string) *Client {
	cp := *c
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	cp.baseURL = baseURL
	cp.api = cp.newAPI()
	return &cp
}

// WithHTTPClient returns a new Client with the specified HTTP client.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	cp := *c
	cp.httpClient = client
	cp.api = cp.newAPI()
	return &cp
}

// WithRateLimit returns a new Client limited to perSecond calls.
// A non-positive value disables pacing.
func (c *Client) WithRateLimit(perSecond float64) *Client {
	cp := *c
	cp.limiter = newLimiter(perSecond)
	return &cp
}

// WithLogger returns a new Client that logs API calls to l.
func (c *Client) WithLogger(l *slog.Logger) *Client {
	cp := *c
	cp.log = l
	return &cp
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(perSecond), max(1, int(perSecond)))
}

// cookieDoer attaches session cookies to every request.
type cookieDoer struct {
	client  *http.Client
	cookies []*http.Cookie
}

func (d cookieDoer) Do(req *http.Request) (*http.Response, error) {
	for _, ck := range d.cookies {
		req.AddCookie(ck)
	}
	return d.client.Do(req)
}

func (c *Client) newAPI() *slackapi.Client {
	var doer interface {
		Do(*http.Request) (*http.Response, error)
	} = c.httpClient
	if len(c.creds.Cookies) > 0 {
		doer = cookieDoer{client: c.httpClient, cookies: c.creds.Cookies}
	}
	return slackapi.New(c.creds.Token,
		slackapi.OptionAPIURL(c.baseURL),
		slackapi.OptionHTTPClient(doer),
	)
}

func (c *Client) wait(ctx context.Context, method string) error {
	c.log.DebugContext(ctx, "slack api call", "method", method)
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// AuthTest verifies the token and returns workspace and user identity.
func (c *Client) AuthTest(ctx context.Context) (*slackapi.AuthTestResponse, error) {
	if err := c.wait(ctx, "auth.test"); err != nil {
		return nil, err
	}
	resp, err := c.api.AuthTestContext(ctx)
	return resp, wrapErr("auth.test", err)
}

// Conversations returns one page of conversations.list.
func (c *Client) Conversations(ctx context.Context, q ConversationsQuery) ([]slackapi.Channel, error) {
	if err := c.wait(ctx, "conversations.list"); err != nil {
		return nil, err
	}
	channels, _, err := c.api.GetConversationsContext(ctx, &slackapi.GetConversationsParameters{
		Types:           q.Types,
		ExcludeArchived: q.ExcludeArchived,
		Limit:           q.Limit,
	})
	return channels, wrapErr("conversations.list", err)
}

// ConversationsForUser returns one page of users.conversations for the
// authenticated user.
func (c *Client) ConversationsForUser(ctx context.Context, q ConversationsQuery) ([]slackapi.Channel, error) {
	if err := c.wait(ctx, "users.conversations"); err != nil {
		return nil, err
	}
	channels, _, err := c.api.GetConversationsForUserContext(ctx, &slackapi.GetConversationsForUserParameters{
		Types:           q.Types,
		ExcludeArchived: q.ExcludeArchived,
		Limit:           q.Limit,
	})
	return channels, wrapErr("users.conversations", err)
}

// ConversationInfo returns a single conversation including its member count
// and the caller's last-read marker.
func (c *Client) ConversationInfo(ctx context.Context, channelID string) (*slackapi.Channel, error) {
	if err := c.wait(ctx, "conversations.info"); err != nil {
		return nil, err
	}
	ch, err := c.api.GetConversationInfoContext(ctx, &slackapi.GetConversationInfoInput{
		ChannelID:         channelID,
		IncludeNumMembers: true,
	})
	return ch, wrapErr("conversations.info", err)
}

// History returns one page of conversations.history, newest first.
func (c *Client) History(ctx context.Context, q HistoryQuery) ([]slackapi.Message, error) {
	if err := c.wait(ctx, "conversations.history"); err != nil {
		return nil, err
	}
	resp, err := c.api.GetConversationHistoryContext(ctx, &slackapi.GetConversationHistoryParameters{
		ChannelID: q.ChannelID,
		Limit:     q.Limit,
		Oldest:    q.Oldest,
		Latest:    q.Latest,
	})
	if err != nil {
		return nil, wrapErr("conversations.history", err)
	}
	return resp.Messages, nil
}

// Replies returns one page of a thread, parent message first.
func (c *Client) Replies(ctx context.Context, channelID, threadTS string, limit int) ([]slackapi.Message, error) {
	if err := c.wait(ctx, "conversations.replies"); err != nil {
		return nil, err
	}
	msgs, _, _, err := c.api.GetConversationRepliesContext(ctx, &slackapi.GetConversationRepliesParameters{
		ChannelID: channelID,
		Timestamp: threadTS,
		Limit:     limit,
	})
	return msgs, wrapErr("conversations.replies", err)
}

// Members returns one page of member user IDs.
func (c *Client) Members(ctx context.Context, channelID string, limit int) ([]string, error) {
	if err := c.wait(ctx, "conversations.members"); err != nil {
		return nil, err
	}
	ids, _, err := c.api.GetUsersInConversationContext(ctx, &slackapi.GetUsersInConversationParameters{
		ChannelID: channelID,
		Limit:     limit,
	})
	return ids, wrapErr("conversations.members", err)
}

// Users returns one page of users.list.
func (c *Client) Users(ctx context.Context, limit int) ([]slackapi.User, error) {
	if err := c.wait(ctx, "users.list"); err != nil {
		return nil, err
	}
	page, err := c.api.GetUsersPaginated(slackapi.GetUsersOptionLimit(limit)).Next(ctx)
	if err != nil {
		return nil, wrapErr("users.list", err)
	}
	return page.Users, nil
}

// UserInfo returns a single user.
func (c *Client) UserInfo(ctx context.Context, userID string) (*slackapi.User, error) {
	if err := c.wait(ctx, "users.info"); err != nil {
		return nil, err
	}
	u, err := c.api.GetUserInfoContext(ctx, userID)
	return u, wrapErr("users.info", err)
}

// Presence returns a user's presence.
func (c *Client) Presence(ctx context.Context, userID string) (*slackapi.UserPresence, error) {
	if err := c.wait(ctx, "users.getPresence"); err != nil {
		return nil, err
	}
	p, err := c.api.GetUserPresenceContext(ctx, userID)
	return p, wrapErr("users.getPresence", err)
}

// Permalink returns the shareable URL of a message.
func (c *Client) Permalink(ctx context.Context, channelID, ts string) (string, error) {
	if err := c.wait(ctx, "chat.getPermalink"); err != nil {
		return "", err
	}
	link, err := c.api.GetPermalinkContext(ctx, &slackapi.PermalinkParameters{
		Channel: channelID,
		Ts:      ts,
	})
	return link, wrapErr("chat.getPermalink", err)
}

// SearchMessages runs search.messages, newest first.
func (c *Client) SearchMessages(ctx context.Context, query string, count int) (*slackapi.SearchMessages, error) {
	if err := c.wait(ctx, "search.messages"); err != nil {
		return nil, err
	}
	params := slackapi.NewSearchParameters()
	params.Count = count
	params.Sort = "timestamp"
	params.SortDirection = "desc"
	res, err := c.api.SearchMessagesContext(ctx, query, params)
	return res, wrapErr("search.messages", err)
}

// FileInfo returns a single file's metadata.
func (c *Client) FileInfo(ctx context.Context, fileID string) (*slackapi.File, error) {
	if err := c.wait(ctx, "files.info"); err != nil {
		return nil, err
	}
	f, _, _, err := c.api.GetFileInfoContext(ctx, fileID, 0, 0)
	return f, wrapErr("files.info", err)
}

// Files returns one page of files.list.
func (c *Client) Files(ctx context.Context, q FilesQuery) ([]slackapi.File, error) {
	if err := c.wait(ctx, "files.list"); err != nil {
		return nil, err
	}
	params := slackapi.NewGetFilesParameters()
	params.Channel = q.Channel
	params.User = q.User
	if q.Limit > 0 {
		params.Count = q.Limit
	}
	files, _, err := c.api.GetFilesContext(ctx, params)
	return files, wrapErr("files.list", err)
}

// DownloadFile streams a private file URL into w.
func (c *Client) DownloadFile(ctx context.Context, url string, w io.Writer) error {
	if url == "" {
		return ErrNoDownloadURL
	}
	if err := c.wait(ctx, "files.download"); err != nil {
		return err
	}
	return wrapErr("files.download", c.api.GetFileContext(ctx, url, w))
}

// LastRead returns the caller's last-read marker for a conversation, or ""
// when Slack does not report one.
func (c *Client) LastRead(ctx context.Context, channelID string) (string, error) {
	ch, err := c.ConversationInfo(ctx, channelID)
	if err != nil {
		return "", err
	}
	return ch.LastRead, nil
}

// LatestTimestamp returns the ts of the newest message in a conversation,
// or "" when the conversation is empty.
func (c *Client) LatestTimestamp(ctx context.Context, channelID string) (string, error) {
	msgs, err := c.History(ctx, HistoryQuery{ChannelID: channelID, Limit: 1})
	if err != nil {
		return "", err
	}
	if len(msgs) == 0 {
		return "", nil
	}
	return msgs[0].Timestamp, nil
}

// UserDirectory fetches one page of users.list and indexes it by ID.
func (c *Client) UserDirectory(ctx context.Context, limit int) (UserIndex, error) {
	us, err := c.Users(ctx, limit)
	if err != nil {
		return nil, err
	}
	users := make([]User, len(us))
	for i, u := range us {
		users[i] = User{ID: u.ID, Name: u.Name, RealName: u.RealName}
	}
	return NewUserIndex(users), nil
}

// FetchUserInfo implements UserFetcher.
func (c *Client) FetchUserInfo(ctx context.Context, id string) (*User, error) {
	u, err := c.UserInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	return &User{ID: u.ID, Name: u.Name, RealName: u.RealName}, nil
}
