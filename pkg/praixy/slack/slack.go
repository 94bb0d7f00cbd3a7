// Package slack wraps the Praixy Slack surfaces.
//
// The raw surface exposes Slack Web API methods under /api/slack using
// their native dotted names (conversations.history, users.info, ...), all
// as GETs. The slack-simple surface offers POST /api/slack-simple/dm-self
// for sending a message to the authenticated user's own DM.
//
// Timestamps (oldest/latest, thread ts) are Slack's native string form,
// e.g. "1726531200.000000".
package slack

import (
	"context"
	"net/url"
	"strconv"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

const (
	rawPrefix    = "/api/slack"
	simplePrefix = "/api/slack-simple"
)

// Client wraps a Praixy client with Slack path building.
type Client struct {
	proxy *praixy.Client
}

// New returns a Slack client on top of the given proxy client.
func New(proxy *praixy.Client) *Client {
	return &Client{proxy: proxy}
}

// SearchMessages searches messages with Slack search syntax
// ("in:#channel from:@user before:2025-06-01 ...").
func (c *Client) SearchMessages(ctx context.Context, query string, count, page int) ([]byte, error) {
	params := url.Values{}
	params.Set("query", query)
	if count > 0 {
		params.Set("count", strconv.Itoa(count))
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/search.messages", params)
}

// ListConversations lists channels. types is the native comma-separated
// filter (public_channel, private_channel, im, mpim); empty uses the
// upstream default.
func (c *Client) ListConversations(ctx context.Context, types string, limit int, cursor string) ([]byte, error) {
	params := url.Values{}
	if types != "" {
		params.Set("types", types)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/conversations.list", params)
}

// HistoryOptions bound a history or replies read.
type HistoryOptions struct {
	Limit  int
	Cursor string

	// Oldest and Latest are Slack timestamps bounding the window.
	Oldest string
	Latest string
}

func (o HistoryOptions) values() url.Values {
	params := url.Values{}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Cursor != "" {
		params.Set("cursor", o.Cursor)
	}
	if o.Oldest != "" {
		params.Set("oldest", o.Oldest)
	}
	if o.Latest != "" {
		params.Set("latest", o.Latest)
	}
	return params
}

// ConversationHistory reads messages from a channel.
func (c *Client) ConversationHistory(ctx context.Context, channel string, opts HistoryOptions) ([]byte, error) {
	params := opts.values()
	params.Set("channel", channel)
	return c.proxy.GetRaw(ctx, rawPrefix+"/conversations.history", params)
}

// ConversationReplies reads a thread rooted at ts.
func (c *Client) ConversationReplies(ctx context.Context, channel, ts string, opts HistoryOptions) ([]byte, error) {
	params := opts.values()
	params.Set("channel", channel)
	params.Set("ts", ts)
	return c.proxy.GetRaw(ctx, rawPrefix+"/conversations.replies", params)
}

// UserInfo fetches a single user's profile.
func (c *Client) UserInfo(ctx context.Context, userID string) ([]byte, error) {
	params := url.Values{}
	params.Set("user", userID)
	return c.proxy.GetRaw(ctx, rawPrefix+"/users.info", params)
}

// ListUsers lists workspace members.
func (c *Client) ListUsers(ctx context.Context, limit int, cursor string) ([]byte, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/users.list", params)
}

// DMSelf sends a message to the authenticated user's own DM via the simple
// surface.
func (c *Client) DMSelf(ctx context.Context, text string) ([]byte, error) {
	return c.proxy.PostRaw(ctx, simplePrefix+"/dm-self",
		map[string]string{"text": text})
}
