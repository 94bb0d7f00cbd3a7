// Package slack implements the praixy slack CLI commands.
package slack

import (
	"context"
	"fmt"
	"strconv"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	"github.com/marshal-labs/praixy/pkg/praixy/slack"
)

// SearchCommand searches messages.
type SearchCommand struct {
	*base.Command
}

func (c *SearchCommand) Synopsis() string {
	return "Search Slack messages"
}

func (c *SearchCommand) Help() string {
	return `Usage: praixy slack search -q=<query> [options]

  Searches messages with Slack search syntax.

  Examples:
    praixy slack search -q="in:#eng-infra deploy failure"
    praixy slack search -q="from:@dana before:2026-08-01" -count=50

Options:
  -q=<query>        Slack search query (required)
  -count=<n>        Results per page
  -page=<n>         Page number
  -config=<path>    Path to an HCL configuration file
`
}

func (c *SearchCommand) Run(args []string) int {
	var (
		query string
		count int
		page  int
	)

	f := c.FlagSet("slack search")
	f.StringVar(&query, "q", "", "")
	f.IntVar(&count, "count", 0, "")
	f.IntVar(&page, "page", 0, "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if query == "" {
		return c.Error(fmt.Errorf("-q is required"))
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := slack.New(client).SearchMessages(context.Background(), query, count, page)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// ChannelsCommand lists conversations.
type ChannelsCommand struct {
	*base.Command
}

func (c *ChannelsCommand) Synopsis() string {
	return "List Slack channels"
}

func (c *ChannelsCommand) Help() string {
	return `Usage: praixy slack channels [options]

  Lists conversations visible to the account.

Options:
  -types=<csv>      public_channel, private_channel, im, mpim
  -limit=<n>        Results per page
  -cursor=<c>       Pagination cursor from a previous response
  -config=<path>    Path to an HCL configuration file
`
}

func (c *ChannelsCommand) Run(args []string) int {
	var (
		types  string
		limit  int
		cursor string
	)

	f := c.FlagSet("slack channels")
	f.StringVar(&types, "types", "", "")
	f.IntVar(&limit, "limit", 0, "")
	f.StringVar(&cursor, "cursor", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := slack.New(client).ListConversations(context.Background(), types, limit, cursor)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// historyWindow converts -since/-until flags to Slack timestamps.
func historyWindow(since, until string) (oldest, latest string, err error) {
	if since != "" {
		t, err := base.ParseTime(since)
		if err != nil {
			return "", "", err
		}
		oldest = strconv.FormatInt(t.Unix(), 10)
	}
	if until != "" {
		t, err := base.ParseTime(until)
		if err != nil {
			return "", "", err
		}
		latest = strconv.FormatInt(t.Unix(), 10)
	}
	return oldest, latest, nil
}

// HistoryCommand reads channel history.
type HistoryCommand struct {
	*base.Command
}

func (c *HistoryCommand) Synopsis() string {
	return "Read Slack channel history"
}

func (c *HistoryCommand) Help() string {
	return `Usage: praixy slack history -channel=<channel-id> [options]

  Reads messages from a channel, newest first.

  Examples:
    praixy slack history -channel=C012AB3CD -limit=100
    praixy slack history -channel=C012AB3CD -since="2026-08-20" -until="2026-08-21"

Options:
  -channel=<id>     Channel ID (required)
  -limit=<n>        Messages per page
  -cursor=<c>       Pagination cursor from a previous response
  -since=<time>     Only messages after this time
  -until=<time>     Only messages before this time
  -config=<path>    Path to an HCL configuration file
`
}

func (c *HistoryCommand) Run(args []string) int {
	var (
		channel string
		since   string
		until   string
		opts    slack.HistoryOptions
	)

	f := c.FlagSet("slack history")
	f.StringVar(&channel, "channel", "", "")
	f.IntVar(&opts.Limit, "limit", 0, "")
	f.StringVar(&opts.Cursor, "cursor", "", "")
	f.StringVar(&since, "since", "", "")
	f.StringVar(&until, "until", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if channel == "" {
		return c.Error(fmt.Errorf("-channel is required"))
	}

	var err error
	opts.Oldest, opts.Latest, err = historyWindow(since, until)
	if err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := slack.New(client).ConversationHistory(context.Background(), channel, opts)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// RepliesCommand reads a thread.
type RepliesCommand struct {
	*base.Command
}

func (c *RepliesCommand) Synopsis() string {
	return "Read a Slack thread"
}

func (c *RepliesCommand) Help() string {
	return `Usage: praixy slack replies -channel=<channel-id> -ts=<thread-ts> [options]

  Reads the replies of a thread rooted at the given timestamp.

Options:
  -channel=<id>     Channel ID (required)
  -ts=<ts>          Thread root timestamp, e.g. 1726531200.000100 (required)
  -limit=<n>        Messages per page
  -cursor=<c>       Pagination cursor from a previous response
  -config=<path>    Path to an HCL configuration file
`
}

func (c *RepliesCommand) Run(args []string) int {
	var (
		channel string
		ts      string
		opts    slack.HistoryOptions
	)

	f := c.FlagSet("slack replies")
	f.StringVar(&channel, "channel", "", "")
	f.StringVar(&ts, "ts", "", "")
	f.IntVar(&opts.Limit, "limit", 0, "")
	f.StringVar(&opts.Cursor, "cursor", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if channel == "" || ts == "" {
		return c.Error(fmt.Errorf("-channel and -ts are required"))
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := slack.New(client).ConversationReplies(context.Background(), channel, ts, opts)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// UserCommand fetches one user's profile.
type UserCommand struct {
	*base.Command
}

func (c *UserCommand) Synopsis() string {
	return "Fetch a Slack user profile"
}

func (c *UserCommand) Help() string {
	return `Usage: praixy slack user -id=<user-id>

  Fetches one user's profile.

Options:
  -id=<id>          User ID, e.g. U0123ABCD (required)
  -config=<path>    Path to an HCL configuration file
`
}

func (c *UserCommand) Run(args []string) int {
	var id string

	f := c.FlagSet("slack user")
	f.StringVar(&id, "id", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if id == "" {
		return c.Error(fmt.Errorf("-id is required"))
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := slack.New(client).UserInfo(context.Background(), id)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// UsersCommand lists workspace members.
type UsersCommand struct {
	*base.Command
}

func (c *UsersCommand) Synopsis() string {
	return "List Slack workspace members"
}

func (c *UsersCommand) Help() string {
	return `Usage: praixy slack users [options]

  Lists workspace members.

Options:
  -limit=<n>        Results per page
  -cursor=<c>       Pagination cursor from a previous response
  -config=<path>    Path to an HCL configuration file
`
}

func (c *UsersCommand) Run(args []string) int {
	var (
		limit  int
		cursor string
	)

	f := c.FlagSet("slack users")
	f.IntVar(&limit, "limit", 0, "")
	f.StringVar(&cursor, "cursor", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := slack.New(client).ListUsers(context.Background(), limit, cursor)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// DMCommand sends a message to the caller's own DM.
type DMCommand struct {
	*base.Command
}

func (c *DMCommand) Synopsis() string {
	return "Send a Slack DM to yourself"
}

func (c *DMCommand) Help() string {
	return `Usage: praixy slack dm -text=<message>

  Sends a message to the authenticated account's own DM via the
  slack-simple surface. Useful for notes and reminders.

Options:
  -text=<message>   Message text (required)
  -config=<path>    Path to an HCL configuration file
`
}

func (c *DMCommand) Run(args []string) int {
	var text string

	f := c.FlagSet("slack dm")
	f.StringVar(&text, "text", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if text == "" {
		return c.Error(fmt.Errorf("-text is required"))
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := slack.New(client).DMSelf(context.Background(), text)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}
