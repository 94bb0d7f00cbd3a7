// Package calendar implements the praixy calendar CLI commands.
package calendar

import (
	"context"
	"fmt"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	"github.com/marshal-labs/praixy/pkg/praixy/calendar"
)

// ListCommand lists the account's calendars.
type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "List Google Calendars"
}

func (c *ListCommand) Help() string {
	return `Usage: praixy calendar list

  Lists the calendars on the account's calendar list.

Options:
  -config=<path>    Path to an HCL configuration file
`
}

func (c *ListCommand) Run(args []string) int {
	f := c.FlagSet("calendar list")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := calendar.New(client).ListCalendars(context.Background())
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// EventsCommand lists events on the primary calendar.
type EventsCommand struct {
	*base.Command
}

func (c *EventsCommand) Synopsis() string {
	return "List Google Calendar events"
}

func (c *EventsCommand) Help() string {
	return `Usage: praixy calendar events [options]

  Lists events on the primary calendar. Time bounds accept human formats
  ("2026-08-24", "Aug 24, 2026 9:00am").

  Examples:
    praixy calendar events -since="2026-08-24" -until="2026-08-31"
    praixy calendar events -q="1:1" -max=10

Options:
  -since=<time>     Only events starting after this time
  -until=<time>     Only events starting before this time
  -q=<query>        Free-text search over event fields
  -expand           Expand recurring events into instances
  -order-by=<o>     startTime (implies -expand) or updated
  -max=<n>          Maximum results
  -page-token=<t>   Page token from a previous response
  -config=<path>    Path to an HCL configuration file
`
}

func (c *EventsCommand) Run(args []string) int {
	var (
		since string
		until string
		opts  calendar.EventsOptions
	)

	f := c.FlagSet("calendar events")
	f.StringVar(&since, "since", "", "")
	f.StringVar(&until, "until", "", "")
	f.StringVar(&opts.Query, "q", "", "")
	f.BoolVar(&opts.SingleEvents, "expand", false, "")
	f.StringVar(&opts.OrderBy, "order-by", "", "")
	f.IntVar(&opts.MaxResults, "max", 0, "")
	f.StringVar(&opts.PageToken, "page-token", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	if since != "" {
		t, err := base.ParseTime(since)
		if err != nil {
			return c.Error(err)
		}
		opts.TimeMin = t
	}
	if until != "" {
		t, err := base.ParseTime(until)
		if err != nil {
			return c.Error(err)
		}
		opts.TimeMax = t
	}

	// The upstream API rejects orderBy=startTime without singleEvents.
	if opts.OrderBy == "startTime" {
		opts.SingleEvents = true
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := calendar.New(client).ListEvents(context.Background(), opts)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// EventCommand fetches a single event.
type EventCommand struct {
	*base.Command
}

func (c *EventCommand) Synopsis() string {
	return "Fetch a Google Calendar event"
}

func (c *EventCommand) Help() string {
	return `Usage: praixy calendar event -id=<event-id>

  Fetches one event from the primary calendar.

Options:
  -id=<id>          Event ID (required)
  -config=<path>    Path to an HCL configuration file
`
}

func (c *EventCommand) Run(args []string) int {
	var id string

	f := c.FlagSet("calendar event")
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

	body, err := calendar.New(client).GetEvent(context.Background(), id)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}
