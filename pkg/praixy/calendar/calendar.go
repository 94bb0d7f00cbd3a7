// Package calendar wraps the Praixy Google Calendar surface.
//
// The calendar-raw surface mirrors the native Calendar v3 API under
// /api/calendar-raw/v3. Event reads target the primary calendar; timeMin
// and timeMax are RFC3339 timestamps.
package calendar

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

const (
	rawPrefix  = "/api/calendar-raw/v3"
	eventsPath = rawPrefix + "/calendars/primary/events"
)

// Client wraps a Praixy client with Calendar path building.
type Client struct {
	proxy *praixy.Client
}

// New returns a Calendar client on top of the given proxy client.
func New(proxy *praixy.Client) *Client {
	return &Client{proxy: proxy}
}

// ListCalendars lists the calendars on the account's calendar list.
func (c *Client) ListCalendars(ctx context.Context) ([]byte, error) {
	return c.proxy.GetRaw(ctx, rawPrefix+"/users/me/calendarList", nil)
}

// EventsOptions bound an events list.
type EventsOptions struct {
	TimeMin time.Time
	TimeMax time.Time

	// Query is free-text search over event fields.
	Query string

	// SingleEvents expands recurring events into instances; required for
	// orderBy=startTime.
	SingleEvents bool

	// OrderBy: startTime or updated.
	OrderBy string

	MaxResults int
	PageToken  string
}

func (o EventsOptions) values() url.Values {
	params := url.Values{}
	if !o.TimeMin.IsZero() {
		params.Set("timeMin", o.TimeMin.Format(time.RFC3339))
	}
	if !o.TimeMax.IsZero() {
		params.Set("timeMax", o.TimeMax.Format(time.RFC3339))
	}
	if o.Query != "" {
		params.Set("q", o.Query)
	}
	if o.SingleEvents {
		params.Set("singleEvents", "true")
	}
	if o.OrderBy != "" {
		params.Set("orderBy", o.OrderBy)
	}
	if o.MaxResults > 0 {
		params.Set("maxResults", strconv.Itoa(o.MaxResults))
	}
	if o.PageToken != "" {
		params.Set("pageToken", o.PageToken)
	}
	return params
}

// ListEvents lists events on the primary calendar.
func (c *Client) ListEvents(ctx context.Context, opts EventsOptions) ([]byte, error) {
	return c.proxy.GetRaw(ctx, eventsPath, opts.values())
}

// GetEvent fetches a single event from the primary calendar.
func (c *Client) GetEvent(ctx context.Context, id string) ([]byte, error) {
	return c.proxy.GetRaw(ctx, eventsPath+"/"+url.PathEscape(id), nil)
}
