package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := praixy.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.APIKey = "test-key"

	proxy, err := praixy.New(cfg)
	require.NoError(t, err)

	return New(proxy)
}

func TestListCalendars_Path(t *testing.T) {
	var gotPath string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"items":[]}`))
	}))

	_, err := client.ListCalendars(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/calendar-raw/v3/users/me/calendarList", gotPath)
}

func TestListEvents_Params(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"items":[]}`))
	}))

	timeMin := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	timeMax := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := client.ListEvents(context.Background(), EventsOptions{
		TimeMin:      timeMin,
		TimeMax:      timeMax,
		Query:        "1:1",
		SingleEvents: true,
		OrderBy:      "startTime",
		MaxResults:   50,
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/calendar-raw/v3/calendars/primary/events", gotPath)
	assert.Equal(t, "2026-08-24T00:00:00Z", gotQuery.Get("timeMin"))
	assert.Equal(t, "2026-08-31T00:00:00Z", gotQuery.Get("timeMax"))
	assert.Equal(t, "1:1", gotQuery.Get("q"))
	assert.Equal(t, "true", gotQuery.Get("singleEvents"))
	assert.Equal(t, "startTime", gotQuery.Get("orderBy"))
	assert.Equal(t, "50", gotQuery.Get("maxResults"))
}

func TestGetEvent_Path(t *testing.T) {
	var gotPath string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))

	_, err := client.GetEvent(context.Background(), "evt_8f2k1")
	require.NoError(t, err)
	assert.Equal(t, "/api/calendar-raw/v3/calendars/primary/events/evt_8f2k1", gotPath)
}
