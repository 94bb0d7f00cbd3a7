package slack

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

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

func TestSearchMessages_Params(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"ok":true,"messages":{"matches":[]}}`))
	}))

	_, err := client.SearchMessages(context.Background(), "in:#eng-infra deploy failure", 20, 2)
	require.NoError(t, err)

	assert.Equal(t, "/api/slack/search.messages", gotPath)
	assert.Equal(t, "in:#eng-infra deploy failure", gotQuery.Get("query"))
	assert.Equal(t, "20", gotQuery.Get("count"))
	assert.Equal(t, "2", gotQuery.Get("page"))
}

func TestConversationHistory_Window(t *testing.T) {
	var gotQuery url.Values

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"ok":true,"messages":[]}`))
	}))

	_, err := client.ConversationHistory(context.Background(), "C012AB3CD", HistoryOptions{
		Limit:  100,
		Oldest: "1726531200.000000",
		Latest: "1726617600.000000",
	})
	require.NoError(t, err)

	assert.Equal(t, "C012AB3CD", gotQuery.Get("channel"))
	assert.Equal(t, "100", gotQuery.Get("limit"))
	assert.Equal(t, "1726531200.000000", gotQuery.Get("oldest"))
	assert.Equal(t, "1726617600.000000", gotQuery.Get("latest"))
}

func TestConversationReplies_Params(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"ok":true,"messages":[]}`))
	}))

	_, err := client.ConversationReplies(context.Background(),
		"C012AB3CD", "1726531200.000100", HistoryOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/api/slack/conversations.replies", gotPath)
	assert.Equal(t, "C012AB3CD", gotQuery.Get("channel"))
	assert.Equal(t, "1726531200.000100", gotQuery.Get("ts"))
}

func TestUserInfo_Param(t *testing.T) {
	var gotPath, gotUser string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser = r.URL.Query().Get("user")
		w.Write([]byte(`{"ok":true,"user":{}}`))
	}))

	_, err := client.UserInfo(context.Background(), "U0123ABCD")
	require.NoError(t, err)

	assert.Equal(t, "/api/slack/users.info", gotPath)
	assert.Equal(t, "U0123ABCD", gotUser)
}

func TestDMSelf_POSTWithText(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"ok":true}`))
	}))

	_, err := client.DMSelf(context.Background(), "reminder: rotate the key")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/slack-simple/dm-self", gotPath)
	assert.JSONEq(t, `{"text":"reminder: rotate the key"}`, string(gotBody))
}
