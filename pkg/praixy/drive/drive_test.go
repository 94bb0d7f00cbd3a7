package drive

import (
	"context"
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

func TestListFiles_Params(t *testing.T) {
	var gotPath string
	var gotQuery url.Values

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"files":[]}`))
	}))

	_, err := client.ListFiles(context.Background(), ListFilesOptions{
		Query:     "name contains 'Q3' and mimeType = 'application/pdf'",
		Fields:    "files(id,name,mimeType,modifiedTime)",
		PageSize:  20,
		OrderBy:   "modifiedTime desc",
		PageToken: "tok-2",
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/drive-raw/v3/files", gotPath)
	assert.Equal(t, "name contains 'Q3' and mimeType = 'application/pdf'", gotQuery.Get("q"))
	assert.Equal(t, "files(id,name,mimeType,modifiedTime)", gotQuery.Get("fields"))
	assert.Equal(t, "20", gotQuery.Get("pageSize"))
	assert.Equal(t, "modifiedTime desc", gotQuery.Get("orderBy"))
	assert.Equal(t, "tok-2", gotQuery.Get("pageToken"))
}

func TestListFiles_SharedDrives(t *testing.T) {
	var gotQuery url.Values

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"files":[]}`))
	}))

	_, err := client.ListFiles(context.Background(), ListFilesOptions{
		IncludeSharedDrives: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "true", gotQuery.Get("supportsAllDrives"))
	assert.Equal(t, "true", gotQuery.Get("includeItemsFromAllDrives"))
}

func TestGetFile_Path(t *testing.T) {
	var gotPath, gotFields string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		w.Write([]byte(`{}`))
	}))

	_, err := client.GetFile(context.Background(), "1AbC_dEf", "id,name,owners")
	require.NoError(t, err)

	assert.Equal(t, "/api/drive-raw/v3/files/1AbC_dEf", gotPath)
	assert.Equal(t, "id,name,owners", gotFields)
}

func TestListDrives_Path(t *testing.T) {
	var gotPath string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"drives":[]}`))
	}))

	_, err := client.ListDrives(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, "/api/drive-raw/v3/drives", gotPath)
}
