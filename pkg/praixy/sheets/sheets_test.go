package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
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

func TestGetValues_RangeEscaping(t *testing.T) {
	var gotPath string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"values":[]}`))
	}))

	// Sheet names may contain spaces; the range must round-trip through
	// the path intact.
	_, err := client.GetValues(context.Background(), "sheet-id", "Budget 2026!A1:D10", ValueOptions{})
	require.NoError(t, err)

	assert.Equal(t,
		"/api/sheets-raw/v4/spreadsheets/sheet-id/values/Budget 2026!A1:D10",
		gotPath)
}

func TestGetValues_Options(t *testing.T) {
	var gotRender, gotDimension string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRender = r.URL.Query().Get("valueRenderOption")
		gotDimension = r.URL.Query().Get("majorDimension")
		w.Write([]byte(`{"values":[]}`))
	}))

	_, err := client.GetValues(context.Background(), "sheet-id", "A1:B2", ValueOptions{
		ValueRenderOption: "UNFORMATTED_VALUE",
		MajorDimension:    "COLUMNS",
	})
	require.NoError(t, err)

	assert.Equal(t, "UNFORMATTED_VALUE", gotRender)
	assert.Equal(t, "COLUMNS", gotDimension)
}

func TestBatchGetValues_RepeatedRanges(t *testing.T) {
	var gotPath string
	var gotRanges []string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRanges = r.URL.Query()["ranges"]
		w.Write([]byte(`{"valueRanges":[]}`))
	}))

	_, err := client.BatchGetValues(context.Background(), "sheet-id",
		[]string{"Sheet1!A1:B5", "Sheet2!C1:C20"}, ValueOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/api/sheets-raw/v4/spreadsheets/sheet-id/values:batchGet", gotPath)
	assert.Equal(t, []string{"Sheet1!A1:B5", "Sheet2!C1:C20"}, gotRanges)
}

func TestGetSpreadsheet_Path(t *testing.T) {
	var gotPath string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))

	_, err := client.GetSpreadsheet(context.Background(), "sheet-id", "")
	require.NoError(t, err)
	assert.Equal(t, "/api/sheets-raw/v4/spreadsheets/sheet-id", gotPath)
}
