package crm

import (
	"context"
	"encoding/json"
	"io"
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

func TestQuery_AlwaysPOSTWithQueryField(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Write([]byte(`{"data":{"contacts":[]}}`))
	}))

	_, err := client.Query(context.Background(),
		`query { contacts { id firstName } }`,
		map[string]interface{}{"limit": 10})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/crm/graphql", gotPath)
	assert.Equal(t, `query { contacts { id firstName } }`, gotBody["query"])
	assert.Equal(t, map[string]interface{}{"limit": float64(10)}, gotBody["variables"])
}

func TestQuery_GraphQLErrors(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"unknown field \"foo\""}]}`))
	}))

	result, err := client.Query(context.Background(), `query { foo }`, nil)
	require.NoError(t, err, "transport succeeded; errors live in the envelope")

	require.Error(t, result.Err())
	assert.Contains(t, result.Err().Error(), "unknown field")
}

func TestResult_Decode(t *testing.T) {
	type contact struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
	}

	result := &Result{
		Data: json.RawMessage(`{"contacts":[{"id":"c1","firstName":"Ada"},{"id":"c2","firstName":"Grace"}]}`),
	}

	var contacts []contact
	require.NoError(t, result.Decode("contacts", &contacts))

	require.Len(t, contacts, 2)
	assert.Equal(t, "c1", contacts[0].ID)
	assert.Equal(t, "Grace", contacts[1].FirstName)
}

func TestResult_DecodeMissingField(t *testing.T) {
	result := &Result{Data: json.RawMessage(`{"contacts":[]}`)}

	var out []struct{}
	err := result.Decode("accounts", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accounts")
}

func TestSchema_Path(t *testing.T) {
	var gotMethod, gotPath string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"types":[]}`))
	}))

	_, err := client.Schema(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/crm/schema", gotPath)
}

func TestFields(t *testing.T) {
	assert.Equal(t, "id firstName accountOwner", Fields("ID", "FirstName", "AccountOwner"))
	assert.Equal(t, "email", Fields("email"))
}
