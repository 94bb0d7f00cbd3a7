// Package crm wraps the Praixy CRM GraphQL surface.
//
// Queries always go over HTTP POST to /api/crm/graphql with a JSON body
// carrying the query string and optional variables. The schema document is
// available with a GET to /api/crm/schema for discovering the available
// object types and fields.
package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

const (
	graphqlPath = "/api/crm/graphql"
	schemaPath  = "/api/crm/schema"
)

// Client wraps a Praixy client with CRM GraphQL operations.
type Client struct {
	proxy *praixy.Client
}

// New returns a CRM client on top of the given proxy client.
func New(proxy *praixy.Client) *Client {
	return &Client{proxy: proxy}
}

// request is the GraphQL POST body.
type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLError is a single error entry from a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

func (e GraphQLError) Error() string {
	return e.Message
}

// Result is a decoded GraphQL response envelope. Data is kept raw so the
// payload reaches the caller unmodified.
type Result struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// Err folds the response's errors entries into a single error, or nil.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Message
	}
	return fmt.Errorf("graphql: %s", strings.Join(msgs, "; "))
}

// Decode extracts a named field of the data payload into out. Field names
// in out are matched case-insensitively via json tags or lowerCamel
// conversion, so plain Go structs work without tagging every field.
func (r *Result) Decode(field string, out interface{}) error {
	var data map[string]interface{}
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return fmt.Errorf("decoding graphql data: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field %q not present in graphql data", field)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("decoding field %q: %w", field, err)
	}
	return nil
}

// Query executes a GraphQL query with optional variables. The transport is
// always POST; the CRM surface does not accept queries over GET.
func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}) (*Result, error) {
	var result Result
	err := c.proxy.Post(ctx, graphqlPath, request{
		Query:     query,
		Variables: variables,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("crm query: %w", err)
	}
	return &result, nil
}

// QueryRaw executes a GraphQL query and returns the response body
// byte-identical to what the proxy returned.
func (c *Client) QueryRaw(ctx context.Context, query string, variables map[string]interface{}) ([]byte, error) {
	return c.proxy.PostRaw(ctx, graphqlPath, request{
		Query:     query,
		Variables: variables,
	})
}

// Schema fetches the CRM GraphQL schema document.
func (c *Client) Schema(ctx context.Context) ([]byte, error) {
	return c.proxy.GetRaw(ctx, schemaPath, nil)
}

// Fields builds a GraphQL selection set from Go-style names. Each name is
// converted to the lowerCamel convention the CRM schema uses, so
// Fields("ID", "FirstName", "AccountOwner") yields
// "id firstName accountOwner".
func Fields(names ...string) string {
	out := make([]string, len(names))
	for i, n := range names {
		if n == strings.ToUpper(n) {
			// All-caps names are acronyms (ID, URL); lowercase first so
			// they don't come out as "iD".
			n = strings.ToLower(n)
		}
		out[i] = strcase.ToLowerCamel(n)
	}
	return strings.Join(out, " ")
}
