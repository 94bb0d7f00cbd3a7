// Package sheets wraps the Praixy Google Sheets surface.
//
// The sheets-raw surface mirrors the native Sheets v4 API under
// /api/sheets-raw/v4. Ranges use A1 notation ("Sheet1!A1:D10") and are
// URL-escaped into the path.
package sheets

import (
	"context"
	"net/url"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

const rawPrefix = "/api/sheets-raw/v4/spreadsheets"

// Client wraps a Praixy client with Sheets path building.
type Client struct {
	proxy *praixy.Client
}

// New returns a Sheets client on top of the given proxy client.
func New(proxy *praixy.Client) *Client {
	return &Client{proxy: proxy}
}

// ValueOptions are the common value read parameters passed through to the
// upstream API.
type ValueOptions struct {
	// ValueRenderOption: FORMATTED_VALUE (default), UNFORMATTED_VALUE, or
	// FORMULA.
	ValueRenderOption string

	// MajorDimension: ROWS (default) or COLUMNS.
	MajorDimension string
}

func (o ValueOptions) apply(params url.Values) {
	if o.ValueRenderOption != "" {
		params.Set("valueRenderOption", o.ValueRenderOption)
	}
	if o.MajorDimension != "" {
		params.Set("majorDimension", o.MajorDimension)
	}
}

// GetSpreadsheet fetches spreadsheet metadata (sheet names, dimensions,
// properties). fields selects response fields; empty uses the upstream
// default.
func (c *Client) GetSpreadsheet(ctx context.Context, id, fields string) ([]byte, error) {
	params := url.Values{}
	if fields != "" {
		params.Set("fields", fields)
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/"+url.PathEscape(id), params)
}

// GetValues reads one range of cell values in A1 notation.
func (c *Client) GetValues(ctx context.Context, id, rng string, opts ValueOptions) ([]byte, error) {
	params := url.Values{}
	opts.apply(params)
	return c.proxy.GetRaw(ctx,
		rawPrefix+"/"+url.PathEscape(id)+"/values/"+url.PathEscape(rng), params)
}

// BatchGetValues reads multiple ranges in one request via values:batchGet.
func (c *Client) BatchGetValues(ctx context.Context, id string, ranges []string, opts ValueOptions) ([]byte, error) {
	params := url.Values{}
	for _, r := range ranges {
		params.Add("ranges", r)
	}
	opts.apply(params)
	return c.proxy.GetRaw(ctx,
		rawPrefix+"/"+url.PathEscape(id)+"/values:batchGet", params)
}
