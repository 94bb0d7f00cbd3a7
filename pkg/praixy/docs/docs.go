// Package docs wraps the Praixy Google Docs surface.
//
// The docs-raw surface mirrors the native Docs v1 API under
// /api/docs-raw/v1. Document content comes back as the native structured
// document JSON and is passed through unmodified.
package docs

import (
	"context"
	"net/url"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

const rawPrefix = "/api/docs-raw/v1"

// Client wraps a Praixy client with Docs path building.
type Client struct {
	proxy *praixy.Client
}

// New returns a Docs client on top of the given proxy client.
func New(proxy *praixy.Client) *Client {
	return &Client{proxy: proxy}
}

// GetDocument fetches a document by ID. includeTabsContent asks the
// upstream API to inline content from all tabs.
func (c *Client) GetDocument(ctx context.Context, id string, includeTabsContent bool) ([]byte, error) {
	params := url.Values{}
	if includeTabsContent {
		params.Set("includeTabsContent", "true")
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/documents/"+url.PathEscape(id), params)
}

// ListDocuments searches documents with the q parameter.
func (c *Client) ListDocuments(ctx context.Context, query string) ([]byte, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/documents", params)
}
