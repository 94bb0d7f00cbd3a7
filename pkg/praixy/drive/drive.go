// Package drive wraps the Praixy Google Drive surface.
//
// The drive-raw surface mirrors the native Drive v3 API under
// /api/drive-raw/v3. Search uses Drive query syntax in the q parameter,
// e.g. "name contains 'report' and mimeType = 'application/pdf'".
package drive

import (
	"context"
	"net/url"
	"strconv"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

const rawPrefix = "/api/drive-raw/v3"

// Client wraps a Praixy client with Drive path building.
type Client struct {
	proxy *praixy.Client
}

// New returns a Drive client on top of the given proxy client.
func New(proxy *praixy.Client) *Client {
	return &Client{proxy: proxy}
}

// ListFilesOptions are the Drive files.list parameters passed through to
// the upstream API.
type ListFilesOptions struct {
	// Query is Drive search syntax for the q parameter.
	Query string

	// Fields selects response fields, e.g.
	// "files(id,name,mimeType,modifiedTime)".
	Fields string

	PageSize  int
	PageToken string
	OrderBy   string

	// IncludeSharedDrives widens the corpus to shared drives.
	IncludeSharedDrives bool
}

func (o ListFilesOptions) values() url.Values {
	params := url.Values{}
	if o.Query != "" {
		params.Set("q", o.Query)
	}
	if o.Fields != "" {
		params.Set("fields", o.Fields)
	}
	if o.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(o.PageSize))
	}
	if o.PageToken != "" {
		params.Set("pageToken", o.PageToken)
	}
	if o.OrderBy != "" {
		params.Set("orderBy", o.OrderBy)
	}
	if o.IncludeSharedDrives {
		params.Set("supportsAllDrives", "true")
		params.Set("includeItemsFromAllDrives", "true")
	}
	return params
}

// ListFiles searches file metadata.
func (c *Client) ListFiles(ctx context.Context, opts ListFilesOptions) ([]byte, error) {
	return c.proxy.GetRaw(ctx, rawPrefix+"/files", opts.values())
}

// GetFile fetches metadata for a single file. fields selects response
// fields; empty uses the upstream default.
func (c *Client) GetFile(ctx context.Context, id, fields string) ([]byte, error) {
	params := url.Values{}
	if fields != "" {
		params.Set("fields", fields)
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/files/"+url.PathEscape(id), params)
}

// ListDrives lists shared drives visible to the account.
func (c *Client) ListDrives(ctx context.Context, pageSize int, pageToken string) ([]byte, error) {
	params := url.Values{}
	if pageSize > 0 {
		params.Set("pageSize", strconv.Itoa(pageSize))
	}
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/drives", params)
}
