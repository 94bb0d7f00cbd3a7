// Package gmail wraps the Praixy Gmail surfaces.
//
// Two surfaces exist behind the proxy: gmail-raw mirrors the native Gmail
// API under /api/gmail-raw/v1/users/me, and gmail-simple returns
// pre-decoded message JSON under /api/gmail-simple. Both are read-only
// GETs; payload shapes are owned upstream and passed through unmodified.
package gmail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

const (
	rawPrefix    = "/api/gmail-raw/v1/users/me"
	simplePrefix = "/api/gmail-simple"

	// MaxBatchIDs is the documented limit on ids per gmail-simple batch
	// request.
	MaxBatchIDs = 50
)

// ErrBatchTooLarge is returned when more than MaxBatchIDs message IDs are
// passed to GetSimpleMessages.
var ErrBatchTooLarge = errors.New("too many message ids for one batch")

// Client wraps a Praixy client with Gmail path building.
type Client struct {
	proxy *praixy.Client
}

// New returns a Gmail client on top of the given proxy client.
func New(proxy *praixy.Client) *Client {
	return &Client{proxy: proxy}
}

// ListOptions are the common Gmail list parameters. Query uses Gmail search
// syntax (from:, subject:, after:, has:attachment, ...).
type ListOptions struct {
	Query      string
	MaxResults int
	PageToken  string
}

func (o ListOptions) values() url.Values {
	params := url.Values{}
	if o.Query != "" {
		params.Set("q", o.Query)
	}
	if o.MaxResults > 0 {
		params.Set("maxResults", strconv.Itoa(o.MaxResults))
	}
	if o.PageToken != "" {
		params.Set("pageToken", o.PageToken)
	}
	return params
}

// ListMessages lists message IDs matching the query via the raw surface.
func (c *Client) ListMessages(ctx context.Context, opts ListOptions) ([]byte, error) {
	return c.proxy.GetRaw(ctx, rawPrefix+"/messages", opts.values())
}

// GetMessage fetches a single message via the raw surface. format is the
// native Gmail format parameter (full, metadata, minimal, raw); empty uses
// the upstream default.
func (c *Client) GetMessage(ctx context.Context, id, format string) ([]byte, error) {
	params := url.Values{}
	if format != "" {
		params.Set("format", format)
	}
	return c.proxy.GetRaw(ctx, rawPrefix+"/messages/"+url.PathEscape(id), params)
}

// ListThreads lists thread IDs matching the query via the raw surface.
func (c *Client) ListThreads(ctx context.Context, opts ListOptions) ([]byte, error) {
	return c.proxy.GetRaw(ctx, rawPrefix+"/threads", opts.values())
}

// GetThread fetches a whole thread via the raw surface.
func (c *Client) GetThread(ctx context.Context, id string) ([]byte, error) {
	return c.proxy.GetRaw(ctx, rawPrefix+"/threads/"+url.PathEscape(id), nil)
}

// ListSimpleMessages lists pre-decoded messages from the simple surface.
func (c *Client) ListSimpleMessages(ctx context.Context, opts ListOptions) ([]byte, error) {
	return c.proxy.GetRaw(ctx, simplePrefix+"/messages", opts.values())
}

// GetSimpleMessage fetches one pre-decoded message.
func (c *Client) GetSimpleMessage(ctx context.Context, id string) ([]byte, error) {
	return c.proxy.GetRaw(ctx, simplePrefix+"/messages/"+url.PathEscape(id), nil)
}

// GetSimpleMessages fetches up to MaxBatchIDs pre-decoded messages in one
// request. More than MaxBatchIDs ids is rejected before any network call.
func (c *Client) GetSimpleMessages(ctx context.Context, ids []string) ([]byte, error) {
	if len(ids) == 0 {
		return nil, errors.New("no message ids given")
	}
	if len(ids) > MaxBatchIDs {
		return nil, fmt.Errorf("%w: %d ids (limit %d)", ErrBatchTooLarge, len(ids), MaxBatchIDs)
	}

	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	return c.proxy.GetRaw(ctx, simplePrefix+"/messages", params)
}

// ListLabels lists the account's labels from the simple surface.
func (c *Client) ListLabels(ctx context.Context) ([]byte, error) {
	return c.proxy.GetRaw(ctx, simplePrefix+"/labels", nil)
}

// GetSimpleMessagesAll fetches any number of message IDs by chunking into
// batches of MaxBatchIDs and issuing the batch requests concurrently. Each
// element of the result is one batch response, unmodified and in input
// order. Successful batches are returned even when others fail; failures
// are aggregated into a single error.
func (c *Client) GetSimpleMessagesAll(ctx context.Context, ids []string) ([]json.RawMessage, error) {
	if len(ids) == 0 {
		return nil, errors.New("no message ids given")
	}

	var chunks [][]string
	for len(ids) > 0 {
		n := len(ids)
		if n > MaxBatchIDs {
			n = MaxBatchIDs
		}
		chunks = append(chunks, ids[:n])
		ids = ids[n:]
	}

	results := make([]json.RawMessage, len(chunks))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		merr *multierror.Error
	)

	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []string) {
			defer wg.Done()

			body, err := c.GetSimpleMessages(ctx, chunk)
			if err != nil {
				mu.Lock()
				merr = multierror.Append(merr,
					fmt.Errorf("batch %d (%d ids): %w", i, len(chunk), err))
				mu.Unlock()
				return
			}
			results[i] = body
		}(i, chunk)
	}
	wg.Wait()

	// Drop slots for failed batches, keeping input order.
	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}

	return out, merr.ErrorOrNil()
}
