package praixy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Client issues authenticated requests against the Praixy proxy.
//
// The client is stateless and safe for concurrent use. Each call is an
// independent request/response exchange; there is no coordination between
// concurrent invocations.
type Client struct {
	config *Config
	client *http.Client
	log    hclog.Logger
}

// New creates a Praixy client from the given configuration. Defaults are
// applied for unset fields, then the configuration is validated. A missing
// API key fails here, before any network I/O.
func New(cfg *Config) (*Client, error) {
	return NewWithLogger(cfg, hclog.NewNullLogger())
}

// NewWithLogger is New with an explicit logger. Request/response exchanges
// are logged at debug level.
func NewWithLogger(cfg *Config, log hclog.Logger) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TLSVerify == nil {
		defaults := DefaultConfig()
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = 1 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "praixy-go"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid praixy config: %w", err)
	}

	if log == nil {
		log = hclog.NewNullLogger()
	}

	httpClient := cfg.NewHTTPClient()
	if log.IsDebug() {
		httpClient.Transport = NewLoggingTransport(httpClient.Transport, log)
	}

	return &Client{
		config: cfg,
		client: httpClient,
		log:    log,
	}, nil
}

// NewFromEnv creates a client with defaults and the API key sourced from
// the MARSHAL_API_KEY environment variable.
func NewFromEnv() (*Client, error) {
	return New(FromEnv())
}

// BaseURL returns the configured proxy origin.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// GetRaw performs a GET against the proxy and returns the response body
// byte-identical to what the proxy returned.
func (c *Client) GetRaw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Get performs a GET and decodes the JSON response into result.
func (c *Client) Get(ctx context.Context, path string, params url.Values, result interface{}) error {
	body, err := c.GetRaw(ctx, path, params)
	if err != nil {
		return err
	}
	return decode(body, result)
}

// PostRaw performs a POST with a JSON body and returns the response body
// unmodified.
func (c *Client) PostRaw(ctx context.Context, path string, body interface{}) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Post performs a POST with a JSON body and decodes the JSON response into
// result.
func (c *Client) Post(ctx context.Context, path string, body, result interface{}) error {
	respBody, err := c.PostRaw(ctx, path, body)
	if err != nil {
		return err
	}
	return decode(respBody, result)
}

// do executes a single request against the proxy. Retries only happen when
// MaxRetries is explicitly configured, and only for transport failures and
// server errors; client errors are permanent.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body interface{}) ([]byte, error) {
	endpoint, err := c.buildURL(path, params)
	if err != nil {
		return nil, err
	}

	var bodyBytes []byte
	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	attempt := func() ([]byte, error) {
		return c.doOnce(ctx, method, endpoint, bodyBytes)
	}

	var bo backoff.BackOff
	if c.config.MaxRetries > 0 {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = c.config.RetryDelay
		bo = backoff.WithMaxRetries(b, uint64(c.config.MaxRetries))
	} else {
		// Single attempt: nothing is defined retryable by the proxy.
		bo = &backoff.StopBackOff{}
	}

	return backoff.RetryWithData(attempt, backoff.WithContext(bo, ctx))
}

// doOnce performs one request/response exchange. Errors it returns are
// classified for the retry loop: *backoff.PermanentError wraps everything
// that must not be retried.
func (c *Client) doOnce(ctx context.Context, method, endpoint string, bodyBytes []byte) ([]byte, error) {
	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-Id", requestID)
	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			"method", method, "url", endpoint, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug("request completed",
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"request_id", requestID,
		"elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Body:       respBody,
			RequestID:  requestID,
		}
		if resp.StatusCode >= 500 {
			return nil, statusErr
		}
		return nil, backoff.Permanent(error(statusErr))
	}

	return respBody, nil
}

// buildURL joins the proxy origin, the request path, and query parameters.
func (c *Client) buildURL(path string, params url.Values) (string, error) {
	u, err := url.Parse(strings.TrimSuffix(c.config.BaseURL, "/") + path)
	if err != nil {
		return "", fmt.Errorf("building request URL: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}
	return u.String(), nil
}

// decode unmarshals a response body into result, preserving the raw body on
// failure. A nil result or empty body is a no-op.
func decode(body []byte, result interface{}) error {
	if result == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &DecodeError{Body: body, Err: err}
	}
	return nil
}
