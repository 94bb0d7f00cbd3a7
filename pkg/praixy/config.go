package praixy

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EnvAPIKey is the environment variable the API key is sourced from.
const EnvAPIKey = "MARSHAL_API_KEY"

// DefaultBaseURL is the proxy origin used when no base URL is configured.
// It is only reachable from the documented deployment.
const DefaultBaseURL = "https://praixy.marshal.internal"

// Config contains configuration for the Praixy client.
//
// Example configuration (HCL):
//
//	praixy {
//	  base_url    = "https://praixy.marshal.internal"
//	  timeout     = "30s"
//	  tls_verify  = true
//	  max_retries = 0
//	}
//
// The API key is never read from a config file; it comes from the
// MARSHAL_API_KEY environment variable.
type Config struct {
	// BaseURL is the origin of the Praixy proxy.
	// Example: "https://praixy.marshal.internal"
	BaseURL string `hcl:"base_url,optional" json:"baseUrl"`

	// APIKey is the static bearer token attached to every request.
	APIKey string `hcl:"-" json:"-"` // Never marshal the key.

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `hcl:"tls_verify,optional" json:"tlsVerify,omitempty"`

	// Timeout for proxy requests.
	// Default: 30 seconds.
	Timeout time.Duration `hcl:"-" json:"timeout,omitempty"`

	// MaxRetries for failed requests. Zero means no retries: the proxy
	// defines nothing as retryable, so retrying is strictly opt-in.
	MaxRetries int `hcl:"max_retries,optional" json:"maxRetries,omitempty"`

	// RetryDelay is the initial backoff between retries.
	// Default: 1 second.
	RetryDelay time.Duration `hcl:"-" json:"retryDelay,omitempty"`

	// UserAgent is sent as the User-Agent header.
	UserAgent string `hcl:"user_agent,optional" json:"userAgent,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults. The API key is not
// populated; use FromEnv or set APIKey explicitly.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		BaseURL:    DefaultBaseURL,
		TLSVerify:  &tlsVerify,
		Timeout:    30 * time.Second,
		MaxRetries: 0,
		RetryDelay: 1 * time.Second,
		UserAgent:  "praixy-go",
	}
}

// FromEnv returns DefaultConfig with the API key read from MARSHAL_API_KEY.
// Validation still happens in New, so a missing variable surfaces as a
// configuration error before any request is made.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.APIKey = os.Getenv(EnvAPIKey)
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(validateOrigin)),
		validation.Field(&c.APIKey, validation.Required.Error(
			"api key is required: set "+EnvAPIKey)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.RetryDelay, validation.Min(time.Duration(0))),
	)
}

// validateOrigin rejects base URLs that are not plain http/https origins.
func validateOrigin(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errInvalidScheme
	}
	if u.Host == "" {
		return errMissingHost
	}
	return nil
}

// NewHTTPClient creates a configured HTTP client for the proxy.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
