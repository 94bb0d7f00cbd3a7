// Package config loads the optional praixy CLI configuration file.
//
// The file is HCL:
//
//	log_level = "info"
//
//	praixy {
//	  base_url    = "https://praixy.marshal.internal"
//	  timeout     = "30s"
//	  tls_verify  = true
//	  max_retries = 0
//	  retry_delay = "1s"
//	}
//
// The API key never lives in the file; it comes from the MARSHAL_API_KEY
// environment variable. Everything has a zero-config default, so the file
// is only needed to point at a non-standard proxy origin or tune timeouts.
package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/marshal-labs/praixy/pkg/praixy"
)

// Config is the root of the CLI configuration file.
type Config struct {
	// LogLevel sets hclog verbosity: trace, debug, info, warn, or error.
	LogLevel string `hcl:"log_level,optional"`

	// Praixy configures the proxy client.
	Praixy *Praixy `hcl:"praixy,block"`
}

// Praixy is the praixy block of the configuration file. Durations are HCL
// strings ("30s", "2m") parsed with time.ParseDuration.
type Praixy struct {
	BaseURL    string `hcl:"base_url,optional"`
	Timeout    string `hcl:"timeout,optional"`
	TLSVerify  *bool  `hcl:"tls_verify,optional"`
	MaxRetries int    `hcl:"max_retries,optional"`
	RetryDelay string `hcl:"retry_delay,optional"`
	UserAgent  string `hcl:"user_agent,optional"`
}

// Default returns the zero-config Config.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Praixy:   &Praixy{},
	}
}

// Load reads and validates an HCL configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Praixy == nil {
		cfg.Praixy = &Praixy{}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks file-level constraints. Client-level constraints are
// checked again by praixy.Config.Validate when the client is built.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.In("trace", "debug", "info", "warn", "error")),
	); err != nil {
		return err
	}

	if c.Praixy != nil {
		for _, d := range []struct{ name, value string }{
			{"timeout", c.Praixy.Timeout},
			{"retry_delay", c.Praixy.RetryDelay},
		} {
			if d.value == "" {
				continue
			}
			if _, err := time.ParseDuration(d.value); err != nil {
				return fmt.Errorf("invalid %s: %w", d.name, err)
			}
		}
	}

	return nil
}

// ClientConfig builds a praixy.Config from the file plus the environment.
// The API key is always sourced from MARSHAL_API_KEY.
func (c *Config) ClientConfig() (*praixy.Config, error) {
	cfg := praixy.FromEnv()

	p := c.Praixy
	if p == nil {
		return cfg, nil
	}

	if p.BaseURL != "" {
		cfg.BaseURL = p.BaseURL
	}
	if p.TLSVerify != nil {
		cfg.TLSVerify = p.TLSVerify
	}
	if p.MaxRetries > 0 {
		cfg.MaxRetries = p.MaxRetries
	}
	if p.UserAgent != "" {
		cfg.UserAgent = p.UserAgent
	}
	if p.Timeout != "" {
		d, err := time.ParseDuration(p.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout: %w", err)
		}
		cfg.Timeout = d
	}
	if p.RetryDelay != "" {
		d, err := time.ParseDuration(p.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid retry_delay: %w", err)
		}
		cfg.RetryDelay = d
	}

	return cfg, nil
}
