// Package base carries the pieces shared by every praixy CLI command:
// flag handling, config loading, client construction, and output helpers.
package base

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/marshal-labs/praixy/internal/config"
	"github.com/marshal-labs/praixy/pkg/praixy"
)

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	flagConfig string
}

// NewCommand returns a base command wired to the given logger and UI.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{UI: ui, Log: log}
}

// FlagSet returns a flag set pre-populated with the flags every command
// takes. Commands add their own flags before parsing.
func (c *Command) FlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&c.flagConfig, "config", "",
		"Path to an HCL configuration file (optional)")
	return f
}

// Client builds the Praixy client from the config file (when given), the
// zero-config defaults otherwise, and the MARSHAL_API_KEY environment
// variable. A key that parses as an expired JWT gets a warning before the
// proxy has a chance to reject it.
func (c *Command) Client() (*praixy.Client, error) {
	cfg := config.Default()
	if c.flagConfig != "" {
		loaded, err := config.Load(c.flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if level := hclog.LevelFromString(cfg.LogLevel); level != hclog.NoLevel {
		c.Log.SetLevel(level)
	}

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}

	if exp, err := praixy.TokenExpiry(clientCfg.APIKey); err == nil &&
		!exp.IsZero() && exp.Before(time.Now()) {
		c.UI.Warn(fmt.Sprintf(
			"warning: %s appears to be a JWT that expired at %s",
			praixy.EnvAPIKey, exp.Format(time.RFC3339)))
	}

	return praixy.NewWithLogger(clientCfg, c.Log)
}

// Output writes a JSON response body to the UI and returns exit code 0.
func (c *Command) Output(body []byte) int {
	c.UI.Output(strings.TrimRight(string(body), "\n"))
	return 0
}

// Error reports err to the UI and returns exit code 1.
func (c *Command) Error(err error) int {
	c.UI.Error(err.Error())
	return 1
}

// ParseTime parses a human time string ("2026-08-20", "08/20/2026",
// "Aug 20, 2026 2:00pm") into a time.Time.
func ParseTime(s string) (time.Time, error) {
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time %q: %w", s, err)
	}
	return t, nil
}
