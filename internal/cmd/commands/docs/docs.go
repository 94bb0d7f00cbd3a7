// Package docs implements the praixy docs CLI commands.
package docs

import (
	"context"
	"fmt"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	"github.com/marshal-labs/praixy/pkg/praixy/docs"
)

// GetCommand fetches a Google Doc.
type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Fetch a Google Doc"
}

func (c *GetCommand) Help() string {
	return `Usage: praixy docs get -id=<document-id> [options]

  Fetches a document as native structured JSON.

Options:
  -id=<id>          Document ID (required)
  -tabs             Include content from all tabs
  -config=<path>    Path to an HCL configuration file
`
}

func (c *GetCommand) Run(args []string) int {
	var (
		id   string
		tabs bool
	)

	f := c.FlagSet("docs get")
	f.StringVar(&id, "id", "", "")
	f.BoolVar(&tabs, "tabs", false, "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if id == "" {
		return c.Error(fmt.Errorf("-id is required"))
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := docs.New(client).GetDocument(context.Background(), id, tabs)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// ListCommand searches documents.
type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "Search Google Docs"
}

func (c *ListCommand) Help() string {
	return `Usage: praixy docs list [options]

  Searches documents with the q parameter.

Options:
  -q=<query>        Search query
  -config=<path>    Path to an HCL configuration file
`
}

func (c *ListCommand) Run(args []string) int {
	var query string

	f := c.FlagSet("docs list")
	f.StringVar(&query, "q", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := docs.New(client).ListDocuments(context.Background(), query)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}
