// Package drive implements the praixy drive CLI commands.
package drive

import (
	"context"
	"fmt"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	"github.com/marshal-labs/praixy/pkg/praixy/drive"
)

// ListCommand searches Drive files.
type ListCommand struct {
	*base.Command
}

func (c *ListCommand) Synopsis() string {
	return "Search Google Drive files"
}

func (c *ListCommand) Help() string {
	return `Usage: praixy drive list [options]

  Searches file metadata with Drive query syntax and prints the proxy's
  JSON response.

  Examples:
    praixy drive list -q="name contains 'Q3 report'"
    praixy drive list -q="mimeType = 'application/pdf'" -order-by="modifiedTime desc"

Options:
  -q=<query>        Drive search query
  -fields=<fields>  Response field selector, e.g. "files(id,name)"
  -max=<n>          Page size
  -page-token=<t>   Page token from a previous response
  -order-by=<o>     Sort order, e.g. "modifiedTime desc"
  -shared-drives    Include items from shared drives
  -config=<path>    Path to an HCL configuration file
`
}

func (c *ListCommand) Run(args []string) int {
	var opts drive.ListFilesOptions

	f := c.FlagSet("drive list")
	f.StringVar(&opts.Query, "q", "", "")
	f.StringVar(&opts.Fields, "fields", "", "")
	f.IntVar(&opts.PageSize, "max", 0, "")
	f.StringVar(&opts.PageToken, "page-token", "", "")
	f.StringVar(&opts.OrderBy, "order-by", "", "")
	f.BoolVar(&opts.IncludeSharedDrives, "shared-drives", false, "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := drive.New(client).ListFiles(context.Background(), opts)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// GetCommand fetches one file's metadata.
type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Fetch Google Drive file metadata"
}

func (c *GetCommand) Help() string {
	return `Usage: praixy drive get -id=<file-id> [options]

  Fetches metadata for one file.

Options:
  -id=<id>          File ID (required)
  -fields=<fields>  Response field selector
  -config=<path>    Path to an HCL configuration file
`
}

func (c *GetCommand) Run(args []string) int {
	var id, fields string

	f := c.FlagSet("drive get")
	f.StringVar(&id, "id", "", "")
	f.StringVar(&fields, "fields", "", "")
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

	body, err := drive.New(client).GetFile(context.Background(), id, fields)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// DrivesCommand lists shared drives.
type DrivesCommand struct {
	*base.Command
}

func (c *DrivesCommand) Synopsis() string {
	return "List shared drives"
}

func (c *DrivesCommand) Help() string {
	return `Usage: praixy drive drives [options]

  Lists the shared drives visible to the account.

Options:
  -max=<n>          Page size
  -page-token=<t>   Page token from a previous response
  -config=<path>    Path to an HCL configuration file
`
}

func (c *DrivesCommand) Run(args []string) int {
	var (
		max       int
		pageToken string
	)

	f := c.FlagSet("drive drives")
	f.IntVar(&max, "max", 0, "")
	f.StringVar(&pageToken, "page-token", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := drive.New(client).ListDrives(context.Background(), max, pageToken)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}
