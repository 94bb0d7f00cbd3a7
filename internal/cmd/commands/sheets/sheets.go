// Package sheets implements the praixy sheets CLI commands.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	"github.com/marshal-labs/praixy/pkg/praixy/sheets"
)

// GetCommand fetches spreadsheet metadata.
type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Fetch Google Sheets spreadsheet metadata"
}

func (c *GetCommand) Help() string {
	return `Usage: praixy sheets get -id=<spreadsheet-id> [options]

  Fetches spreadsheet metadata: sheet names, dimensions, properties.

Options:
  -id=<id>          Spreadsheet ID (required)
  -fields=<fields>  Response field selector
  -config=<path>    Path to an HCL configuration file
`
}

func (c *GetCommand) Run(args []string) int {
	var id, fields string

	f := c.FlagSet("sheets get")
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

	body, err := sheets.New(client).GetSpreadsheet(context.Background(), id, fields)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// ValuesCommand reads one range of cell values.
type ValuesCommand struct {
	*base.Command
}

func (c *ValuesCommand) Synopsis() string {
	return "Read cell values from a spreadsheet range"
}

func (c *ValuesCommand) Help() string {
	return `Usage: praixy sheets values -id=<spreadsheet-id> -range=<a1> [options]

  Reads one range in A1 notation.

  Examples:
    praixy sheets values -id=SHEET_ID -range="Sheet1!A1:D10"
    praixy sheets values -id=SHEET_ID -range="Budget!B:B" -render=UNFORMATTED_VALUE

Options:
  -id=<id>          Spreadsheet ID (required)
  -range=<a1>       Range in A1 notation (required)
  -render=<r>       FORMATTED_VALUE, UNFORMATTED_VALUE, or FORMULA
  -dimension=<d>    ROWS or COLUMNS
  -config=<path>    Path to an HCL configuration file
`
}

func (c *ValuesCommand) Run(args []string) int {
	var (
		id   string
		rng  string
		opts sheets.ValueOptions
	)

	f := c.FlagSet("sheets values")
	f.StringVar(&id, "id", "", "")
	f.StringVar(&rng, "range", "", "")
	f.StringVar(&opts.ValueRenderOption, "render", "", "")
	f.StringVar(&opts.MajorDimension, "dimension", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if id == "" || rng == "" {
		return c.Error(fmt.Errorf("-id and -range are required"))
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := sheets.New(client).GetValues(context.Background(), id, rng, opts)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// BatchCommand reads several ranges in one request.
type BatchCommand struct {
	*base.Command
}

func (c *BatchCommand) Synopsis() string {
	return "Read several spreadsheet ranges at once"
}

func (c *BatchCommand) Help() string {
	return `Usage: praixy sheets batch -id=<spreadsheet-id> -ranges=<a1;a1;...> [options]

  Reads several ranges in one values:batchGet request. Ranges are
  semicolon-separated because A1 notation uses commas.

Options:
  -id=<id>          Spreadsheet ID (required)
  -ranges=<list>    Semicolon-separated ranges (required)
  -render=<r>       FORMATTED_VALUE, UNFORMATTED_VALUE, or FORMULA
  -dimension=<d>    ROWS or COLUMNS
  -config=<path>    Path to an HCL configuration file
`
}

func (c *BatchCommand) Run(args []string) int {
	var (
		id     string
		ranges string
		opts   sheets.ValueOptions
	)

	f := c.FlagSet("sheets batch")
	f.StringVar(&id, "id", "", "")
	f.StringVar(&ranges, "ranges", "", "")
	f.StringVar(&opts.ValueRenderOption, "render", "", "")
	f.StringVar(&opts.MajorDimension, "dimension", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if id == "" || ranges == "" {
		return c.Error(fmt.Errorf("-id and -ranges are required"))
	}

	var rangeList []string
	for _, r := range strings.Split(ranges, ";") {
		if r = strings.TrimSpace(r); r != "" {
			rangeList = append(rangeList, r)
		}
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := sheets.New(client).BatchGetValues(context.Background(), id, rangeList, opts)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}
