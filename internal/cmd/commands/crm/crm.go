// Package crm implements the praixy crm CLI commands.
package crm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	"github.com/marshal-labs/praixy/pkg/praixy/crm"
)

// QueryCommand runs a GraphQL query against the CRM.
type QueryCommand struct {
	*base.Command
}

func (c *QueryCommand) Synopsis() string {
	return "Run a CRM GraphQL query"
}

func (c *QueryCommand) Help() string {
	return `Usage: praixy crm query -query=<graphql> [options]
       praixy crm query -file=<path> [options]

  Runs a GraphQL query over POST and prints the proxy's JSON response.
  Variables are passed as repeated -var flags.

  Examples:
    praixy crm query -query='query { contacts(limit: 5) { id firstName } }'
    praixy crm query -file=contacts.graphql -var=limit=5

Options:
  -query=<graphql>  Query string
  -file=<path>      Read the query from a file instead
  -var=<k=v>        Query variable (repeatable; values parsed as JSON when
                    possible, otherwise treated as strings)
  -config=<path>    Path to an HCL configuration file
`
}

// varFlags collects repeated -var=key=value flags.
type varFlags map[string]interface{}

func (v varFlags) String() string { return "" }

func (v varFlags) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", s)
	}

	// Numbers, booleans and JSON structures pass through as typed values;
	// anything else is a plain string.
	var parsed interface{}
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		parsed = value
	}
	v[key] = parsed
	return nil
}

func (c *QueryCommand) Run(args []string) int {
	var (
		query string
		file  string
		vars  = varFlags{}
	)

	f := c.FlagSet("crm query")
	f.StringVar(&query, "query", "", "")
	f.StringVar(&file, "file", "", "")
	f.Var(vars, "var", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	if query == "" && file == "" {
		return c.Error(fmt.Errorf("one of -query or -file is required"))
	}
	if file != "" {
		contents, err := os.ReadFile(file)
		if err != nil {
			return c.Error(err)
		}
		query = string(contents)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	var variables map[string]interface{}
	if len(vars) > 0 {
		variables = vars
	}

	body, err := crm.New(client).QueryRaw(context.Background(), query, variables)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// SchemaCommand fetches the CRM GraphQL schema.
type SchemaCommand struct {
	*base.Command
}

func (c *SchemaCommand) Synopsis() string {
	return "Fetch the CRM GraphQL schema"
}

func (c *SchemaCommand) Help() string {
	return `Usage: praixy crm schema

  Fetches the CRM GraphQL schema document, useful for discovering object
  types and fields before writing queries.

Options:
  -config=<path>    Path to an HCL configuration file
`
}

func (c *SchemaCommand) Run(args []string) int {
	f := c.FlagSet("crm schema")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := crm.New(client).Schema(context.Background())
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}
