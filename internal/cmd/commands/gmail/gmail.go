// Package gmail implements the praixy gmail CLI commands.
package gmail

import (
	"context"
	"fmt"
	"strings"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	"github.com/marshal-labs/praixy/pkg/praixy/gmail"
)

// SearchCommand lists messages matching a Gmail query.
type SearchCommand struct {
	*base.Command
}

func (c *SearchCommand) Synopsis() string {
	return "Search Gmail messages"
}

func (c *SearchCommand) Help() string {
	return `Usage: praixy gmail search -q=<query> [options]

  Searches messages with Gmail search syntax and prints the proxy's JSON
  response.

  Examples:
    praixy gmail search -q="from:alice after:2026/08/01"
    praixy gmail search -q="subject:(launch plan) has:attachment" -max=25

Options:
  -q=<query>        Gmail search query (required)
  -max=<n>          Maximum results to return
  -page-token=<t>   Page token from a previous response
  -threads          Search threads instead of messages
  -simple           Use the gmail-simple surface (pre-decoded JSON)
  -config=<path>    Path to an HCL configuration file
`
}

func (c *SearchCommand) Run(args []string) int {
	var (
		query     string
		max       int
		pageToken string
		threads   bool
		simple    bool
	)

	f := c.FlagSet("gmail search")
	f.StringVar(&query, "q", "", "")
	f.IntVar(&max, "max", 0, "")
	f.StringVar(&pageToken, "page-token", "", "")
	f.BoolVar(&threads, "threads", false, "")
	f.BoolVar(&simple, "simple", false, "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if query == "" {
		return c.Error(fmt.Errorf("-q is required"))
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	gm := gmail.New(client)
	opts := gmail.ListOptions{Query: query, MaxResults: max, PageToken: pageToken}

	var body []byte
	switch {
	case threads:
		body, err = gm.ListThreads(context.Background(), opts)
	case simple:
		body, err = gm.ListSimpleMessages(context.Background(), opts)
	default:
		body, err = gm.ListMessages(context.Background(), opts)
	}
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// MessageCommand fetches a single message.
type MessageCommand struct {
	*base.Command
}

func (c *MessageCommand) Synopsis() string {
	return "Fetch a Gmail message by ID"
}

func (c *MessageCommand) Help() string {
	return `Usage: praixy gmail message -id=<message-id> [options]

  Fetches one message and prints the proxy's JSON response.

Options:
  -id=<id>          Message ID (required)
  -format=<f>       Raw surface format: full, metadata, minimal, raw
  -simple           Use the gmail-simple surface (pre-decoded JSON)
  -config=<path>    Path to an HCL configuration file
`
}

func (c *MessageCommand) Run(args []string) int {
	var (
		id     string
		format string
		simple bool
	)

	f := c.FlagSet("gmail message")
	f.StringVar(&id, "id", "", "")
	f.StringVar(&format, "format", "", "")
	f.BoolVar(&simple, "simple", false, "")
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

	gm := gmail.New(client)

	var body []byte
	if simple {
		body, err = gm.GetSimpleMessage(context.Background(), id)
	} else {
		body, err = gm.GetMessage(context.Background(), id, format)
	}
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// ThreadCommand fetches a whole thread.
type ThreadCommand struct {
	*base.Command
}

func (c *ThreadCommand) Synopsis() string {
	return "Fetch a Gmail thread by ID"
}

func (c *ThreadCommand) Help() string {
	return `Usage: praixy gmail thread -id=<thread-id>

  Fetches a whole thread and prints the proxy's JSON response.

Options:
  -id=<id>          Thread ID (required)
  -config=<path>    Path to an HCL configuration file
`
}

func (c *ThreadCommand) Run(args []string) int {
	var id string

	f := c.FlagSet("gmail thread")
	f.StringVar(&id, "id", "", "")
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

	body, err := gmail.New(client).GetThread(context.Background(), id)
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// LabelsCommand lists the account's labels.
type LabelsCommand struct {
	*base.Command
}

func (c *LabelsCommand) Synopsis() string {
	return "List Gmail labels"
}

func (c *LabelsCommand) Help() string {
	return `Usage: praixy gmail labels

  Lists the account's labels from the gmail-simple surface.

Options:
  -config=<path>    Path to an HCL configuration file
`
}

func (c *LabelsCommand) Run(args []string) int {
	f := c.FlagSet("gmail labels")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	body, err := gmail.New(client).ListLabels(context.Background())
	if err != nil {
		return c.Error(err)
	}

	return c.Output(body)
}

// BatchCommand fetches many messages by ID, chunking past the per-request
// limit.
type BatchCommand struct {
	*base.Command
}

func (c *BatchCommand) Synopsis() string {
	return "Fetch many Gmail messages by ID"
}

func (c *BatchCommand) Help() string {
	return fmt.Sprintf(`Usage: praixy gmail batch -ids=<id,id,...>

  Fetches pre-decoded messages from the gmail-simple surface. More than %d
  IDs are split into multiple concurrent batch requests; each batch
  response is printed on its own line.

Options:
  -ids=<csv>        Comma-separated message IDs (required)
  -config=<path>    Path to an HCL configuration file
`, gmail.MaxBatchIDs)
}

func (c *BatchCommand) Run(args []string) int {
	var ids string

	f := c.FlagSet("gmail batch")
	f.StringVar(&ids, "ids", "", "")
	if err := f.Parse(args); err != nil {
		return c.Error(err)
	}
	if ids == "" {
		return c.Error(fmt.Errorf("-ids is required"))
	}

	client, err := c.Client()
	if err != nil {
		return c.Error(err)
	}

	var idList []string
	for _, id := range strings.Split(ids, ",") {
		if id = strings.TrimSpace(id); id != "" {
			idList = append(idList, id)
		}
	}

	batches, err := gmail.New(client).GetSimpleMessagesAll(context.Background(), idList)
	for _, b := range batches {
		c.Output(b)
	}
	if err != nil {
		return c.Error(err)
	}

	return 0
}
