// Package version implements the praixy version command.
package version

import (
	"fmt"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	"github.com/marshal-labs/praixy/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the praixy version"
}

func (c *Command) Help() string {
	return `Usage: praixy version

  Prints the CLI version.
`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("praixy %s", version.Version))
	return 0
}
