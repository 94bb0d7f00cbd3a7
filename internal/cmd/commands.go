package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/marshal-labs/praixy/internal/cmd/base"
	calendarcmd "github.com/marshal-labs/praixy/internal/cmd/commands/calendar"
	crmcmd "github.com/marshal-labs/praixy/internal/cmd/commands/crm"
	docscmd "github.com/marshal-labs/praixy/internal/cmd/commands/docs"
	drivecmd "github.com/marshal-labs/praixy/internal/cmd/commands/drive"
	gmailcmd "github.com/marshal-labs/praixy/internal/cmd/commands/gmail"
	sheetscmd "github.com/marshal-labs/praixy/internal/cmd/commands/sheets"
	slackcmd "github.com/marshal-labs/praixy/internal/cmd/commands/slack"
	versioncmd "github.com/marshal-labs/praixy/internal/cmd/commands/version"
)

// Commands is the mapping of all available praixy commands.
var Commands map[string]cli.CommandFactory

// initCommands populates the Commands map.
func initCommands(log hclog.Logger, ui cli.Ui) {
	b := func() *base.Command {
		return base.NewCommand(log, ui)
	}

	Commands = map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b()}, nil
		},

		"gmail search": func() (cli.Command, error) {
			return &gmailcmd.SearchCommand{Command: b()}, nil
		},
		"gmail message": func() (cli.Command, error) {
			return &gmailcmd.MessageCommand{Command: b()}, nil
		},
		"gmail thread": func() (cli.Command, error) {
			return &gmailcmd.ThreadCommand{Command: b()}, nil
		},
		"gmail labels": func() (cli.Command, error) {
			return &gmailcmd.LabelsCommand{Command: b()}, nil
		},
		"gmail batch": func() (cli.Command, error) {
			return &gmailcmd.BatchCommand{Command: b()}, nil
		},

		"crm query": func() (cli.Command, error) {
			return &crmcmd.QueryCommand{Command: b()}, nil
		},
		"crm schema": func() (cli.Command, error) {
			return &crmcmd.SchemaCommand{Command: b()}, nil
		},

		"drive list": func() (cli.Command, error) {
			return &drivecmd.ListCommand{Command: b()}, nil
		},
		"drive get": func() (cli.Command, error) {
			return &drivecmd.GetCommand{Command: b()}, nil
		},
		"drive drives": func() (cli.Command, error) {
			return &drivecmd.DrivesCommand{Command: b()}, nil
		},

		"docs get": func() (cli.Command, error) {
			return &docscmd.GetCommand{Command: b()}, nil
		},
		"docs list": func() (cli.Command, error) {
			return &docscmd.ListCommand{Command: b()}, nil
		},

		"sheets get": func() (cli.Command, error) {
			return &sheetscmd.GetCommand{Command: b()}, nil
		},
		"sheets values": func() (cli.Command, error) {
			return &sheetscmd.ValuesCommand{Command: b()}, nil
		},
		"sheets batch": func() (cli.Command, error) {
			return &sheetscmd.BatchCommand{Command: b()}, nil
		},

		"slack search": func() (cli.Command, error) {
			return &slackcmd.SearchCommand{Command: b()}, nil
		},
		"slack channels": func() (cli.Command, error) {
			return &slackcmd.ChannelsCommand{Command: b()}, nil
		},
		"slack history": func() (cli.Command, error) {
			return &slackcmd.HistoryCommand{Command: b()}, nil
		},
		"slack replies": func() (cli.Command, error) {
			return &slackcmd.RepliesCommand{Command: b()}, nil
		},
		"slack user": func() (cli.Command, error) {
			return &slackcmd.UserCommand{Command: b()}, nil
		},
		"slack users": func() (cli.Command, error) {
			return &slackcmd.UsersCommand{Command: b()}, nil
		},
		"slack dm": func() (cli.Command, error) {
			return &slackcmd.DMCommand{Command: b()}, nil
		},

		"calendar list": func() (cli.Command, error) {
			return &calendarcmd.ListCommand{Command: b()}, nil
		},
		"calendar events": func() (cli.Command, error) {
			return &calendarcmd.EventsCommand{Command: b()}, nil
		},
		"calendar event": func() (cli.Command, error) {
			return &calendarcmd.EventCommand{Command: b()}, nil
		},
	}
}
