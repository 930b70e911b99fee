package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/internal/cmd/commands/codec"
	"github.com/hashicorp-forge/oid/internal/cmd/commands/generate"
	"github.com/hashicorp-forge/oid/internal/cmd/commands/history"
	"github.com/hashicorp-forge/oid/internal/cmd/commands/kinds"
	"github.com/hashicorp-forge/oid/internal/cmd/commands/parse"
	"github.com/hashicorp-forge/oid/internal/cmd/commands/record"
	"github.com/hashicorp-forge/oid/internal/cmd/commands/version"
)

// Commands is the mapping of all available oid commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return &generate.Command{Command: b}, nil
		},
		"parse": func() (cli.Command, error) {
			return &parse.Command{Command: b}, nil
		},
		"encode": func() (cli.Command, error) {
			return &codec.EncodeCommand{Command: b}, nil
		},
		"decode": func() (cli.Command, error) {
			return &codec.DecodeCommand{Command: b}, nil
		},
		"record": func() (cli.Command, error) {
			return &record.Command{Command: b}, nil
		},
		"kinds": func() (cli.Command, error) {
			return &kinds.Command{Command: b}, nil
		},
		"history": func() (cli.Command, error) {
			return &history.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
