package codec

import (
	"flag"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/pkg/oid"
)

type DecodeCommand struct {
	*base.Command
}

func (c *DecodeCommand) Synopsis() string {
	return "Decode identifier values to UUIDs"
}

func (c *DecodeCommand) Help() string {
	return `Usage: oid decode [--] <value>...

  Decode 26 character base32hex values, or full PREFIX-VALUE identifiers,
  and print the standard UUID form.

  Arguments starting with "-" are read as options. Put them after "--".` +
		c.Flags().Help()
}

func (c *DecodeCommand) Flags() *base.FlagSet {
	return base.NewFlagSet(
		flag.NewFlagSet("decode", flag.ContinueOnError))
}

func (c *DecodeCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	args = flags.Args()
	if len(args) == 0 {
		ui.Error("at least one value is required")
		return 1
	}

	exitCode := 0
	for _, arg := range args {
		var (
			u   uuid.UUID
			err error
		)
		if strings.Contains(arg, oid.Separator) {
			var id oid.DynamicID
			id, err = oid.ParseDynamic(arg)
			u = id.UUID()
		} else {
			u, err = oid.DecodeUUID(arg)
		}
		if err != nil {
			ui.Error(fmt.Sprintf("error decoding %q: %v", arg, err))
			exitCode = 1
			continue
		}
		ui.Output(u.String())
	}
	return exitCode
}
