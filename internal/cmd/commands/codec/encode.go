package codec

import (
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/pkg/oid"
)

type EncodeCommand struct {
	*base.Command

	flagPrefix string
}

func (c *EncodeCommand) Synopsis() string {
	return "Encode UUIDs as base32hex identifier values"
}

func (c *EncodeCommand) Help() string {
	return `Usage: oid encode [options] [--] <uuid>...

  Encode standard UUIDs ("b3cfdafa-3fec-41e2-82bf-ff881131abf1") as 26
  character base32hex values. With -prefix, full identifiers are printed.

  Arguments starting with "-" are read as options. Put them after "--".` +
		c.Flags().Help()
}

func (c *EncodeCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("encode", flag.ContinueOnError))

	f.StringVar(
		&c.flagPrefix, "prefix", "", "Print identifiers with this `prefix`.",
	)

	return f
}

func (c *EncodeCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	args = flags.Args()
	if len(args) == 0 {
		ui.Error("at least one UUID is required")
		return 1
	}

	var prefix oid.Prefix
	if c.flagPrefix != "" {
		var err error
		if prefix, err = oid.NewPrefix(c.flagPrefix); err != nil {
			ui.Error(fmt.Sprintf("invalid prefix %q: %v", c.flagPrefix, err))
			return 1
		}
	}

	exitCode := 0
	for _, arg := range args {
		u, err := uuid.Parse(arg)
		if err != nil {
			ui.Error(fmt.Sprintf("error parsing UUID %q: %v", arg, err))
			exitCode = 1
			continue
		}
		if prefix.IsZero() {
			ui.Output(oid.EncodeUUID(u))
		} else {
			ui.Output(oid.DynamicFromParts(prefix, u).String())
		}
	}
	return exitCode
}
