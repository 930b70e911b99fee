package kinds

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagConfig string
}

func (c *Command) Synopsis() string {
	return "List configured kinds"
}

func (c *Command) Help() string {
	return `Usage: oid kinds -config=<file>

  List the kinds defined in the configuration file with their canonical
  prefix and aliases.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("kinds", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to the oid config `file`.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagConfig == "" {
		ui.Error("config flag is required")
		return 1
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}
	reg, err := cfg.Registry()
	if err != nil {
		ui.Error(fmt.Sprintf("error building kind registry: %v", err))
		return 1
	}

	kinds := reg.Kinds()
	if len(kinds) == 0 {
		ui.Warn("No kinds configured")
		return 0
	}

	for _, k := range kinds {
		line := fmt.Sprintf("%-20s %s", k.Name, k.Prefix)
		if len(k.Aliases) > 0 {
			line += fmt.Sprintf(" (aliases: %s)", strings.Join(k.Aliases, ", "))
		}
		if k.Description != "" {
			line += " - " + k.Description
		}
		ui.Output(line)
	}
	return 0
}
