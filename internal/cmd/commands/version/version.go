package version

import (
	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: oid version

  Print the version of this binary.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("oid " + version.FullVersion())
	return 0
}
