package history

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/pkg/database"
	"github.com/hashicorp-forge/oid/pkg/models"
)

type Command struct {
	*base.Command

	flagConfig string
	flagKind   string
	flagLimit  int
}

func (c *Command) Synopsis() string {
	return "List recorded identifiers"
}

func (c *Command) Help() string {
	return `Usage: oid history [options]

  List identifiers recorded in the ledger with "oid generate -record",
  newest first.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("history", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the oid config `file`.",
	)
	f.StringVar(
		&c.flagKind, "kind", "", "Only list identifiers of this `kind`.",
	)
	f.IntVar(
		&c.flagLimit, "limit", 20, "Maximum number of entries. Zero lists all.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagLimit < 0 {
		ui.Error("-limit must not be negative")
		return 1
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}

	db, err := c.OpenLedger(context.Background(), cfg)
	if err != nil {
		ui.Error(fmt.Sprintf("error opening ledger: %v", err))
		return 1
	}
	defer func() { _ = database.Close(db) }()

	ids, err := models.FindIssuedIDs(db, c.flagKind, c.flagLimit)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	if stats, err := database.GetPoolStats(db); err == nil {
		logger.Debug("ledger pool stats",
			"open_connections", stats.OpenConnections,
			"in_use", stats.InUse,
			"idle", stats.Idle,
		)
	}

	if len(ids) == 0 {
		ui.Info("No identifiers recorded")
		return 0
	}
	for _, id := range ids {
		line := fmt.Sprintf("%s  %s", id.CreatedAt.UTC().Format(time.RFC3339), id.OID)
		if id.Kind != "" {
			line += "  " + id.Kind
		}
		if id.Note != "" {
			line += "  " + id.Note
		}
		ui.Output(line)
	}
	return 0
}
