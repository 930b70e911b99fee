package generate

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/internal/config"
	"github.com/hashicorp-forge/oid/pkg/database"
	"github.com/hashicorp-forge/oid/pkg/models"
	"github.com/hashicorp-forge/oid/pkg/oid"
)

type Command struct {
	*base.Command

	flagConfig string
	flagPrefix string
	flagKind   string
	flagV7     bool
	flagAt     string
	flagCount  int
	flagRecord bool
	flagNote   string
}

func (c *Command) Synopsis() string {
	return "Generate new identifiers"
}

func (c *Command) Help() string {
	return `Usage: oid generate -prefix=<prefix> [options]
       oid generate -kind=<kind> -config=<file> [options]

  Generate one or more identifiers of the form PREFIX-VALUE, where VALUE is
  the base32hex encoding of a new UUID. The prefix is either given directly
  or taken from a kind in the configuration file.

  Identifiers can be recorded in the ledger database with -record.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("generate", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the oid config `file`.",
	)
	f.StringVar(
		&c.flagPrefix, "prefix", "", "Identifier `prefix` (0-9, A-Z, a-z).",
	)
	f.StringVar(
		&c.flagKind, "kind", "", "Configured `kind` to generate identifiers for.",
	)
	f.BoolVar(
		&c.flagV7, "v7", false, "Use time-ordered version 7 UUIDs.",
	)
	f.StringVar(
		&c.flagAt, "at", "",
		"Embed this `time` in version 7 UUIDs instead of the current time.\n"+
			"Most date formats are accepted. Implies -v7.",
	)
	f.IntVar(
		&c.flagCount, "n", 1, "Number of identifiers to generate.",
	)
	f.BoolVar(
		&c.flagRecord, "record", false, "Record generated identifiers in the ledger.",
	)
	f.StringVar(
		&c.flagNote, "note", "", "Note stored with recorded identifiers.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Validate flags.
	if (c.flagPrefix == "") == (c.flagKind == "") {
		ui.Error("exactly one of -prefix or -kind is required")
		return 1
	}
	if c.flagKind != "" && c.flagConfig == "" {
		ui.Error("-kind requires -config")
		return 1
	}
	if c.flagCount < 1 {
		ui.Error("-n must be at least 1")
		return 1
	}

	version := oid.V4
	if c.flagV7 {
		version = oid.V7
	}
	var at time.Time
	if c.flagAt != "" {
		var err error
		at, err = dateparse.ParseAny(c.flagAt)
		if err != nil {
			ui.Error(fmt.Sprintf("error parsing -at: %v", err))
			return 1
		}
		version = oid.V7
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error parsing config file: %v", err))
		return 1
	}

	// Resolve the prefix.
	var prefix oid.Prefix
	kindName := ""
	if c.flagKind != "" {
		reg, err := cfg.Registry()
		if err != nil {
			ui.Error(fmt.Sprintf("error building kind registry: %v", err))
			return 1
		}
		k, ok := reg.Kind(c.flagKind)
		if !ok {
			ui.Error(fmt.Sprintf("unknown kind %q", c.flagKind))
			return 1
		}
		prefix, kindName = k.Prefix, k.Name
	} else {
		prefix, err = oid.NewPrefix(c.flagPrefix)
		if err != nil {
			ui.Error(fmt.Sprintf("invalid prefix %q: %v", c.flagPrefix, err))
			return 1
		}
	}

	ids := make([]oid.DynamicID, 0, c.flagCount)
	for i := 0; i < c.flagCount; i++ {
		u, err := oid.NewUUID(version, at)
		if err != nil {
			ui.Error(fmt.Sprintf("error generating UUID: %v", err))
			return 1
		}
		ids = append(ids, oid.DynamicFromParts(prefix, u))
	}
	logger.Debug("generated identifiers",
		"prefix", prefix.String(),
		"version", version.String(),
		"count", len(ids),
	)

	if c.flagRecord {
		if err := c.record(cfg, ids, kindName, version); err != nil {
			ui.Error(fmt.Sprintf("error recording identifiers: %v", err))
			return 1
		}
	}

	for _, id := range ids {
		ui.Output(id.String())
	}
	return 0
}

func (c *Command) record(
	cfg *config.Config, ids []oid.DynamicID, kind string, version oid.Version,
) error {
	ctx := context.Background()

	db, err := c.OpenLedger(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	return db.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			issued := &models.IssuedID{
				OID:         id,
				Kind:        kind,
				UUIDVersion: int(version),
				Note:        c.flagNote,
			}
			if err := issued.Create(tx); err != nil {
				return fmt.Errorf("error recording %s: %w", id, err)
			}
		}
		c.Log.Info("recorded identifiers", "count", len(ids), "kind", kind)
		return nil
	})
}
