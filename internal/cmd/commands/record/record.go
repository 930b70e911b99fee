package record

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/pkg/oid"
)

type Command struct {
	*base.Command

	flagConfig string
	flagTable  string
	flagID     string
	flagDoc    string
	flagToDoc  bool
}

func (c *Command) Synopsis() string {
	return "Convert between document-store records and identifiers"
}

func (c *Command) Help() string {
	return `Usage: oid record -table=<table> -id=<id> [options]
       oid record -doc='{"tb":"user","id":"..."}' [options]
       oid record -to-doc <id>

  Convert a document-store record (a table name and an id) to an
  identifier. The id may be a standard UUID or a base32hex value.

  With -config, the table must be a configured kind's prefix or alias and
  the identifier uses the kind's canonical prefix. Without it, the table
  name is used as the prefix.

  With -to-doc, identifiers are converted to record documents instead.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("record", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the oid config `file`.",
	)
	f.StringVar(
		&c.flagTable, "table", "", "Record `table` name.",
	)
	f.StringVar(
		&c.flagID, "id", "", "Record `id`.",
	)
	f.StringVar(
		&c.flagDoc, "doc", "", "Record as a JSON `document` with \"tb\" and \"id\" keys.",
	)
	f.BoolVar(
		&c.flagToDoc, "to-doc", false, "Convert identifier arguments to JSON record documents.",
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

	if c.flagToDoc {
		return c.toDoc(flags.Args())
	}

	var rec oid.Record
	switch {
	case c.flagDoc != "" && (c.flagTable != "" || c.flagID != ""):
		ui.Error("-doc cannot be combined with -table or -id")
		return 1
	case c.flagDoc != "":
		var doc map[string]any
		if err := json.Unmarshal([]byte(c.flagDoc), &doc); err != nil {
			ui.Error(fmt.Sprintf("error parsing -doc: %v", err))
			return 1
		}
		var err error
		if rec, err = oid.DecodeRecord(doc); err != nil {
			ui.Error(err.Error())
			return 1
		}
	case c.flagTable != "" && c.flagID != "":
		rec = oid.Record{Table: c.flagTable, ID: c.flagID}
	default:
		ui.Error("-table and -id, or -doc, are required")
		return 1
	}

	var (
		id  oid.DynamicID
		err error
	)
	if c.flagConfig != "" {
		cfg, cerr := c.LoadConfig(c.flagConfig)
		if cerr != nil {
			ui.Error(fmt.Sprintf("error parsing config file: %v", cerr))
			return 1
		}
		reg, rerr := cfg.Registry()
		if rerr != nil {
			ui.Error(fmt.Sprintf("error building kind registry: %v", rerr))
			return 1
		}
		id, _, err = reg.FromRecord(rec)
	} else {
		id, err = oid.DynamicFromRecord(rec)
	}
	if err != nil {
		ui.Error(fmt.Sprintf("error converting record %s: %v", rec, err))
		return 1
	}

	ui.Output(id.String())
	return 0
}

func (c *Command) toDoc(args []string) int {
	ui := c.UI
	if len(args) == 0 {
		ui.Error("at least one identifier is required")
		return 1
	}

	exitCode := 0
	for _, arg := range args {
		id, err := oid.ParseDynamic(arg)
		if err != nil {
			ui.Error(fmt.Sprintf("error parsing %q: %v", arg, err))
			exitCode = 1
			continue
		}
		b, err := json.Marshal(id.Record())
		if err != nil {
			ui.Error(fmt.Sprintf("error encoding record: %v", err))
			return 1
		}
		ui.Output(string(b))
	}
	return exitCode
}
