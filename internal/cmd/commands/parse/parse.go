package parse

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/oid/internal/cmd/base"
	"github.com/hashicorp-forge/oid/pkg/oid"
	"github.com/hashicorp-forge/oid/pkg/registry"
)

type Command struct {
	*base.Command

	flagConfig string
	flagFormat string
}

// Description is the parsed form of an identifier.
type Description struct {
	ID      string `json:"id" yaml:"id"`
	Prefix  string `json:"prefix" yaml:"prefix"`
	Value   string `json:"value" yaml:"value"`
	UUID    string `json:"uuid" yaml:"uuid"`
	Version int    `json:"version" yaml:"version"`
	Time    string `json:"time,omitempty" yaml:"time,omitempty"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

func (c *Command) Synopsis() string {
	return "Parse identifiers and show their parts"
}

func (c *Command) Help() string {
	return `Usage: oid parse [options] [--] <id>...

  Parse identifiers of the form PREFIX-VALUE and print the prefix, the
  encoded value, the UUID and its version. Version 7 UUIDs also show their
  embedded time.

  With -config, prefixes are resolved against the configured kinds and
  aliases are replaced by the canonical prefix.

  Arguments starting with "-" are read as options. Put them after "--".` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("parse", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to the oid config `file`.",
	)
	f.StringVar(
		&c.flagFormat, "format", "text", "Output `format`: text, json or yaml.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	args = flags.Args()

	if len(args) == 0 {
		ui.Error("at least one identifier is required")
		return 1
	}
	switch c.flagFormat {
	case "text", "json", "yaml":
	default:
		ui.Error(fmt.Sprintf("unsupported format %q", c.flagFormat))
		return 1
	}

	var reg *registry.Registry
	if c.flagConfig != "" {
		cfg, err := c.LoadConfig(c.flagConfig)
		if err != nil {
			ui.Error(fmt.Sprintf("error parsing config file: %v", err))
			return 1
		}
		if reg, err = cfg.Registry(); err != nil {
			ui.Error(fmt.Sprintf("error building kind registry: %v", err))
			return 1
		}
	}

	exitCode := 0
	descs := make([]Description, 0, len(args))
	for _, arg := range args {
		d, err := c.describe(reg, arg)
		if err != nil {
			ui.Error(fmt.Sprintf("error parsing %q: %v", arg, err))
			exitCode = 1
			continue
		}
		descs = append(descs, d)
	}

	out, err := format(c.flagFormat, descs)
	if err != nil {
		ui.Error(fmt.Sprintf("error formatting output: %v", err))
		return 1
	}
	if out != "" {
		ui.Output(out)
	}
	return exitCode
}

func (c *Command) describe(reg *registry.Registry, s string) (Description, error) {
	var (
		id   oid.DynamicID
		kind string
		err  error
	)
	if reg != nil {
		var k *registry.Kind
		id, k, err = reg.Parse(s)
		if k != nil {
			kind = k.Name
		}
	} else {
		id, err = oid.ParseDynamic(s)
	}
	if err != nil {
		return Description{}, err
	}

	return Describe(id, kind), nil
}

// Describe breaks id into its parts.
func Describe(id oid.DynamicID, kind string) Description {
	u := id.UUID()
	d := Description{
		ID:      id.String(),
		Prefix:  id.Prefix().String(),
		Value:   id.Base32(),
		UUID:    u.String(),
		Version: int(u.Version()),
		Kind:    kind,
	}
	if u.Version() == 7 {
		var ms int64
		for _, b := range u[:6] {
			ms = ms<<8 | int64(b)
		}
		d.Time = time.UnixMilli(ms).UTC().Format(time.RFC3339Nano)
	}
	return d
}

func format(f string, descs []Description) (string, error) {
	if len(descs) == 0 {
		return "", nil
	}

	switch f {
	case "json":
		b, err := json.MarshalIndent(descs, "", "  ")
		return string(b), err
	case "yaml":
		b, err := yaml.Marshal(descs)
		return strings.TrimRight(string(b), "\n"), err
	default:
		var b strings.Builder
		for i, d := range descs {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "id:      %s\n", d.ID)
			fmt.Fprintf(&b, "prefix:  %s\n", d.Prefix)
			fmt.Fprintf(&b, "value:   %s\n", d.Value)
			fmt.Fprintf(&b, "uuid:    %s\n", d.UUID)
			fmt.Fprintf(&b, "version: %d\n", d.Version)
			if d.Time != "" {
				fmt.Fprintf(&b, "time:    %s\n", d.Time)
			}
			if d.Kind != "" {
				fmt.Fprintf(&b, "kind:    %s\n", d.Kind)
			}
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}
}
