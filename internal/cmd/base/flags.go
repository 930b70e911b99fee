package base

import (
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps a flag.FlagSet to render help text for commands.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet wrapping f.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the flag documentation, indented for command help output.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")

	f.VisitAll(func(fl *flag.Flag) {
		name, usage := flag.UnquoteUsage(fl)

		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if name != "" {
			fmt.Fprintf(&b, "=<%s>", name)
		}
		b.WriteString("\n")

		for _, line := range strings.Split(usage, "\n") {
			fmt.Fprintf(&b, "      %s\n", line)
		}
		if fl.DefValue != "" && fl.DefValue != "false" && fl.DefValue != "0" {
			fmt.Fprintf(&b, "      Default: %s\n", fl.DefValue)
		}
	})

	return strings.TrimRight(b.String(), "\n")
}
