package main

import (
	"os"

	"github.com/hashicorp-forge/oid/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
