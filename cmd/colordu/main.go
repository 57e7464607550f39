package main

import (
	"os"

	"github.com/colordu/colordu/internal/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	os.Exit(cli.New(version).Execute())
}
