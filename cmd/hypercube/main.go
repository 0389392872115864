// Command hypercube builds, damages and searches hypercube graphs from the
// command line. Run "hypercube --help" for the command list.
package main

import (
	"os"

	"github.com/katalvlaran/hypercube/internal/cli"
	"github.com/katalvlaran/hypercube/internal/ui"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, ui.Stderr()))
}
