package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/hypercube"
	"github.com/katalvlaran/hypercube/internal/scenario"
)

// Exit codes returned by Execute.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitNoPath = 2 // a search ran and the target was unreachable
	ExitFailed = 3 // a scenario ran and at least one expectation failed
)

// Execute runs the command line with args and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintln(errOut, "Error:", err)

	switch {
	case errors.Is(err, hypercube.ErrNoPathFound):
		return ExitNoPath
	case errors.Is(err, scenario.ErrExpectationFailed):
		return ExitFailed
	default:
		return ExitError
	}
}
