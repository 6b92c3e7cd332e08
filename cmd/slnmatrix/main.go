package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mgrebenkin/slnmatrix/internal/cli"
	"github.com/mgrebenkin/slnmatrix/pkg/slnmatrix"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(slnmatrix.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(slnmatrix.ExitCodeForError(err))
	}
}
