package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/bmecat/internal/cli"
	"github.com/vvka-141/bmecat/pkg/bmecat"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(bmecat.ExitPanic)
		}
	}()

	if os.Getenv("BMECAT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(bmecat.ExitCodeForError(err))
	}
}
