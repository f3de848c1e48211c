// Command roster browses the character catalog and placeholder posts.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/roster/internal/cli"
	"github.com/rshade/roster/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		return exitCode(err)
	}
	return 0
}

// Exit codes.
const (
	exitFailure     = 1
	exitInterrupted = 130
)

// exitCode maps an execution error to an exit code. Cobra already printed it.
func exitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		_, _ = fmt.Fprintln(os.Stderr, "interrupted")
		return exitInterrupted
	}
	return exitFailure
}
