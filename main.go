package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-juicedev/juiceargs/cmds/check"
	"github.com/go-juicedev/juiceargs/cmds/run"
	"github.com/go-juicedev/juiceargs/cmds/serve"
	"github.com/go-juicedev/juiceargs/cmds/usage"
	"github.com/go-juicedev/juiceargs/internal/app"
	"github.com/go-juicedev/juiceargs/internal/cliflag"
	"github.com/go-juicedev/juiceargs/internal/command"
)

func newRootCommand() *cobra.Command {
	root := cliflag.NewCommand("juiceargs", app.Flags()...)
	root.Short = "Declare, validate and run commands with typed arguments and flags"
	root.AddCommand(run.NewCommand(), serve.NewCommand(), usage.NewCommand(), check.NewCommand())
	return root
}

// exitCode maps an error to the process exit status. Failures that were
// already reported exit with 1 silently, anything else is printed and exits 2.
func exitCode(err error) int {
	var (
		notFound *command.NotFoundError
		mismatch *command.ProgramMismatchError
	)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, command.ErrAbort), errors.As(err, &notFound):
		return 1
	case errors.As(err, &mismatch):
		fmt.Fprintln(os.Stderr, err)
		return 1
	default:
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && errors.Is(err, command.ErrAbort) {
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "unexpected failure: %v\n", r)
			os.Exit(2)
		}
	}()
	os.Exit(exitCode(newRootCommand().ExecuteContext(context.Background())))
}
