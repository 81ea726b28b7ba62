package serve

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/go-juicedev/juiceargs/internal/app"
	"github.com/go-juicedev/juiceargs/internal/cliflag"
	"github.com/go-juicedev/juiceargs/internal/command"
)

func NewCommand() *cobra.Command {
	cmd := cliflag.NewCommand("serve")
	cmd.Short = "Run invocations read line by line from stdin"
	cmd.Long = "Read newline delimited invocations from stdin. Lines that do not start with the program name are ignored, the others are run like the run command. Failed invocations are reported and reading continues until the input ends."
	cmd.Example = "  printf 'prog greet Alice\\nprog sum 1 2\\n' | juiceargs serve\n" +
		"  juiceargs --split shell serve < invocations.txt"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := app.FromFlags(cmd)
		if err != nil {
			return err
		}
		a, err := app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if err := a.Manager.Serve(cmd.Context(), cmd.InOrStdin(), a.Split); err != nil {
			// read errors are reported by Serve
			return errors.Join(command.ErrAbort, err)
		}
		return nil
	}
	return cmd
}
