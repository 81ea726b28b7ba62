package run

import (
	"github.com/spf13/cobra"

	"github.com/go-juicedev/juiceargs/internal/app"
	"github.com/go-juicedev/juiceargs/internal/cliflag"
)

func NewCommand() *cobra.Command {
	cmd := cliflag.NewCommand("run PROGRAM COMMAND [ARGS...]")
	cmd.Short = "Run one command invocation"
	cmd.Long = "Run one command invocation given as an argument vector. The first token must be the program name, the second names the command and the rest are its arguments and flags."
	cmd.Example = "  juiceargs run prog greet Alice --loud=true\n" +
		"  juiceargs --file commands.hcl run prog sum 2 40"
	cmd.Args = cobra.MinimumNArgs(1)
	// everything after PROGRAM belongs to the invoked command
	cmd.Flags().SetInterspersed(false)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := app.FromFlags(cmd)
		if err != nil {
			return err
		}
		a, err := app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		_, err = a.Manager.Run(args)
		return err
	}
	return cmd
}
