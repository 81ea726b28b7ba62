package usage

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-juicedev/juiceargs/internal/app"
	"github.com/go-juicedev/juiceargs/internal/cliflag"
)

func NewCommand() *cobra.Command {
	cmd := cliflag.NewCommand("usage [COMMAND...]")
	cmd.Short = "Print the usage of declared commands"
	cmd.Long = "Print the usage line of the named commands, or of every declared command when none is named. Optional entries are marked with '?', footnotes describe defaults and descriptions."
	cmd.Example = "  juiceargs usage greet\n" +
		"  juiceargs --file commands.hcl usage --footnotes=false"
	footnotes := cmd.Flags().Bool("footnotes", true, "Append footnotes for defaults and descriptions")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := app.FromFlags(cmd)
		if err != nil {
			return err
		}
		a, err := app.New(cfg, io.Discard, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		names := args
		if len(names) == 0 {
			for _, c := range a.Manager.Commands() {
				names = append(names, c.Name)
			}
		}
		out := cmd.OutOrStdout()
		for _, name := range names {
			u, err := a.Manager.CommandUsage(name, *footnotes)
			if err != nil {
				return err
			}
			if c, ok := a.Manager.Get(name); ok && c.Description != "" {
				fmt.Fprintf(out, "# %s\n", c.Description)
			}
			fmt.Fprintln(out, u.String())
		}
		return nil
	}
	return cmd
}
