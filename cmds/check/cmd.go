package check

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-juicedev/juiceargs/internal/app"
	"github.com/go-juicedev/juiceargs/internal/cliflag"
	"github.com/go-juicedev/juiceargs/internal/command"
	"github.com/go-juicedev/juiceargs/internal/declfile"
)

func do(cmd *cobra.Command, cfg *app.Config) error {
	commands, err := declfile.Load(cfg.File, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	noColor := cfg.Color == "never"
	failed := 0
	m := command.New(cfg.Name,
		command.WithOutput(cmd.OutOrStdout()),
		command.WithErrorOutput(cmd.ErrOrStderr()),
		command.WithNoColor(noColor),
	)
	for _, c := range commands {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ", c.Name)
		if _, err := m.Add(c); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d commands failed validation: %w", failed, len(commands), command.ErrAbort)
	}
	ok := color.New(color.FgGreen)
	if noColor {
		ok.DisableColor()
	}
	ok.Fprintf(cmd.OutOrStdout(), "%d commands valid\n", len(commands))
	return nil
}

func NewCommand() *cobra.Command {
	cmd := cliflag.NewCommand("check")
	cmd.Short = "Validate a declaration file"
	cmd.Long = "Validate every command of a declaration file and report all problems at once, without running anything."
	cmd.Example = "  juiceargs check --file commands.hcl"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := app.FromFlags(cmd)
		if err != nil {
			return err
		}
		if cfg.File == "" {
			return errors.New("check needs a declaration file, set it with --file")
		}
		return do(cmd, cfg)
	}
	return cmd
}
