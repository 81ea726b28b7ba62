package app

import (
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/go-juicedev/juiceargs/internal/command"
	"github.com/go-juicedev/juiceargs/internal/declfile"
	"github.com/go-juicedev/juiceargs/internal/logging"
)

// App is a configured Manager with its input splitting mode.
type App struct {
	Manager *command.Manager
	Split   command.SplitFunc
}

// New builds the Manager described by cfg. Acknowledgements and command
// output go to out, errors and logs to errOut. Registration stops at the
// first invalid command.
func New(cfg *Config, out, errOut io.Writer) (*App, error) {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, errOut)
	if err != nil {
		return nil, err
	}

	noColor := color.NoColor
	switch cfg.Color {
	case "always":
		noColor = false
	case "never":
		noColor = true
	}

	m := command.New(cfg.Name,
		command.WithOutput(out),
		command.WithErrorOutput(errOut),
		command.WithNoColor(noColor),
		command.WithLogger(logger),
	)

	commands := Builtin(out)
	if cfg.File != "" {
		commands, err = declfile.Load(cfg.File, out)
		if err != nil {
			return nil, err
		}
	}
	for _, c := range commands {
		if _, err := m.Add(c); err != nil {
			return nil, err
		}
	}

	split := command.SplitSpaces
	if cfg.Split == "shell" {
		split = command.SplitShell
	}
	logger.Debug("manager ready", "name", cfg.Name, "commands", len(commands), "split", cfg.Split)
	return &App{Manager: m, Split: split}, nil
}

// Builtin returns the commands available without a declaration file.
func Builtin(out io.Writer) []command.Command {
	return []command.Command{
		{
			Name:        "greet",
			Description: "say hello",
			Args:        command.Decl("name", command.Argument{Description: "who to greet"}),
			Flags: command.Decl("loud", command.Argument{
				Parser:      command.Bool,
				Type:        "bool",
				Required:    command.Ptr(false),
				Default:     false,
				Description: "shout the greeting",
			}),
			Execute: func(ctx *command.Context) (any, error) {
				text := "Hello, " + command.MustValue[string](ctx.Args, "name")
				if command.MustValue[bool](ctx.Flags, "loud") {
					text += "!"
				}
				_, err := io.WriteString(out, text+"\n")
				return text, err
			},
		},
		{
			Name:        "sum",
			Description: "add integers",
			Args: command.Decl(
				"a", command.Argument{Parser: command.Int, Type: "int"},
				"b", command.Argument{Parser: command.Int, Type: "int", Required: command.Ptr(false), Default: 0},
			),
			Execute: func(ctx *command.Context) (any, error) {
				total := command.MustValue[int](ctx.Args, "a") + command.MustValue[int](ctx.Args, "b")
				_, err := io.WriteString(out, strconv.Itoa(total)+"\n")
				return total, err
			},
		},
	}
}
