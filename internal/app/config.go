package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-juicedev/juiceargs/internal/cliflag"
)

// Config holds everything needed to build a Manager.
type Config struct {
	Name string // program name expected as the first token
	File string // declaration file, built-in commands when empty

	Color     string // auto, always or never
	Split     string // spaces or shell
	LogLevel  string
	LogFormat string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Name == "" {
		return nil, errors.New("name is a required configuration field and cannot be empty")
	}
	switch cfg.Color {
	case "":
		cfg.Color = "auto"
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color %q: must be 'auto', 'always' or 'never'", cfg.Color)
	}
	switch cfg.Split {
	case "":
		cfg.Split = "spaces"
	case "spaces", "shell":
	default:
		return nil, fmt.Errorf("invalid split %q: must be 'spaces' or 'shell'", cfg.Split)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return &cfg, nil
}

// FromFlags reads the persistent root flags of cmd into a validated Config.
func FromFlags(cmd *cobra.Command) (*Config, error) {
	return NewConfig(Config{
		Name:      cliflag.String(cmd, "name"),
		File:      cliflag.String(cmd, "file"),
		Color:     cliflag.String(cmd, "color"),
		Split:     cliflag.String(cmd, "split"),
		LogLevel:  cliflag.String(cmd, "log-level"),
		LogFormat: cliflag.String(cmd, "log-format"),
	})
}

// Flags are the persistent root flags read by FromFlags.
func Flags() []cliflag.Flag {
	return []cliflag.Flag{
		{Name: "name", ShortHand: "n", Value: "prog", Usage: "Program name expected as the first token of every invocation", Persistent: true},
		{Name: "file", ShortHand: "f", Usage: "HCL file declaring the commands. If not specified, the built-in greet and sum commands are used", Persistent: true},
		{Name: "color", Value: "auto", Usage: "Colored output: auto, always or never", Persistent: true},
		{Name: "split", Value: "spaces", Usage: "How serve splits input lines: spaces or shell", Persistent: true},
		{Name: "log-level", Value: "warn", Usage: "Log level: debug, info, warn or error", Persistent: true},
		{Name: "log-format", Value: "text", Usage: "Log format: text or json", Persistent: true},
	}
}
