// Package declfile loads command declarations from HCL files.
//
//	command "greet" {
//	  description = "say hello"
//	  output      = "Hello, {{name}}"
//
//	  arg "name" {}
//
//	  flag "loud" {
//	    type        = "bool"
//	    required    = false
//	    default     = "false"
//	    description = "be loud"
//	  }
//	}
//
// The type of an entry selects one of the built-in parsers of package
// command and defaults are given as raw strings run through that parser.
package declfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/go-juicedev/juiceargs/internal/command"
)

type hclFile struct {
	Commands []*hclCommand `hcl:"command,block"`
}

type hclCommand struct {
	Name        string     `hcl:"name,label"`
	Description string     `hcl:"description,optional"`
	Output      string     `hcl:"output,optional"`
	Args        []*hclArgs `hcl:"arg,block"`
	Flags       []*hclArgs `hcl:"flag,block"`
}

type hclArgs struct {
	Name        string  `hcl:"name,label"`
	Label       string  `hcl:"label,optional"`
	Description string  `hcl:"description,optional"`
	Prefix      string  `hcl:"prefix,optional"`
	Type        string  `hcl:"type,optional"`
	Required    *bool   `hcl:"required,optional"`
	Default     *string `hcl:"default,optional"`
}

// Load reads the declaration file at path. Handlers of the returned commands
// print their output to w.
func Load(path string, w io.Writer) ([]command.Command, error) {
	var f hclFile
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to decode declaration file %s: %w", path, err)
	}
	return build(&f, w)
}

// Parse is like Load for in-memory sources. The filename suffix selects the
// syntax, .hcl or .json.
func Parse(filename string, src []byte, w io.Writer) ([]command.Command, error) {
	var f hclFile
	if err := hclsimple.Decode(filename, src, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to decode declaration file %s: %w", filename, err)
	}
	return build(&f, w)
}

func build(f *hclFile, w io.Writer) ([]command.Command, error) {
	commands := make([]command.Command, 0, len(f.Commands))
	for _, c := range f.Commands {
		args, err := declaration(c.Args)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", c.Name, err)
		}
		flags, err := declaration(c.Flags)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", c.Name, err)
		}
		commands = append(commands, command.Command{
			Name:        c.Name,
			Description: c.Description,
			Args:        args,
			Flags:       flags,
			Execute:     printer(c, w),
		})
	}
	return commands, nil
}

func declaration(blocks []*hclArgs) (command.Declaration, error) {
	decl := make(command.Declaration, 0, len(blocks))
	for _, b := range blocks {
		parser, err := command.ParserFor(b.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name, err)
		}
		arg := command.Argument{
			Label:       b.Label,
			Description: b.Description,
			Parser:      parser,
			Prefix:      b.Prefix,
			Required:    b.Required,
			Type:        b.Type,
		}
		if b.Default != nil {
			v, err := parser(*b.Default)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid default %q: %w", b.Name, *b.Default, err)
			}
			arg.Default = v
		}
		decl = append(decl, command.Entry{Name: b.Name, Arg: arg})
	}
	return decl, nil
}

// printer returns a handler that renders the output template, or every parsed
// value as name=value when there is none.
func printer(c *hclCommand, w io.Writer) command.Handler {
	return func(ctx *command.Context) (any, error) {
		var text string
		if c.Output != "" {
			var pairs []string
			for _, values := range []map[string]any{ctx.Args, ctx.Flags} {
				for name, v := range values {
					pairs = append(pairs, "{{"+name+"}}", fmt.Sprint(v))
				}
			}
			text = strings.NewReplacer(pairs...).Replace(c.Output)
		} else {
			var parts []string
			for _, group := range []struct {
				blocks []*hclArgs
				values map[string]any
			}{{c.Args, ctx.Args}, {c.Flags, ctx.Flags}} {
				for _, b := range group.blocks {
					if v, ok := group.values[b.Name]; ok {
						parts = append(parts, fmt.Sprintf("%s=%v", b.Name, v))
					}
				}
			}
			text = strings.Join(parts, " ")
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return nil, err
		}
		return text, nil
	}
}
