package command

import (
	"fmt"
	"strings"
)

// Usage is a one-line usage string with its footnotes.
type Usage struct {
	Usage     string
	Footnotes []string
}

func (u Usage) String() string {
	if len(u.Footnotes) == 0 {
		return u.Usage
	}
	return u.Usage + "\n" + strings.Join(u.Footnotes, "\n")
}

// RenderUsage renders positional arguments first, then flags:
//
//	<name: string> ?<--loud: bool>*
//
// Optional entries get a leading '?'. With footnotes enabled, entries with a
// default or a description are marked with a growing run of '*' and described
// in a footnote line.
func RenderUsage(positional, flags []Field, footnotes bool) Usage {
	var (
		tokens []string
		notes  []string
	)

	render := func(fields []Field, flag bool) {
		for _, f := range fields {
			q := ""
			if !f.Required {
				q = "?"
			}
			prefix := ""
			if flag {
				prefix = f.Prefix
			}
			mark := ""
			if footnotes && (f.HasDefault() || f.Description != "") {
				mark = strings.Repeat("*", len(notes)+1)
			}
			tokens = append(tokens, fmt.Sprintf("%s<%s%s: %s>%s", q, prefix, f.Label, f.DisplayType(), mark))

			if mark != "" {
				d := ""
				if f.HasDefault() {
					d = fmt.Sprintf("default=%v; ", f.Default)
				}
				notes = append(notes, fmt.Sprintf("*%s: %s%s", f.Label, d, f.Description))
			}
		}
	}

	render(positional, false)
	render(flags, true)

	if !footnotes || notes == nil {
		notes = []string{}
	}
	return Usage{Usage: strings.Join(tokens, " "), Footnotes: notes}
}
