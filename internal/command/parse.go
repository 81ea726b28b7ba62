package command

import (
	"fmt"
	"regexp"
	"slices"
)

// Parse turns raw tokens into a Context. Flags are extracted first, in
// declaration order, and removed from the token list; positional arguments
// then take the remaining tokens by index. The raw slice is not modified.
func (m *Manager) Parse(raw []string, positional, flags []Field) (*Context, error) {
	tokens := slices.Clone(raw)
	ctx := newContext()

	for _, flag := range flags {
		matcher := flagMatcher(flag)
		idx := slices.IndexFunc(tokens, matcher.MatchString)
		if idx == -1 {
			if flag.HasDefault() {
				ctx.Flags[flag.Name] = flag.Default
			}
			if flag.Required {
				m.report.errorf("| An argument for flag '%s' was not provided.", flag.Name)
				return nil, &MissingFlagError{Name: flag.Name}
			}
			continue
		}

		token := tokens[idx]
		value := matcher.FindStringSubmatch(token)[matcher.SubexpIndex("value")]
		v, err := flag.Parser(value)
		if err != nil {
			m.report.errorf("| Invalid value %q for flag '%s': %v", value, flag.Name, err)
			return nil, &ParseError{Kind: "flag", Name: flag.Name, Raw: value, Err: err}
		}
		ctx.Flags[flag.Name] = v
		tokens = slices.Delete(tokens, idx, idx+1)
		m.logger.Debug("flag parsed", "flag", flag.Name, "token", token)
	}

	for i, arg := range positional {
		if i >= len(tokens) {
			if arg.HasDefault() {
				ctx.Args[arg.Name] = arg.Default
			}
			if arg.Required {
				m.report.errorf("| Expected %d arguments, but got %d.\n| An argument for '%s' was not provided.", len(positional), len(tokens), arg.Name)
				return nil, &MissingArgumentError{Name: arg.Name, Expected: len(positional), Got: len(tokens)}
			}
			continue
		}

		v, err := arg.Parser(tokens[i])
		if err != nil {
			m.report.errorf("| Invalid value %q for argument '%s': %v", tokens[i], arg.Name, err)
			return nil, &ParseError{Kind: "argument", Name: arg.Name, Raw: tokens[i], Err: err}
		}
		ctx.Args[arg.Name] = v
	}

	return ctx, nil
}

// flagMatcher recognizes prefix+label=value. For optional flags the =value
// suffix may be left out, in which case the value group is empty.
func flagMatcher(flag Field) *regexp.Regexp {
	optional := ""
	if !flag.Required {
		optional = "?"
	}
	expr := fmt.Sprintf(`^%s%s(?:=(?P<value>.+))%s$`,
		regexp.QuoteMeta(flag.Prefix), regexp.QuoteMeta(flag.Label), optional)
	return regexp.MustCompile(expr)
}
