package command

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// reporter prints user facing messages. Errors go to errOut in red,
// acknowledgements to out in green.
type reporter struct {
	out, errOut io.Writer
	fail, ok    *color.Color
}

func newReporter(out, errOut io.Writer, noColor bool) *reporter {
	r := &reporter{
		out:    out,
		errOut: errOut,
		fail:   color.New(color.FgRed),
		ok:     color.New(color.FgGreen),
	}
	if noColor {
		r.fail.DisableColor()
		r.ok.DisableColor()
	}
	return r
}

func (r *reporter) errorf(format string, args ...any) {
	_, _ = r.fail.Fprintln(r.errOut, fmt.Sprintf(format, args...))
}

func (r *reporter) successf(format string, args ...any) {
	_, _ = r.ok.Fprintln(r.out, fmt.Sprintf(format, args...))
}

// validation prints every error of v, args first, in declaration order.
func (r *reporter) validation(cmd Command, v Validation) {
	r.errorf("command validation failed")
	for _, group := range []struct {
		key  string
		decl Declaration
		errs map[string]string
	}{
		{"args", cmd.Args, v.Errors.Args},
		{"flags", cmd.Flags, v.Errors.Flags},
	} {
		printed := make(map[string]bool, len(group.errs))
		for _, entry := range group.decl {
			msg, ok := group.errs[entry.Name]
			if !ok || printed[entry.Name] {
				continue
			}
			printed[entry.Name] = true
			r.errorf("%s.%s: %s", group.key, entry.Name, msg)
		}
	}
}
