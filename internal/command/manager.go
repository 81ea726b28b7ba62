package command

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"
)

// Manager is an ordered registry of validated commands for one program.
// Commands can only be added, never removed.
type Manager struct {
	name   string
	report *reporter
	logger *slog.Logger

	mu       sync.RWMutex
	commands []Command
}

type options struct {
	out, errOut io.Writer
	noColor     bool
	logger      *slog.Logger
}

// Option configures a Manager.
type Option func(*options)

// WithOutput sets where acknowledgements are printed. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithErrorOutput sets where errors are printed. Defaults to stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(o *options) { o.errOut = w }
}

// WithNoColor disables colored output.
func WithNoColor(noColor bool) Option {
	return func(o *options) { o.noColor = noColor }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a Manager for the program called name.
func New(name string, opts ...Option) *Manager {
	o := options{out: os.Stdout, errOut: os.Stderr, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{
		name:   name,
		report: newReporter(o.out, o.errOut, o.noColor),
		logger: o.logger,
	}
}

// Name returns the program name.
func (m *Manager) Name() string {
	return m.name
}

// Validate checks cmd without registering it.
func (m *Manager) Validate(cmd Command) Validation {
	return Validate(cmd)
}

// Add validates cmd and appends it. On failure every problem is reported and
// a *ValidationError is returned.
func (m *Manager) Add(cmd Command) (*Manager, error) {
	v := Validate(cmd)
	if !v.State {
		m.report.validation(cmd, v)
		return m, &ValidationError{Command: cmd.Name, Validation: v}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.commands {
		if c.Name == cmd.Name {
			// the first registration stays reachable through Get
			m.logger.Warn("command registered twice, later one is shadowed", "command", cmd.Name)
			break
		}
	}
	m.report.successf("ok!")
	m.commands = append(m.commands, cmd)
	m.logger.Debug("command registered", "command", cmd.Name, "args", len(cmd.Args), "flags", len(cmd.Flags))
	return m, nil
}

// MustAdd is like Add but panics with the *ValidationError, so registrations
// can be chained.
func (m *Manager) MustAdd(cmd Command) *Manager {
	if _, err := m.Add(cmd); err != nil {
		panic(err)
	}
	return m
}

// Get returns the first command registered under name.
func (m *Manager) Get(name string) (Command, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// Commands returns the registered commands in registration order.
func (m *Manager) Commands() []Command {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Command, len(m.commands))
	copy(out, m.commands)
	return out
}

// Execute parses raw for the command called name and runs its handler.
// An unknown command is reported and yields a *NotFoundError, which does not
// wrap ErrAbort.
func (m *Manager) Execute(name string, raw []string) (any, error) {
	cmd, ok := m.Get(name)
	if !ok {
		err := &NotFoundError{Name: name}
		m.report.errorf("%s", err)
		return nil, err
	}

	positional := Normalize(cmd.Args, DefaultPrefix)
	flags := Normalize(cmd.Flags, DefaultPrefix)

	ctx, err := m.Parse(raw, positional, flags)
	if err != nil {
		return nil, err
	}
	if cmd.Execute == nil {
		return nil, nil
	}
	m.logger.Debug("executing command", "command", name)
	return cmd.Execute(ctx)
}

// Usage renders the given normalized declarations.
func (m *Manager) Usage(positional, flags []Field, footnotes bool) Usage {
	return RenderUsage(positional, flags, footnotes)
}

// CommandUsage renders the usage of a registered command, prefixed with the
// program and command name.
func (m *Manager) CommandUsage(name string, footnotes bool) (Usage, error) {
	cmd, ok := m.Get(name)
	if !ok {
		return Usage{}, &NotFoundError{Name: name}
	}
	u := RenderUsage(Normalize(cmd.Args, DefaultPrefix), Normalize(cmd.Flags, DefaultPrefix), footnotes)
	u.Usage = strings.TrimSpace(m.name + " " + cmd.Name + " " + u.Usage)
	return u, nil
}

// Run dispatches an argument vector: tokens[0] must be the program name,
// tokens[1] names the command and the rest are its raw arguments.
func (m *Manager) Run(tokens []string) (any, error) {
	if len(tokens) == 0 || tokens[0] != m.name {
		got := ""
		if len(tokens) > 0 {
			got = tokens[0]
		}
		return nil, &ProgramMismatchError{Want: m.name, Got: got}
	}
	if len(tokens) < 2 {
		return m.Execute("", nil)
	}
	return m.Execute(tokens[1], tokens[2:])
}

// SplitFunc splits an input line into tokens.
type SplitFunc func(line string) ([]string, error)

// SplitSpaces splits on single spaces.
func SplitSpaces(line string) ([]string, error) {
	return strings.Split(line, " "), nil
}

// SplitShell splits like a POSIX shell, honoring quotes and escapes.
func SplitShell(line string) ([]string, error) {
	return shellquote.Split(line)
}

// Serve reads newline delimited invocations from r and runs each one whose
// first token is the program name. Failures of single invocations are
// reported and do not stop the loop. It returns nil at end of input and the
// read error otherwise.
func (m *Manager) Serve(ctx context.Context, r io.Reader, split SplitFunc) error {
	if split == nil {
		split = SplitSpaces
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		tokens, err := split(strings.TrimSpace(scanner.Text()))
		if err != nil {
			m.report.errorf("%v", err)
			continue
		}
		if len(tokens) == 0 || tokens[0] != m.name {
			continue
		}
		if _, err := m.Run(tokens); err != nil {
			m.serveError(err)
		}
	}
	if err := scanner.Err(); err != nil {
		m.report.errorf("%v", err)
		return err
	}
	return nil
}

func (m *Manager) serveError(err error) {
	var notFound *NotFoundError
	switch {
	case errors.Is(err, ErrAbort), errors.As(err, &notFound):
		// already reported
	default:
		m.report.errorf("%v", err)
	}
}
