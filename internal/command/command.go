package command

import "fmt"

// Handler runs a command with its parsed context.
type Handler func(ctx *Context) (any, error)

// Command is a named set of positional arguments and flags with a handler.
type Command struct {
	Name        string
	Description string
	Args        Declaration
	Flags       Declaration
	Execute     Handler
}

// Context carries the parsed values of one invocation, keyed by declared name.
type Context struct {
	Args  map[string]any
	Flags map[string]any
}

func newContext() *Context {
	return &Context{Args: map[string]any{}, Flags: map[string]any{}}
}

// Value returns values[name] as T. The boolean is false when the value is
// missing or has another type.
func Value[T any](values map[string]any, name string) (T, bool) {
	v, ok := values[name].(T)
	return v, ok
}

// MustValue is like Value but panics on a missing or mistyped value.
func MustValue[T any](values map[string]any, name string) T {
	v, ok := Value[T](values, name)
	if !ok {
		var zero T
		panic(fmt.Sprintf("command: value %q is not a %T", name, zero))
	}
	return v
}
