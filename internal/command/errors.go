package command

import (
	"errors"
	"fmt"
)

// ErrAbort is the root of every failure that has already been reported to
// the user. Entry points should exit without printing it again.
var ErrAbort = errors.New("command: aborted")

// ValidationError is returned when a command declaration is inconsistent.
type ValidationError struct {
	Command    string
	Validation Validation
}

func (e *ValidationError) Error() string {
	n := len(e.Validation.Errors.Args) + len(e.Validation.Errors.Flags)
	return fmt.Sprintf("command %q: validation failed with %d error(s)", e.Command, n)
}

func (e *ValidationError) Unwrap() error { return ErrAbort }

// MissingFlagError is returned when a required flag is absent.
type MissingFlagError struct {
	Name string
}

func (e *MissingFlagError) Error() string {
	return fmt.Sprintf("an argument for flag '%s' was not provided", e.Name)
}

func (e *MissingFlagError) Unwrap() error { return ErrAbort }

// MissingArgumentError is returned when a required positional argument is absent.
type MissingArgumentError struct {
	Name     string
	Expected int
	Got      int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("expected %d arguments, but got %d: an argument for '%s' was not provided", e.Expected, e.Got, e.Name)
}

func (e *MissingArgumentError) Unwrap() error { return ErrAbort }

// ParseError wraps a failure of a descriptor's parser.
type ParseError struct {
	Kind string // "argument" or "flag"
	Name string
	Raw  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for %s '%s': %v", e.Raw, e.Kind, e.Name, e.Err)
}

// Is lets errors.Is match both ErrAbort and the parser's own error.
func (e *ParseError) Is(target error) bool { return target == ErrAbort }

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError is returned by Execute for an unknown command. It is reported
// but does not abort.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Command %s not found", e.Name)
}

// ProgramMismatchError is returned by Run when the first token is not the
// program name.
type ProgramMismatchError struct {
	Want, Got string
}

func (e *ProgramMismatchError) Error() string {
	return fmt.Sprintf("program name mismatch: want %q, got %q", e.Want, e.Got)
}
