// Package command declares, validates and parses program commands.
//
// A Command lists its positional arguments and flags as ordered
// Declarations. Each entry is either a bare Parser or an Argument describing
// label, type, default and requiredness. Declarations are normalized into
// Fields before every validation and parse.
//
// Flags are written as <prefix><label>=<value>, with "--" as the default
// prefix. Optional flags may leave out =<value>. Flags are matched first and
// removed from the token list, the remaining tokens fill the positional
// arguments in order.
//
// Failures that have already been printed for the user wrap ErrAbort. Entry
// points check for it with errors.Is and exit without printing again.
package command
