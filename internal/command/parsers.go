package command

import (
	"fmt"
	"strconv"
)

// Int parses a base 10 integer.
func Int(raw string) (any, error) {
	return strconv.Atoi(raw)
}

// Float parses a 64 bit float.
func Float(raw string) (any, error) {
	return strconv.ParseFloat(raw, 64)
}

// Bool parses the values accepted by strconv.ParseBool. A flag given without
// a value is passed in as "" and counts as true.
func Bool(raw string) (any, error) {
	if raw == "" {
		return true, nil
	}
	return strconv.ParseBool(raw)
}

var builtin = map[string]Parser{
	"string": Identity,
	"int":    Int,
	"float":  Float,
	"bool":   Bool,
}

// ParserFor returns the built-in parser for a display type name.
func ParserFor(typ string) (Parser, error) {
	if typ == "" {
		return Identity, nil
	}
	p, ok := builtin[typ]
	if !ok {
		return nil, fmt.Errorf("unknown type %q", typ)
	}
	return p, nil
}
