package command

// DefaultPrefix marks a flag token, e.g. --verbose=true.
const DefaultPrefix = "--"

// DefaultType is the display type of a descriptor that does not declare one.
const DefaultType = "string"

// Arg is one entry of a Declaration: a bare Parser, a partial Argument or an
// already normalized Descriptor.
type Arg interface {
	describe(name, prefix string) Descriptor
}

// Parser maps a raw token to a typed value.
type Parser func(raw string) (any, error)

// Argument is a partially filled descriptor. Zero fields are filled in by
// Normalize; a nil Default means no default and a nil Required means required.
type Argument struct {
	Label       string
	Description string
	Parser      Parser
	Prefix      string
	Default     any
	Required    *bool
	Type        string
}

// Descriptor is the normalized form of an argument or flag.
type Descriptor struct {
	Label       string
	Description string
	Parser      Parser
	Prefix      string
	Default     any
	Required    bool
	Type        string
}

// HasDefault reports whether the descriptor carries a fallback value.
func (d Descriptor) HasDefault() bool {
	return d.Default != nil
}

// DisplayType returns the type shown in usage strings.
func (d Descriptor) DisplayType() string {
	if d.Type == "" {
		return DefaultType
	}
	return d.Type
}

// Entry is a named declaration entry.
type Entry struct {
	Name string
	Arg  Arg
}

// Declaration is an ordered set of entries. For positional arguments the
// order defines the index of each argument.
type Declaration []Entry

// Decl builds a Declaration from alternating name and Arg values.
//
//	Decl("name", Parser(strings.ToUpper), "age", Argument{Type: "int"})
//
// It panics if the pairs are malformed.
func Decl(pairs ...any) Declaration {
	if len(pairs)%2 != 0 {
		panic("command: Decl expects name/arg pairs")
	}
	decl := make(Declaration, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("command: Decl name must be a string")
		}
		decl = append(decl, Entry{Name: name, Arg: asArg(pairs[i+1])})
	}
	return decl
}

func asArg(v any) Arg {
	switch a := v.(type) {
	case Arg:
		return a
	case func(string) (any, error):
		return Parser(a)
	default:
		panic("command: Decl value must be a Parser, Argument or Descriptor")
	}
}

// Ptr returns a pointer to v, handy for Argument.Required.
func Ptr[T any](v T) *T {
	return &v
}

// Field is a normalized declaration entry.
type Field struct {
	Name string
	Descriptor
}
