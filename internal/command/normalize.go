package command

// Identity returns the raw token unchanged.
func Identity(raw string) (any, error) {
	return raw, nil
}

func (p Parser) describe(name, prefix string) Descriptor {
	// Type stays empty here, usage renders it as DefaultType.
	return Descriptor{
		Label:    name,
		Parser:   p,
		Prefix:   prefix,
		Required: true,
	}
}

func (a Argument) describe(name, prefix string) Descriptor {
	d := Descriptor{
		Label:       a.Label,
		Description: a.Description,
		Parser:      a.Parser,
		Prefix:      a.Prefix,
		Default:     a.Default,
		Required:    true,
		Type:        a.Type,
	}
	if a.Required != nil {
		d.Required = *a.Required
	}
	if d.Label == "" {
		d.Label = name
	}
	if d.Prefix == "" {
		d.Prefix = prefix
	}
	if d.Type == "" {
		d.Type = DefaultType
	}
	if d.Parser == nil {
		d.Parser = Identity
	}
	return d
}

func (d Descriptor) describe(name, prefix string) Descriptor {
	if d.Label == "" {
		d.Label = name
	}
	if d.Prefix == "" {
		d.Prefix = prefix
	}
	if d.Parser == nil {
		d.Parser = Identity
	}
	return d
}

// Normalize expands every entry of decl into a full descriptor, keeping the
// declaration order. Entries without a prefix get the given one.
func Normalize(decl Declaration, prefix string) []Field {
	fields := make([]Field, 0, len(decl))
	for _, entry := range decl {
		var d Descriptor
		if entry.Arg == nil {
			d = Argument{}.describe(entry.Name, prefix)
		} else {
			d = entry.Arg.describe(entry.Name, prefix)
		}
		fields = append(fields, Field{Name: entry.Name, Descriptor: d})
	}
	return fields
}

// Fields turns normalized fields back into a declaration of descriptors, so that
// normalized fields can be declared again.
func Fields(fields []Field) Declaration {
	decl := make(Declaration, 0, len(fields))
	for _, f := range fields {
		decl = append(decl, Entry{Name: f.Name, Arg: f.Descriptor})
	}
	return decl
}
