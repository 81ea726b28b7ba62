package command

const (
	errArgRequiredDefault  = "required arguments cannot have defaults"
	errFlagRequiredDefault = "required flags cannot have defaults"
	errArgOrder            = "required arguments must be before optional arguments"
	errArgDuplicateName    = "duplicate argument name"
	errArgDuplicateLabel   = "duplicate argument label"
	errFlagDuplicateName   = "duplicate flag name"
	errFlagDuplicateLabel  = "duplicate flag label"
)

// Errors holds validation messages keyed by argument and flag name.
type Errors struct {
	Args  map[string]string
	Flags map[string]string
}

// Validation is the outcome of Validate.
type Validation struct {
	State  bool
	Errors Errors
}

// Validate checks the argument and flag declarations of cmd. All problems are
// collected, it never stops at the first one.
func Validate(cmd Command) Validation {
	errs := Errors{Args: map[string]string{}, Flags: map[string]string{}}

	args := Normalize(cmd.Args, DefaultPrefix)
	flags := Normalize(cmd.Flags, DefaultPrefix)

	for _, arg := range args {
		if arg.Required && arg.HasDefault() {
			errs.Args[arg.Name] = errArgRequiredDefault
		}
	}

	for _, flag := range flags {
		if flag.Required && flag.HasDefault() {
			errs.Flags[flag.Name] = errFlagRequiredDefault
		}
	}

	// flags have no position, ordering only applies to args
	hit := false
	for _, arg := range args {
		if arg.Required {
			hit = true
		} else if hit {
			errs.Args[arg.Name] = errArgOrder
		}
	}

	duplicates(args, false, errs.Args, errArgDuplicateName, errArgDuplicateLabel)
	duplicates(flags, true, errs.Flags, errFlagDuplicateName, errFlagDuplicateLabel)

	return Validation{
		State:  len(errs.Args)+len(errs.Flags) == 0,
		Errors: errs,
	}
}

// duplicates walks fields in order. A repeated name is only reported when its
// label was seen as well; a new name is reported when its label collides with
// an earlier identifier. Flag identifiers carry their prefix.
func duplicates(fields []Field, prefixed bool, errs map[string]string, nameMsg, labelMsg string) {
	seen := make(map[string]struct{}, len(fields))
	has := func(id string) bool {
		_, ok := seen[id]
		return ok
	}
	for _, f := range fields {
		prefix := ""
		if prefixed {
			prefix = f.Prefix
		}
		if has(prefix + f.Name) {
			// a prefixed identifier is never empty
			if f.Label != "" || prefixed {
				if has(prefix + f.Label) {
					errs[f.Name] = nameMsg
				}
				seen[prefix+f.Label] = struct{}{}
			}
			continue
		}
		if has(prefix + f.Label) {
			errs[f.Name] = labelMsg
		}
		seen[prefix+f.Name] = struct{}{}
	}
}
