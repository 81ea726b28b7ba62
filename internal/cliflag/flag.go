package cliflag

// Flag is a string flag of a cobra command.
type Flag struct {
	Name      string
	ShortHand string
	Value     string
	Usage     string
	Required  bool
	// Persistent flags are inherited by subcommands.
	Persistent bool
}
