package cliflag

import "github.com/spf13/cobra"

// NewCommand creates a cobra command with the given string flags.
func NewCommand(name string, flags ...Flag) *cobra.Command {
	var cmd = &cobra.Command{Use: name, SilenceUsage: true, SilenceErrors: true}
	for _, flag := range flags {
		set := cmd.Flags()
		if flag.Persistent {
			set = cmd.PersistentFlags()
		}
		set.StringP(flag.Name, flag.ShortHand, flag.Value, flag.Usage)
		if !flag.Required {
			continue
		}
		if flag.Persistent {
			_ = cmd.MarkPersistentFlagRequired(flag.Name)
		} else {
			_ = cmd.MarkFlagRequired(flag.Name)
		}
	}
	return cmd
}

// String returns the value of a string flag, looking at inherited flags too.
func String(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}
