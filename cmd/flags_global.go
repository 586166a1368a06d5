package cmd

import (
	"github.com/spf13/pflag"
)

// GlobalCommandFlags are flags accepted by every command
type GlobalCommandFlags struct {
	Verbose      bool
	ShowWarnings bool
	ShowDebug    bool
}

// NewGlobalCommandFlags returns an instance of GlobalCommandFlags
func NewGlobalCommandFlags(cmdFlags *pflag.FlagSet) (flags *GlobalCommandFlags) {
	flags = &GlobalCommandFlags{}

	flags.Verbose, _ = cmdFlags.GetBool("verbose")
	flags.ShowWarnings, _ = cmdFlags.GetBool("show-warnings")
	flags.ShowDebug, _ = cmdFlags.GetBool("show-debug")

	return flags
}

// PersistGlobalCommandFlags append the global flags to a command
func PersistGlobalCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.BoolP("verbose", "v", false, "verbose output")
	cmdFlags.Bool("show-warnings", false, "display warning messages")
	cmdFlags.Bool("show-debug", false, "display debug messages")
}
