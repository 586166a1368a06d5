package cmd

import (
	"github.com/spf13/pflag"

	"github.com/sandboxvm/vmimages/config"
)

// BuildCommandFlags consolidate the flags shared by every command that
// reads the build configuration and the build directory
type BuildCommandFlags struct {
	ConfigPath string
	BuildDir   string
	Force      bool
}

// LoadConfig reads and validates the configuration the flags point at
func (flags *BuildCommandFlags) LoadConfig() (*config.Config, error) {
	return config.Load(flags.ConfigPath)
}

// NewBuildCommandFlags returns an instance of BuildCommandFlags
func NewBuildCommandFlags(cmdFlags *pflag.FlagSet) (flags *BuildCommandFlags) {
	flags = &BuildCommandFlags{}

	flags.ConfigPath, _ = cmdFlags.GetString("config")
	flags.BuildDir, _ = cmdFlags.GetString("build-dir")
	flags.Force, _ = cmdFlags.GetBool("force")

	return flags
}

// PersistBuildCommandFlags append the build flags to a command
func PersistBuildCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringP("config", "c", "config.yaml", "path to the build configuration")
	cmdFlags.StringP("build-dir", "b", "build", "path to the build output directory")
	cmdFlags.BoolP("force", "f", false, "rebuild artifacts that already exist")
}
