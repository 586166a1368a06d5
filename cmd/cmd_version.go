package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the vmimages tool version
const Version = "0.2.0"

// VersionCommand provides the version command
func VersionCommand() *cobra.Command {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Version",
		Run:   printVersion,
	}
	return cmdVersion
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("vmimages version: %s\n", Version)
}
