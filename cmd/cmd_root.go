package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sandboxvm/vmimages/log"
)

// GetRootCommand provides the set of all vmimages commands
func GetRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "vmimages",
		Short: "Build and describe microVM kernel and rootfs images",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			globalFlags := NewGlobalCommandFlags(cmd.Flags())

			log.InitDefault(os.Stdout, log.Verbosity{
				Info:  globalFlags.Verbose,
				Warn:  globalFlags.ShowWarnings,
				Error: true,
				Debug: globalFlags.ShowDebug,
			})
		},
	}

	// persist flags transversal to every command
	PersistGlobalCommandFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(BuildCommand())
	rootCmd.AddCommand(KernelCommands())
	rootCmd.AddCommand(RootfsCommands())
	rootCmd.AddCommand(ManifestCommands())
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}
