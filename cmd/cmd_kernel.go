package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sandboxvm/vmimages/kernel"
)

// KernelCommands provides the kernel related commands
func KernelCommands() *cobra.Command {
	var cmdKernel = &cobra.Command{
		Use:       "kernel",
		Short:     "manage kernel binaries",
		ValidArgs: []string{"download"},
		Args:      cobra.OnlyValidArgs,
	}

	PersistBuildCommandFlags(cmdKernel.PersistentFlags())

	cmdKernel.AddCommand(kernelDownloadCommand())

	return cmdKernel
}

func kernelDownloadCommand() *cobra.Command {
	var cmdDownload = &cobra.Command{
		Use:   "download",
		Short: "download kernels for every configured architecture",
		Run:   kernelDownloadCommandHandler,
	}

	return cmdDownload
}

func kernelDownloadCommandHandler(cmd *cobra.Command, args []string) {
	buildFlags := NewBuildCommandFlags(cmd.Flags())

	cfg, err := buildFlags.LoadConfig()
	if err != nil {
		exitWithError(err.Error())
	}

	if err := kernel.DownloadAll(cfg, buildFlags.BuildDir, buildFlags.Force); err != nil {
		exitWithError(err.Error())
	}
}
