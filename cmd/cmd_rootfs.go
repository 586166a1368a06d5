package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sandboxvm/vmimages/manifest"
	"github.com/sandboxvm/vmimages/rootfs"
)

// RootfsCommands provides the rootfs related commands
func RootfsCommands() *cobra.Command {
	var cmdRootfs = &cobra.Command{
		Use:       "rootfs",
		Short:     "manage rootfs images",
		ValidArgs: []string{"build", "shrink"},
		Args:      cobra.OnlyValidArgs,
	}

	PersistBuildCommandFlags(cmdRootfs.PersistentFlags())

	cmdRootfs.AddCommand(rootfsBuildCommand())
	cmdRootfs.AddCommand(rootfsShrinkCommand())

	return cmdRootfs
}

func rootfsBuildCommand() *cobra.Command {
	var cmdBuild = &cobra.Command{
		Use:   "build",
		Short: "build rootfs images for every configured architecture",
		Run:   rootfsBuildCommandHandler,
	}

	persistentFlags := cmdBuild.PersistentFlags()
	persistentFlags.StringP("packages", "p", "packages.txt", "package list file")
	persistentFlags.Int64("size-mb", 512, "initial image size in MB before shrinking")

	return cmdBuild
}

func rootfsBuildCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	packagesFile, _ := flags.GetString("packages")
	sizeMB, _ := flags.GetInt64("size-mb")

	buildFlags := NewBuildCommandFlags(flags)

	cfg, err := buildFlags.LoadConfig()
	if err != nil {
		exitWithError(err.Error())
	}

	opts := rootfs.BuildOptions{PackagesFile: packagesFile, SizeMB: sizeMB}

	for _, arch := range cfg.Architectures {
		if err := rootfs.Build(cfg, buildFlags.BuildDir, arch, opts); err != nil {
			exitWithError(err.Error())
		}
	}
}

func rootfsShrinkCommand() *cobra.Command {
	var cmdShrink = &cobra.Command{
		Use:   "shrink",
		Short: "shrink rootfs images to their contents",
		Run:   rootfsShrinkCommandHandler,
	}

	return cmdShrink
}

func rootfsShrinkCommandHandler(cmd *cobra.Command, args []string) {
	buildFlags := NewBuildCommandFlags(cmd.Flags())

	cfg, err := buildFlags.LoadConfig()
	if err != nil {
		exitWithError(err.Error())
	}

	for _, arch := range cfg.Architectures {
		img := filepath.Join(buildFlags.BuildDir, manifest.RootfsFileName(arch))
		if err := rootfs.Shrink(img); err != nil {
			exitWithError(err.Error())
		}
	}
}
