package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sandboxvm/vmimages/kernel"
	"github.com/sandboxvm/vmimages/manifest"
	"github.com/sandboxvm/vmimages/rootfs"
)

// BuildCommand runs the whole image pipeline: kernels, rootfs images
// and the release manifest
func BuildCommand() *cobra.Command {
	var cmdBuild = &cobra.Command{
		Use:   "build",
		Short: "download kernels, build rootfs images and generate the manifest",
		Run:   buildCommandHandler,
	}

	persistentFlags := cmdBuild.PersistentFlags()

	PersistBuildCommandFlags(persistentFlags)
	persistentFlags.String("version", "", "release version (e.g. v0.1.0)")
	persistentFlags.String("commit", "", "git commit the release was built from")
	persistentFlags.StringP("packages", "p", "packages.txt", "package list file")
	persistentFlags.Int64("size-mb", 512, "initial rootfs size in MB before shrinking")

	return cmdBuild
}

func buildCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	version, _ := flags.GetString("version")
	if version == "" {
		exitWithError("--version is required")
	}

	commit, _ := flags.GetString("commit")
	packagesFile, _ := flags.GetString("packages")
	sizeMB, _ := flags.GetInt64("size-mb")

	buildFlags := NewBuildCommandFlags(flags)

	cfg, err := buildFlags.LoadConfig()
	if err != nil {
		exitWithError(err.Error())
	}

	if err := kernel.DownloadAll(cfg, buildFlags.BuildDir, buildFlags.Force); err != nil {
		exitWithError(err.Error())
	}

	opts := rootfs.BuildOptions{PackagesFile: packagesFile, SizeMB: sizeMB}
	for _, arch := range cfg.Architectures {
		if err := rootfs.Build(cfg, buildFlags.BuildDir, arch, opts); err != nil {
			exitWithError(err.Error())
		}

		img := filepath.Join(buildFlags.BuildDir, manifest.RootfsFileName(arch))
		if err := rootfs.Shrink(img); err != nil {
			exitWithError(err.Error())
		}
	}

	m, err := manifest.NewBuilder().Build(cfg, version, buildFlags.BuildDir, commit)
	if err != nil {
		exitWithError(err.Error())
	}

	output := manifest.DefaultOutputPath(buildFlags.BuildDir)
	if err := manifest.NewWriter().Write(m, output); err != nil {
		exitWithError(err.Error())
	}

	fmt.Printf("Wrote manifest: %s\n", output)
}
