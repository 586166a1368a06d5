package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sandboxvm/vmimages/manifest"
)

// ManifestCommands provides the manifest related commands
func ManifestCommands() *cobra.Command {
	var cmdManifest = &cobra.Command{
		Use:       "manifest",
		Short:     "manage the release manifest",
		ValidArgs: []string{"generate", "print"},
		Args:      cobra.OnlyValidArgs,
	}

	PersistBuildCommandFlags(cmdManifest.PersistentFlags())

	cmdManifest.AddCommand(manifestGenerateCommand())
	cmdManifest.AddCommand(manifestPrintCommand())

	return cmdManifest
}

func manifestGenerateCommand() *cobra.Command {
	var cmdGenerate = &cobra.Command{
		Use:   "generate",
		Short: "generate manifest.json from the build directory",
		Run:   manifestGenerateCommandHandler,
	}

	persistentFlags := cmdGenerate.PersistentFlags()
	persistentFlags.String("version", "", "release version (e.g. v0.1.0)")
	persistentFlags.String("commit", "", "git commit the release was built from")
	persistentFlags.StringP("output", "o", "", "output path (default: <build-dir>/manifest.json)")

	return cmdGenerate
}

func manifestGenerateCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	version, _ := flags.GetString("version")
	if version == "" {
		exitWithError("--version is required")
	}

	commit, _ := flags.GetString("commit")
	output, _ := flags.GetString("output")

	buildFlags := NewBuildCommandFlags(flags)

	cfg, err := buildFlags.LoadConfig()
	if err != nil {
		exitWithError(err.Error())
	}

	if output == "" {
		output = manifest.DefaultOutputPath(buildFlags.BuildDir)
	}

	m, err := manifest.NewBuilder().Build(cfg, version, buildFlags.BuildDir, commit)
	if err != nil {
		exitWithError(err.Error())
	}

	if err := manifest.NewWriter().Write(m, output); err != nil {
		exitWithError(err.Error())
	}

	fmt.Printf("Wrote manifest: %s\n", output)
}

func manifestPrintCommand() *cobra.Command {
	var cmdPrint = &cobra.Command{
		Use:   "print",
		Short: "print an existing manifest as a table",
		Run:   manifestPrintCommandHandler,
	}

	cmdPrint.PersistentFlags().String("file", "", "manifest path (default: <build-dir>/manifest.json)")

	return cmdPrint
}

func manifestPrintCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	file, _ := flags.GetString("file")
	if file == "" {
		buildFlags := NewBuildCommandFlags(flags)
		file = manifest.DefaultOutputPath(buildFlags.BuildDir)
	}

	m, err := manifest.Read(afero.NewOsFs(), file)
	if err != nil {
		exitWithError(err.Error())
	}

	fmt.Printf("Release %s (schema %d), built %s commit %q\n", m.Version, m.SchemaVersion, m.Build.Date, m.Build.Commit)
	fmt.Printf("Firecracker %s (%s)\n", m.Firecracker.Version, m.Firecracker.Source)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Arch", "Artifact", "File", "Source", "Size"})
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor})
	table.SetRowLine(true)

	for arch, artifacts := range m.Artifacts {
		table.Append([]string{
			arch,
			"kernel " + artifacts.Kernel.Version,
			artifacts.Kernel.File,
			artifacts.Kernel.Source,
			humanize.Bytes(uint64(artifacts.Kernel.SizeBytes)),
		})
		table.Append([]string{
			arch,
			"rootfs " + artifacts.Rootfs.Distro + " " + artifacts.Rootfs.DistroVersion,
			artifacts.Rootfs.File,
			artifacts.Rootfs.Profile,
			humanize.Bytes(uint64(artifacts.Rootfs.SizeBytes)),
		})
	}

	table.Render()
}
