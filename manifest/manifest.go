// Package manifest assembles and serializes the release manifest
// describing a set of built kernel and rootfs artifacts.
package manifest

import (
	"time"

	"github.com/spf13/afero"

	"github.com/sandboxvm/vmimages/config"
)

// Manifest is the release record written to manifest.json.
type Manifest struct {
	SchemaVersion int                      `json:"schema_version"`
	Version       string                   `json:"version"`
	Artifacts     map[string]ArchArtifacts `json:"artifacts"`
	Firecracker   Firecracker              `json:"firecracker"`
	Build         BuildInfo                `json:"build"`
}

// ArchArtifacts contains per-architecture artifact metadata.
type ArchArtifacts struct {
	Kernel KernelArtifact `json:"kernel"`
	Rootfs RootfsArtifact `json:"rootfs"`
}

// KernelArtifact describes the kernel binary.
type KernelArtifact struct {
	File      string `json:"file"`
	Version   string `json:"version"`
	Source    string `json:"source"`
	SizeBytes int64  `json:"size_bytes"`
}

// RootfsArtifact describes the rootfs image.
type RootfsArtifact struct {
	File          string `json:"file"`
	Distro        string `json:"distro"`
	DistroVersion string `json:"distro_version"`
	Profile       string `json:"profile"`
	SizeBytes     int64  `json:"size_bytes"`
}

// Firecracker records the VMM release the artifacts were built for.
type Firecracker struct {
	Version string `json:"version"`
	Source  string `json:"source"`
}

// BuildInfo contains build metadata.
type BuildInfo struct {
	Date   string `json:"date"`
	Commit string `json:"commit"`
}

// Builder assembles manifests from a build directory. The filesystem
// and clock are injected so the assembly stays testable.
type Builder struct {
	fs  afero.Fs
	now func() time.Time
}

// NewBuilder returns a Builder operating on the OS filesystem.
func NewBuilder() *Builder {
	return &Builder{fs: afero.NewOsFs(), now: time.Now}
}

// Build locates every artifact pair named by the configuration under
// buildDir and assembles the manifest. Any missing artifact aborts the
// whole build; a partial manifest is never returned. The build date is
// captured once per invocation, so every entry shares it.
func (b *Builder) Build(cfg *config.Config, version, buildDir, commit string) (*Manifest, error) {
	artifacts := make(map[string]ArchArtifacts, len(cfg.Architectures))

	for _, arch := range cfg.Architectures {
		kernelRef, rootfsRef, err := locateArtifacts(b.fs, buildDir, arch)
		if err != nil {
			return nil, err
		}

		artifacts[arch] = ArchArtifacts{
			Kernel: KernelArtifact{
				File:      KernelFileName(arch),
				Version:   cfg.Kernel.Version,
				Source:    KernelSource(cfg.Kernel.CIVersion),
				SizeBytes: kernelRef.SizeBytes,
			},
			Rootfs: RootfsArtifact{
				File:          RootfsFileName(arch),
				Distro:        cfg.Rootfs.Distro,
				DistroVersion: cfg.Rootfs.DistroVersion,
				Profile:       cfg.Rootfs.Profile,
				SizeBytes:     rootfsRef.SizeBytes,
			},
		}
	}

	return &Manifest{
		SchemaVersion: SchemaVersion,
		Version:       version,
		Artifacts:     artifacts,
		Firecracker: Firecracker{
			Version: cfg.Firecracker.Version,
			Source:  FirecrackerSource,
		},
		Build: BuildInfo{
			Date:   b.now().UTC().Format(time.RFC3339),
			Commit: commit,
		},
	}, nil
}
