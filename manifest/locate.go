package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ArtifactRef is a located build output.
type ArtifactRef struct {
	Path      string
	SizeBytes int64
}

// LocateError reports an expected artifact that is absent or cannot be
// stat-ed under the build directory.
type LocateError struct {
	Arch     string
	Artifact string
	Err      error
}

func (e *LocateError) Error() string {
	return fmt.Sprintf("%s artifact for %s: %v", e.Artifact, e.Arch, e.Err)
}

func (e *LocateError) Unwrap() error {
	return e.Err
}

// locateArtifacts resolves and stats the kernel and rootfs files for
// one architecture. A missing file is a hard failure; there are no
// fallback paths.
func locateArtifacts(fsys afero.Fs, buildDir, arch string) (kernel ArtifactRef, rootfs ArtifactRef, err error) {
	kernel, err = statArtifact(fsys, buildDir, KernelFileName(arch))
	if err != nil {
		return ArtifactRef{}, ArtifactRef{}, &LocateError{Arch: arch, Artifact: "kernel", Err: err}
	}

	rootfs, err = statArtifact(fsys, buildDir, RootfsFileName(arch))
	if err != nil {
		return ArtifactRef{}, ArtifactRef{}, &LocateError{Arch: arch, Artifact: "rootfs", Err: err}
	}

	return kernel, rootfs, nil
}

func statArtifact(fsys afero.Fs, buildDir, name string) (ArtifactRef, error) {
	path := filepath.Join(buildDir, name)

	info, err := fsys.Stat(path)
	if err != nil {
		return ArtifactRef{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return ArtifactRef{Path: path, SizeBytes: info.Size()}, nil
}
