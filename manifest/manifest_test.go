package manifest

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandboxvm/vmimages/config"
)

var testTime = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Kernel: config.Kernel{
			Version:   "6.1.155",
			CIVersion: "v1.15",
		},
		Firecracker: config.Firecracker{
			Version: "1.7.0",
		},
		Rootfs: config.Rootfs{
			Distro:        "alpine",
			DistroVersion: "3.23",
			Profile:       "balanced",
		},
		Architectures: []string{"x86_64", "aarch64"},
	}
}

func testBuilder(fsys afero.Fs) *Builder {
	return &Builder{fs: fsys, now: func() time.Time { return testTime }}
}

func writeArtifact(t *testing.T, fsys afero.Fs, path string, size int64) {
	t.Helper()

	err := afero.WriteFile(fsys, path, make([]byte, size), 0644)
	require.Nil(t, err)
}

func populatedBuildDir(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	writeArtifact(t, fsys, "build/vmlinux-x86_64", 10485760)
	writeArtifact(t, fsys, "build/rootfs-x86_64.ext4", 67108864)
	writeArtifact(t, fsys, "build/vmlinux-aarch64", 9000000)
	writeArtifact(t, fsys, "build/rootfs-aarch64.ext4", 70000000)

	return fsys
}

func TestBuildManifest(t *testing.T) {
	fsys := populatedBuildDir(t)

	m, err := testBuilder(fsys).Build(testConfig(), "v0.1.0", "build", "abc123")

	require.Nil(t, err)
	assert.Equal(t, 1, m.SchemaVersion)
	assert.Equal(t, "v0.1.0", m.Version)
	assert.Len(t, m.Artifacts, 2)

	x86 := m.Artifacts["x86_64"]
	assert.Equal(t, "vmlinux-x86_64", x86.Kernel.File)
	assert.Equal(t, "6.1.155", x86.Kernel.Version)
	assert.Equal(t, "firecracker-ci/v1.15", x86.Kernel.Source)
	assert.Equal(t, int64(10485760), x86.Kernel.SizeBytes)
	assert.Equal(t, "rootfs-x86_64.ext4", x86.Rootfs.File)
	assert.Equal(t, "alpine", x86.Rootfs.Distro)
	assert.Equal(t, "3.23", x86.Rootfs.DistroVersion)
	assert.Equal(t, "balanced", x86.Rootfs.Profile)
	assert.Equal(t, int64(67108864), x86.Rootfs.SizeBytes)

	arm := m.Artifacts["aarch64"]
	assert.Equal(t, "vmlinux-aarch64", arm.Kernel.File)
	assert.Equal(t, int64(9000000), arm.Kernel.SizeBytes)
	assert.Equal(t, int64(70000000), arm.Rootfs.SizeBytes)

	assert.Equal(t, "1.7.0", m.Firecracker.Version)
	assert.Equal(t, "github.com/firecracker-microvm/firecracker", m.Firecracker.Source)
	assert.Equal(t, "2026-08-25T12:00:00Z", m.Build.Date)
	assert.Equal(t, "abc123", m.Build.Commit)
}

func TestBuildManifestOneEntryPerArchitecture(t *testing.T) {
	fsys := populatedBuildDir(t)
	cfg := testConfig()
	cfg.Architectures = []string{"aarch64", "x86_64"}

	m, err := testBuilder(fsys).Build(cfg, "v0.1.0", "build", "abc123")

	require.Nil(t, err)
	assert.Len(t, m.Artifacts, 2)
	assert.Contains(t, m.Artifacts, "x86_64")
	assert.Contains(t, m.Artifacts, "aarch64")
}

func TestBuildManifestMissingKernel(t *testing.T) {
	fsys := populatedBuildDir(t)
	require.Nil(t, fsys.Remove("build/vmlinux-aarch64"))

	m, err := testBuilder(fsys).Build(testConfig(), "v0.1.0", "build", "abc123")

	assert.Nil(t, m)
	require.Error(t, err)

	locErr, ok := err.(*LocateError)
	require.True(t, ok)
	assert.Equal(t, "aarch64", locErr.Arch)
	assert.Equal(t, "kernel", locErr.Artifact)
}

func TestBuildManifestMissingRootfs(t *testing.T) {
	fsys := populatedBuildDir(t)
	require.Nil(t, fsys.Remove("build/rootfs-x86_64.ext4"))

	m, err := testBuilder(fsys).Build(testConfig(), "v0.1.0", "build", "abc123")

	assert.Nil(t, m)
	require.Error(t, err)

	locErr, ok := err.(*LocateError)
	require.True(t, ok)
	assert.Equal(t, "x86_64", locErr.Arch)
	assert.Equal(t, "rootfs", locErr.Artifact)
}

func TestBuildManifestSingleBuildDate(t *testing.T) {
	fsys := populatedBuildDir(t)

	calls := 0
	b := &Builder{fs: fsys, now: func() time.Time {
		calls++
		return testTime.Add(time.Duration(calls) * time.Second)
	}}

	m, err := b.Build(testConfig(), "v0.1.0", "build", "abc123")

	require.Nil(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "2026-08-25T12:00:01Z", m.Build.Date)
}

func TestBuildManifestIdempotentExceptDate(t *testing.T) {
	fsys := populatedBuildDir(t)

	first, err := testBuilder(fsys).Build(testConfig(), "v0.1.0", "build", "abc123")
	require.Nil(t, err)

	later := &Builder{fs: fsys, now: func() time.Time { return testTime.Add(time.Hour) }}
	second, err := later.Build(testConfig(), "v0.1.0", "build", "abc123")
	require.Nil(t, err)

	assert.NotEqual(t, first.Build.Date, second.Build.Date)

	second.Build.Date = first.Build.Date
	assert.Equal(t, first, second)
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	fsys := populatedBuildDir(t)

	m, err := testBuilder(fsys).Build(testConfig(), "v0.1.0", "build", "abc123")
	require.Nil(t, err)

	w := &Writer{fs: fsys}
	require.Nil(t, w.Write(m, DefaultOutputPath("build")))

	got, err := Read(fsys, "build/manifest.json")
	require.Nil(t, err)
	assert.Equal(t, m, got)
}

func TestWriteSerialization(t *testing.T) {
	fsys := populatedBuildDir(t)
	cfg := testConfig()
	cfg.Architectures = []string{"x86_64"}

	m, err := testBuilder(fsys).Build(cfg, "v0.1.0", "build", "abc123")
	require.Nil(t, err)

	w := &Writer{fs: fsys}
	require.Nil(t, w.Write(m, "build/manifest.json"))

	data, err := afero.ReadFile(fsys, "build/manifest.json")
	require.Nil(t, err)

	out := string(data)
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, "  \"schema_version\": 1")
	assert.Contains(t, out, "\"size_bytes\": 10485760")

	// top-level keys keep declaration order, not alphabetical
	order := []string{"schema_version", "version", "artifacts", "firecracker", "build"}
	last := -1
	for _, key := range order {
		idx := strings.Index(out, "\""+key+"\"")
		require.True(t, idx > last, "key %s out of order", key)
		last = idx
	}
}

func TestWriteMissingParentDir(t *testing.T) {
	fsys := afero.NewMemMapFs()

	m := &Manifest{SchemaVersion: SchemaVersion, Version: "v0.1.0"}
	w := &Writer{fs: afero.NewReadOnlyFs(fsys)}

	err := w.Write(m, "build/manifest.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing manifest")
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "build/manifest.json", DefaultOutputPath("build"))
}

func TestArtifactNames(t *testing.T) {
	assert.Equal(t, "vmlinux-x86_64", KernelFileName("x86_64"))
	assert.Equal(t, "rootfs-aarch64.ext4", RootfsFileName("aarch64"))
	assert.Equal(t, "firecracker-ci/v1.15", KernelSource("v1.15"))
}
