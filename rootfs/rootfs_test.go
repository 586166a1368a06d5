package rootfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPackageList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.txt")
	content := `# base system
alpine-base
busybox

# networking
iproute2
`
	require.Nil(t, os.WriteFile(path, []byte(content), 0644))

	packages, err := ReadPackageList(path)

	require.Nil(t, err)
	assert.Equal(t, []string{"alpine-base", "busybox", "iproute2"}, packages)
}

func TestReadPackageListMissingFile(t *testing.T) {
	_, err := ReadPackageList(filepath.Join(t.TempDir(), "nope.txt"))

	assert.Error(t, err)
}

func TestReadPackageListEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.txt")
	require.Nil(t, os.WriteFile(path, []byte("# only comments\n\n"), 0644))

	_, err := ReadPackageList(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no packages")
}

func TestParseResizedSize(t *testing.T) {
	out := `resize2fs 1.47.0 (5-Feb-2023)
Resizing the filesystem on rootfs-x86_64.ext4 to 16384 (4k) blocks.
The filesystem on rootfs-x86_64.ext4 is now 16384 (4k) blocks long.
`

	size, err := parseResizedSize(out)

	require.Nil(t, err)
	assert.Equal(t, int64(16384*4096), size)
}

func TestParseResizedSizeOneKBlocks(t *testing.T) {
	out := "The filesystem on rootfs-aarch64.ext4 is now 65536 (1k) blocks long.\n"

	size, err := parseResizedSize(out)

	require.Nil(t, err)
	assert.Equal(t, int64(65536*1024), size)
}

func TestParseResizedSizeGarbage(t *testing.T) {
	_, err := parseResizedSize("resize2fs: bad magic number in super-block")

	assert.Error(t, err)
}

func TestAllocateImage(t *testing.T) {
	img := filepath.Join(t.TempDir(), "rootfs-x86_64.ext4")

	err := allocateImage(img, 64)

	require.Nil(t, err)
	info, err := os.Stat(img)
	require.Nil(t, err)
	assert.Equal(t, int64(64*1024*1024), info.Size())
}
