// Package rootfs constructs and shrinks the ext4 root filesystem
// images by driving the OS filesystem utilities.
package rootfs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"

	"github.com/sandboxvm/vmimages/config"
	"github.com/sandboxvm/vmimages/manifest"
	"github.com/sandboxvm/vmimages/util"
)

const alpineMirror = "https://dl-cdn.alpinelinux.org/alpine"

// BuildOptions tune the rootfs construction.
type BuildOptions struct {
	// PackagesFile lists the packages installed into the image.
	PackagesFile string

	// SizeMB is the initial image size; the image is shrunk to its
	// contents afterwards.
	SizeMB int64
}

// Build creates the ext4 rootfs image for one architecture under
// buildDir: allocate the image file, format it, loop-mount it, install
// the package list with apk and seed the minimal /etc files. Needs
// root for the loop mount.
func Build(cfg *config.Config, buildDir, arch string, opts BuildOptions) error {
	if !runningAsRoot() {
		return errors.New("rootfs build needs root permission")
	}

	packages, err := ReadPackageList(opts.PackagesFile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return errors.Wrap(err, 1)
	}

	img := filepath.Join(buildDir, manifest.RootfsFileName(arch))
	if err := allocateImage(img, opts.SizeMB); err != nil {
		return err
	}

	spinner := &util.ProgressSpinner{}
	defer spinner.Done()

	if err := spinner.Do(func() error {
		_, err := runTool("mkfs.ext4", "-q", "-F", img)
		return err
	}, "Formatting ", img); err != nil {
		return err
	}

	mnt, err := os.MkdirTemp("", "vmimages-rootfs-")
	if err != nil {
		return errors.Wrap(err, 1)
	}
	defer os.RemoveAll(mnt)

	if _, err := runTool("mount", "-o", "loop", img, mnt); err != nil {
		return err
	}
	defer runTool("umount", mnt)

	err = spinner.Do(func() error {
		return installPackages(cfg, mnt, arch, packages)
	}, "Installing ", len(packages), " packages for ", arch)
	if err != nil {
		return err
	}

	return seedEtc(mnt)
}

func allocateImage(path string, sizeMB int64) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, 1)
	}
	defer f.Close()

	if err := f.Truncate(sizeMB * 1024 * 1024); err != nil {
		return errors.Wrap(err, 1)
	}

	return nil
}

func installPackages(cfg *config.Config, root, arch string, packages []string) error {
	repoBase := fmt.Sprintf("%s/v%s", alpineMirror, cfg.Rootfs.DistroVersion)

	args := []string{
		"--root", root,
		"--arch", arch,
		"--initdb",
		"--allow-untrusted",
		"--no-cache",
		"--repository", repoBase + "/main",
		"--repository", repoBase + "/community",
		"add",
	}
	args = append(args, packages...)

	_, err := runTool("apk", args...)
	return err
}

// seedEtc writes the few files the guest expects before its own init
// takes over.
func seedEtc(root string) error {
	files := map[string]string{
		"etc/hostname":    "sandbox\n",
		"etc/resolv.conf": "nameserver 8.8.8.8\n",
	}

	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrap(err, 1)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return errors.Wrap(err, 1)
		}
	}

	return nil
}
