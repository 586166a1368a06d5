// Package kernel fetches pre-built kernel binaries from the public
// Firecracker CI artifact store.
package kernel

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/sandboxvm/vmimages/config"
	"github.com/sandboxvm/vmimages/log"
	"github.com/sandboxvm/vmimages/manifest"
)

// ciBucketURL is the public S3 bucket the Firecracker CI publishes
// kernel builds to.
const ciBucketURL = "https://s3.amazonaws.com/spec.ccfc.min"

const downloadTimeout = 600 * time.Second

// ArtifactURL returns the CI download URL for one kernel binary.
func ArtifactURL(ciVersion, arch, kernelVersion string) string {
	return fmt.Sprintf("%s/firecracker-ci/%s/%s/vmlinux-%s", ciBucketURL, ciVersion, arch, kernelVersion)
}

// Download fetches url into target unless target already exists. The
// body is written to a temporary file and renamed into place so an
// interrupted download never leaves a truncated kernel behind.
func Download(url, target string, force bool) error {
	if _, err := os.Stat(target); err == nil && !force {
		log.Infof("%s already exists, skipping download", target)
		return nil
	}

	fmt.Println("Downloading..", target)
	out, err := os.Create(target + ".tmp")
	if err != nil {
		return err
	}
	defer out.Close()

	c := &http.Client{
		Timeout: downloadTimeout,
	}

	resp, err := c.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	bar := progressbar.DefaultBytes(resp.ContentLength, filepath.Base(target))

	if _, err = io.Copy(io.MultiWriter(out, bar), resp.Body); err != nil {
		return err
	}

	if err = out.Close(); err != nil {
		return err
	}

	return os.Rename(target+".tmp", target)
}

// DownloadAll fetches the configured kernel for every architecture
// into buildDir.
func DownloadAll(cfg *config.Config, buildDir string, force bool) error {
	if err := os.MkdirAll(buildDir, 0755); err != nil {
		return err
	}

	for _, arch := range cfg.Architectures {
		url := ArtifactURL(cfg.Kernel.CIVersion, arch, cfg.Kernel.Version)
		target := filepath.Join(buildDir, manifest.KernelFileName(arch))

		if err := Download(url, target, force); err != nil {
			return fmt.Errorf("kernel for %s: %w", arch, err)
		}
	}

	return nil
}
