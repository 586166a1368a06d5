// Package config loads and validates the build configuration consumed
// by every vmimages command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Kernel identifies the kernel binary to package.
type Kernel struct {
	// Version is the kernel release packaged into the image set.
	Version string `yaml:"version"`

	// CIVersion is the upstream CI artifact channel the kernel binary
	// is pulled from.
	CIVersion string `yaml:"ci_version"`
}

// Firecracker pins the VMM release the images are built for. Recorded
// as metadata only, never fetched.
type Firecracker struct {
	Version string `yaml:"version"`
}

// Rootfs describes the root filesystem flavor.
type Rootfs struct {
	// Distro is the userspace distribution, e.g. alpine.
	Distro string `yaml:"distro"`

	// DistroVersion is the distribution release, e.g. 3.23.
	DistroVersion string `yaml:"distro_version"`

	// Profile names the package selection baked into the image.
	Profile string `yaml:"profile"`
}

// Config is the validated build configuration from config.yaml.
type Config struct {
	Kernel      Kernel      `yaml:"kernel"`
	Firecracker Firecracker `yaml:"firecracker"`
	Rootfs      Rootfs      `yaml:"rootfs"`

	// Architectures lists the target architectures, one image pair per
	// entry.
	Architectures []string `yaml:"architectures"`
}

// Load reads and parses the configuration at path and validates the
// required fields. The rootfs fields are passed through unvalidated so
// older configs that omit them keep working.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(c.Architectures) == 0 {
		return nil, fmt.Errorf("no architectures defined in %s", path)
	}
	if c.Kernel.Version == "" {
		return nil, fmt.Errorf("kernel.version is required in %s", path)
	}
	if c.Kernel.CIVersion == "" {
		return nil, fmt.Errorf("kernel.ci_version is required in %s", path)
	}
	if c.Firecracker.Version == "" {
		return nil, fmt.Errorf("firecracker.version is required in %s", path)
	}

	return &c, nil
}
