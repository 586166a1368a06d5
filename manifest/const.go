package manifest

import "fmt"

// SchemaVersion tags the manifest format so the downstream pull tool
// can detect incompatible changes.
const SchemaVersion = 1

// FirecrackerSource is the upstream VMM project recorded in every
// manifest.
const FirecrackerSource = "github.com/firecracker-microvm/firecracker"

// OutputFileName is the manifest file name inside the build directory.
const OutputFileName = "manifest.json"

// KernelFileName returns the kernel binary name for an architecture.
// The naming is a stability contract with the pull tool; changing it
// requires a schema version bump.
func KernelFileName(arch string) string {
	return fmt.Sprintf("vmlinux-%s", arch)
}

// RootfsFileName returns the rootfs image name for an architecture.
// Same stability contract as KernelFileName.
func RootfsFileName(arch string) string {
	return fmt.Sprintf("rootfs-%s.ext4", arch)
}

// KernelSource returns the artifact channel the kernel was pulled
// from.
func KernelSource(ciVersion string) string {
	return fmt.Sprintf("firecracker-ci/%s", ciVersion)
}
