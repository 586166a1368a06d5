package rootfs

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/go-errors/errors"

	"github.com/sandboxvm/vmimages/log"
)

// runTool executes an external filesystem utility and returns its
// combined output. Failures carry the tool output so CI logs show what
// went wrong.
func runTool(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)

	out, err := cmd.CombinedOutput()
	log.Debugf("%s %v: %s", name, args, string(out))
	if err != nil {
		return out, errors.Wrap(fmt.Errorf("%s: %v: %s", name, err, string(out)), 1)
	}

	return out, nil
}

// runningAsRoot reports whether the current process has the privileges
// required for loop mounts.
func runningAsRoot() bool {
	return os.Geteuid() == 0
}
