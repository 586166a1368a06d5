package rootfs

import (
	"os"
	"regexp"
	"strconv"

	"github.com/go-errors/errors"

	"github.com/sandboxvm/vmimages/log"
)

// resize2fs -M reports the final size as e.g.
// "The filesystem on rootfs-x86_64.ext4 is now 16384 (4k) blocks long."
var resizedSizeRe = regexp.MustCompile(`is now (\d+) \((\d+)k\) blocks`)

// Shrink fscks the image and resizes the filesystem down to its
// contents, then truncates the image file to the new filesystem size.
func Shrink(path string) error {
	if _, err := runTool("e2fsck", "-fy", path); err != nil {
		return err
	}

	out, err := runTool("resize2fs", "-M", path)
	if err != nil {
		return err
	}

	size, err := parseResizedSize(string(out))
	if err != nil {
		return err
	}

	if err := os.Truncate(path, size); err != nil {
		return errors.Wrap(err, 1)
	}

	log.Infof("shrunk %s to %d bytes", path, size)
	return nil
}

// parseResizedSize extracts the new filesystem size in bytes from
// resize2fs output.
func parseResizedSize(out string) (int64, error) {
	m := resizedSizeRe.FindStringSubmatch(out)
	if m == nil {
		return 0, errors.New("could not parse resize2fs output: " + out)
	}

	blocks, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, 1)
	}
	blockSize, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, 1)
	}

	return blocks * blockSize * 1024, nil
}
