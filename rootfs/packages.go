package rootfs

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadPackageList parses a package list file: one package per line,
// blank lines and # comments ignored.
func ReadPackageList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var packages []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		packages = append(packages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("no packages listed in %s", path)
	}

	return packages, nil
}
