package cmd

import (
	"fmt"
	"os"

	"github.com/sandboxvm/vmimages/log"
)

func exitWithError(errs string) {
	fmt.Fprintln(os.Stderr, fmt.Sprintf(log.ErrorColorFormat, "error: "+errs))
	os.Exit(1)
}
