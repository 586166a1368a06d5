package main

import (
	"os"

	"github.com/sandboxvm/vmimages/cmd"
)

func main() {
	if err := cmd.GetRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
